package reversi

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-reversi/internal/core"
)

const (
	cellWidth  = 4 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)

	boardW    = Size*cellWidth + 1  // +1 for right border
	boardH    = Size*cellHeight + 1 // +1 for bottom border
	hudHeight = 3

	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderStatus(dst)

	if g.ctrl.IsGameOver() {
		g.renderGameOver(dst)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, disc counts, mode and whose turn it is.
func (g *Game) renderHUD(dst *core.Screen) {
	blackGlyph, whiteGlyph, _, _, _ := g.cfg.Theme.Runes()
	black, white := g.ctrl.Count()

	dst.DrawTextColored(g.board.X, 0, "REVERSI", core.ColorGreen)

	label := g.ctrl.Mode().Label()
	dst.DrawTextColored(g.board.Right()-len(label), 0, label, core.ColorCyan)

	counts := fmt.Sprintf("%c Black %2d  %c White %2d", blackGlyph, black, whiteGlyph, white)
	dst.DrawText(g.board.X, 1, counts)

	var turn string
	switch {
	case g.ctrl.IsGameOver():
		turn = "Game over"
	case g.ctrl.OpponentToMove():
		turn = "CPU is thinking..."
	default:
		glyph := blackGlyph
		if g.ctrl.Current() == White {
			glyph = whiteGlyph
		}
		turn = fmt.Sprintf("%c %s to move", glyph, g.ctrl.Current())
	}
	dst.DrawText(g.board.X, 2, turn)
}

// renderBoard draws the 6x6 grid, the discs, move hints and the cursor.
func (g *Game) renderBoard(dst *core.Screen) {
	boardX, boardY := g.board.X, g.board.Y

	// Draw grid borders
	for y := range Size + 1 {
		for x := range Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == Size:
				corner = '┐'
			case y == Size && x == 0:
				corner = '└'
			case y == Size && x == Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGreen)

			if x < Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGreen)
				}
			}
			if y < Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGreen)
				}
			}
		}
	}

	blackGlyph, whiteGlyph, hintGlyph, cursorL, cursorR := g.cfg.Theme.Runes()
	board := g.ctrl.Board()

	var hints MoveSet
	if g.hintsVisible() {
		hints = g.ctrl.Moves()
	}

	for r := range Size {
		for c := range Size {
			at := Coord{Row: r, Col: c}
			x, y := g.cellOrigin(at)

			color := core.ColorDefault
			if g.hasLast && at == g.lastMove {
				color = core.ColorYellow
			}

			switch board[r][c] {
			case Black:
				dst.SetColored(x, y, blackGlyph, color)
			case White:
				dst.SetColored(x, y, whiteGlyph, color)
			default:
				if hints.Has(at) {
					dst.SetColored(x, y, hintGlyph, core.ColorGray)
				}
			}
		}
	}

	if !g.ctrl.IsGameOver() && !g.ctrl.OpponentToMove() {
		x, y := g.cellOrigin(g.cursor)
		dst.SetColored(x-1, y, cursorL, core.ColorCyan)
		dst.SetColored(x+1, y, cursorR, core.ColorCyan)
	}
}

// renderStatus draws the undo depth and any message below the board.
func (g *Game) renderStatus(dst *core.Screen) {
	y := g.board.Bottom()

	undo := fmt.Sprintf("undo: %d", g.ctrl.HistoryLen())
	undoColor := core.ColorDefault
	if !g.ctrl.CanUndo() {
		undoColor = core.ColorGray
	}
	dst.DrawTextColored(g.board.X, y, undo, undoColor)

	msg := g.toast
	if msg == "" && g.humanStuck() {
		msg = "No moves: Enter to pass"
	}
	if msg != "" {
		x := g.board.X + (boardW-utf8.RuneCountInString(msg))/2
		dst.DrawTextColored(x, y+1, msg, core.ColorYellow)
	}
}

// renderGameOver draws the winner banner over the board.
func (g *Game) renderGameOver(dst *core.Screen) {
	black, white := g.ctrl.Count()

	var result string
	switch g.ctrl.Board().Leader() {
	case Black:
		result = fmt.Sprintf("Black wins %d-%d", black, white)
	case White:
		result = fmt.Sprintf("White wins %d-%d", white, black)
	default:
		result = fmt.Sprintf("Draw %d-%d", black, white)
	}

	cx, cy := g.board.Center()
	g.drawOverlay(dst, cx, cy, core.ColorYellow, "GAME OVER", result, "R: new game  U: undo")
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.Rect{W: maxLen + 4, H: len(lines) + 2}
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawTextColored(x, box.Y+1+i, line, color)
	}
}

// hintsVisible reports whether legal moves are marked on the board.
// Hints are hidden while the CPU owns the move and after the game ends.
func (g *Game) hintsVisible() bool {
	return g.cfg.ShowHints && !g.ctrl.IsGameOver() && !g.ctrl.OpponentToMove()
}

// humanStuck reports whether a human side to move has no legal move.
func (g *Game) humanStuck() bool {
	return !g.ctrl.IsGameOver() && !g.ctrl.OpponentToMove() &&
		!HasMove(g.ctrl.Board(), g.ctrl.Current())
}

// cellOrigin returns the screen position of a cell's disc glyph.
func (g *Game) cellOrigin(at Coord) (x, y int) {
	return g.board.X + at.Col*cellWidth + cellWidth/2, g.board.Y + at.Row*cellHeight + 1
}

// cellAt maps a screen position to a board cell. Grid lines map to nothing.
func (g *Game) cellAt(p core.Point) (Coord, bool) {
	if !g.board.Contains(p.X, p.Y) {
		return Coord{}, false
	}
	dx, dy := p.X-g.board.X, p.Y-g.board.Y
	if dx%cellWidth == 0 || dy%cellHeight == 0 {
		return Coord{}, false
	}
	return Coord{Row: dy / cellHeight, Col: dx / cellWidth}, true
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/HJKL: Move | Enter: Place | U: Undo | M: Mode | R: Restart | Q: Quit"
}
