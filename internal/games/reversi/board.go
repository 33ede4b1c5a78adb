// Package reversi implements 6x6 Reversi with a friend mode and a CPU
// opponent that plays White.
package reversi

// Size is the board dimension.
const Size = 6

// Disc is the state of a single board cell.
// Black and White are signs so the opponent is found by negation.
type Disc int8

const (
	Empty Disc = 0
	Black Disc = 1
	White Disc = -1
)

// Player is a Disc restricted to Black or White.
type Player = Disc

// Opponent returns the other player.
func (d Disc) Opponent() Disc {
	return -d
}

// String returns a human-readable name for the disc.
func (d Disc) String() string {
	switch d {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// Coord addresses a cell by row and column, both 0-based.
type Coord struct {
	Row, Col int
}

// Board is the 6x6 grid. Copying a Board copies every cell.
type Board [Size][Size]Disc

// NewBoard returns a board with the four center discs placed:
// Black on the main diagonal, White on the anti-diagonal.
func NewBoard() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = Black, Black
	b[mid-1][mid], b[mid][mid-1] = White, White
	return b
}

// InBounds reports whether (r, c) lies on the board.
func InBounds(r, c int) bool {
	return r >= 0 && r < Size && c >= 0 && c < Size
}

// At returns the disc at the given coordinate.
// Out-of-bounds coordinates read as Empty.
func (b Board) At(at Coord) Disc {
	if !InBounds(at.Row, at.Col) {
		return Empty
	}
	return b[at.Row][at.Col]
}

// Count returns the number of black and white discs.
func (b Board) Count() (black, white int) {
	for r := range Size {
		for c := range Size {
			switch b[r][c] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}

// Leader returns the player with more discs, or Empty on a tie.
func (b Board) Leader() Disc {
	black, white := b.Count()
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}
