package reversi

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/core"
	"github.com/vovakirdan/tui-reversi/internal/registry"
)

// ToastDuration is how long a forced pass stays announced.
const ToastDuration = 900 * time.Millisecond

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// pendingTurn is an opponent task waiting for its due tick.
type pendingTurn struct {
	task OpponentTask
	due  uint64
}

// Game adapts a Controller to the tick-driven platform: it owns the
// cursor, the opponent delay and the pass toast.
type Game struct {
	startMode Mode
	ctrl      *Controller
	cfg       config.ReversiConfig

	tickRate int
	tick     uint64
	pending  *pendingTurn

	cursor   Coord
	lastMove Coord
	hasLast  bool

	toast      string
	toastUntil uint64

	// Layout (computed from screen size)
	screenW  int
	screenH  int
	board    core.Rect
	tooSmall bool
}

// New creates a friend-mode game.
func New() *Game {
	return &Game{startMode: ModeFriend}
}

// NewVsCPU creates a game where the CPU plays White.
func NewVsCPU() *Game {
	return &Game{startMode: ModeCPU}
}

// GameID returns the registered ID for a mode.
func GameID(m Mode) string {
	if m == ModeCPU {
		return "reversi_cpu"
	}
	return "reversi"
}

func init() {
	registry.Register(GameID(ModeFriend), func() registry.Game {
		return New()
	})
	registry.Register(GameID(ModeCPU), func() registry.Game {
		return NewVsCPU()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.startMode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.startMode == ModeCPU {
		return "Reversi vs CPU"
	}
	return "Reversi"
}

// Reset starts a fresh game in the mode the game was created with.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadReversi(configPath)
	if err != nil {
		cfg = config.DefaultReversiConfig()
	}
	g.cfg = cfg

	g.tickRate = runtime.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.pending = nil

	g.ctrl = NewController(g.startMode)
	g.ctrl.OnEvent(g.onEvent)
	g.cursor = Coord{Row: Size/2 - 1, Col: Size/2 - 1}
	g.hasLast = false
	g.toast = ""

	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize recomputes the layout without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH

	screen := core.NewRect(0, 0, w, h)
	g.board = screen.Centered(boardW, boardH)
	g.board.Y = hudHeight
}

// Controller exposes the engine driving this game.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Cursor returns the highlighted cell.
func (g *Game) Cursor() Coord {
	return g.cursor
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.toast != "" && g.tick >= g.toastUntil {
		g.toast = ""
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionRestart):
		g.ctrl.Reset()
	case in.Has(core.ActionToggleMode):
		g.ctrl.SetMode(g.ctrl.Mode().Toggle())
	case in.Has(core.ActionUndo):
		g.undo()
	}

	g.moveCursor(in)

	if p, ok := in.Click(); ok {
		if at, ok := g.cellAt(p); ok {
			g.cursor = at
			g.confirm()
		}
	} else if in.Has(core.ActionConfirm) {
		g.confirm()
	}

	g.driveOpponent()

	return core.StepResult{State: g.State()}
}

// moveCursor moves the cursor one cell, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, Size-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, Size-1)
}

// confirm plays the cursor cell for the human side, or passes when that
// side is stuck (only reachable by undoing a forced pass).
func (g *Game) confirm() {
	if g.ctrl.IsGameOver() || g.ctrl.OpponentToMove() {
		return
	}
	if !HasMove(g.ctrl.Board(), g.ctrl.Current()) {
		_ = g.ctrl.Pass()
		return
	}
	// Illegal selections are ignored.
	_ = g.ctrl.Select(g.cursor)
}

// undo takes back exactly one recorded action. When that hands the move
// back to the CPU, driveOpponent schedules a fresh reply.
func (g *Game) undo() {
	_ = g.ctrl.Undo()
}

// driveOpponent schedules the CPU's turn and runs it once it is due.
// Tasks invalidated by undo, reset or a mode change are dropped.
func (g *Game) driveOpponent() {
	if g.pending != nil && g.ctrl.Stale(g.pending.task) {
		g.pending = nil
	}

	if g.pending == nil {
		if task, ok := g.ctrl.ScheduleOpponent(); ok {
			g.pending = &pendingTurn{task: task, due: g.tick + g.ticks(OpponentDelay)}
		}
		return
	}

	if g.tick >= g.pending.due {
		task := g.pending.task
		g.pending = nil
		g.ctrl.RunOpponent(task)
	}
}

// OpponentPending reports whether a CPU turn is scheduled.
func (g *Game) OpponentPending() bool {
	return g.pending != nil
}

// ticks converts a duration to simulation ticks, at least one.
func (g *Game) ticks(d time.Duration) uint64 {
	n := uint64(d * time.Duration(g.tickRate) / time.Second)
	if n == 0 {
		n = 1
	}
	return n
}

// onEvent tracks what the renderer shows besides the board itself.
func (g *Game) onEvent(e Event) {
	switch e.Kind {
	case EventMove:
		g.lastMove = e.At
		g.hasLast = true
	case EventPass:
		g.showToast(fmt.Sprintf("PASS: %s has no moves", e.Player))
	case EventUndo, EventReset:
		g.hasLast = false
		g.toast = ""
	case EventModeChange:
		g.showToast("Mode: " + g.ctrl.Mode().Label())
	}
}

func (g *Game) showToast(msg string) {
	g.toast = msg
	g.toastUntil = g.tick + g.ticks(ToastDuration)
}

// Toast returns the message currently announced, if any.
func (g *Game) Toast() string {
	return g.toast
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	black, white := g.ctrl.Count()
	return core.GameState{
		Score1:   black,
		Score2:   white,
		Moves:    black + white - 4, // every move adds exactly one disc
		Mode:     string(g.ctrl.Mode()),
		GameOver: g.ctrl.IsGameOver(),
	}
}
