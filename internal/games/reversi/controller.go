package reversi

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned for a selection that is not a legal move for
// the side to move, including selections while the CPU owns that side.
var ErrIllegalMove = errors.New("reversi: illegal move")

// Phase is the externally visible state of the turn machine.
type Phase int

const (
	PhaseAwaitingMove Phase = iota
	PhaseGameOver
)

// EventKind identifies what a controller event reports.
type EventKind int

const (
	EventMove EventKind = iota
	EventPass
	EventUndo
	EventReset
	EventModeChange
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventPass:
		return "pass"
	case EventUndo:
		return "undo"
	case EventReset:
		return "reset"
	case EventModeChange:
		return "mode"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners after each state change.
type Event struct {
	Kind    EventKind
	Player  Player // Mover for EventMove, the skipped side for EventPass
	At      Coord  // EventMove only
	Flipped int    // EventMove only
}

// Controller owns the board, the side to move, the mode and the undo
// history. Every mutation goes through its methods and is snapshotted
// together with the mutation. A Controller is not safe for concurrent use.
type Controller struct {
	board      Board
	current    Player
	mode       Mode
	history    History
	generation uint64
	listeners  []func(Event)
}

// NewController returns a controller at the starting position, Black to move.
func NewController(mode Mode) *Controller {
	c := &Controller{mode: mode}
	c.reset()
	return c
}

// NewControllerAt returns a controller at an arbitrary position with an
// empty history. The position is taken as-is; no passes are applied.
func NewControllerAt(b Board, current Player, mode Mode) *Controller {
	return &Controller{
		board:   b,
		current: current,
		mode:    mode,
	}
}

// OnEvent registers a listener called synchronously after each change.
func (c *Controller) OnEvent(fn func(Event)) {
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) emit(e Event) {
	for _, fn := range c.listeners {
		fn(e)
	}
}

// Board returns a copy of the current board.
func (c *Controller) Board() Board { return c.board }

// Current returns the side to move.
func (c *Controller) Current() Player { return c.current }

// Mode returns the active mode.
func (c *Controller) Mode() Mode { return c.mode }

// Generation changes on every mutation; scheduled work compares it
// to detect that the state moved on.
func (c *Controller) Generation() uint64 { return c.generation }

// Count returns the disc counts.
func (c *Controller) Count() (black, white int) { return c.board.Count() }

// Moves returns the legal moves of the side to move.
func (c *Controller) Moves() MoveSet { return LegalMoves(c.board, c.current) }

// IsGameOver reports whether neither side can move.
func (c *Controller) IsGameOver() bool { return IsGameOver(c.board) }

// Phase returns the state machine phase.
func (c *Controller) Phase() Phase {
	if c.IsGameOver() {
		return PhaseGameOver
	}
	return PhaseAwaitingMove
}

// CanUndo reports whether Undo has anything to restore.
func (c *Controller) CanUndo() bool { return c.history.CanUndo() }

// HistoryLen returns the number of undo steps available.
func (c *Controller) HistoryLen() int { return c.history.Len() }

// Snapshot captures the current state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{Board: c.board, Current: c.current, Mode: c.mode}
}

// OpponentToMove reports whether the CPU owns the side to move.
func (c *Controller) OpponentToMove() bool {
	return c.mode == ModeCPU && c.current == OpponentSide && !c.IsGameOver()
}

// Reset restarts the game in the current mode and clears the history.
func (c *Controller) Reset() {
	c.reset()
	c.emit(Event{Kind: EventReset})
}

func (c *Controller) reset() {
	c.board = NewBoard()
	c.current = Black
	c.history.Clear()
	c.generation++
}

// SetMode switches between friend and CPU play. The switch itself is not
// recorded; undo restores whatever mode the popped snapshot carries.
func (c *Controller) SetMode(m Mode) {
	if m == c.mode {
		return
	}
	c.mode = m
	c.generation++
	c.emit(Event{Kind: EventModeChange})
}

// Select plays a human move for the side to move.
func (c *Controller) Select(at Coord) error {
	if c.IsGameOver() {
		return fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	if c.OpponentToMove() {
		return fmt.Errorf("%w: opponent to move", ErrIllegalMove)
	}
	if len(ComputeFlips(c.board, c.current, at.Row, at.Col)) == 0 {
		return fmt.Errorf("%w: %s at (%d,%d)", ErrIllegalMove, c.current, at.Row, at.Col)
	}
	c.play(c.current, at)
	return nil
}

// Pass skips a human side that has no legal move. This only happens after
// undoing a forced pass; the turn machine passes automatically otherwise.
func (c *Controller) Pass() error {
	if c.IsGameOver() || c.OpponentToMove() || HasMove(c.board, c.current) {
		return fmt.Errorf("%w: %s cannot pass", ErrIllegalMove, c.current)
	}
	c.settle()
	return nil
}

// Undo restores the state captured before the most recent move or pass.
func (c *Controller) Undo() error {
	s, err := c.history.Pop()
	if err != nil {
		return err
	}
	c.board = s.Board
	c.current = s.Current
	c.mode = s.Mode
	c.generation++
	c.emit(Event{Kind: EventUndo})
	return nil
}

func (c *Controller) pushSnapshot() {
	c.history.Push(c.Snapshot())
}

// play applies a legal move for p and advances the turn.
func (c *Controller) play(p Player, at Coord) {
	flips := ComputeFlips(c.board, p, at.Row, at.Col)
	c.pushSnapshot()
	ApplyMove(&c.board, p, at.Row, at.Col)
	c.generation++
	c.emit(Event{Kind: EventMove, Player: p, At: at, Flipped: len(flips)})

	c.current = p.Opponent()
	c.settle()
}

// settle forces passes until the side to move has a move or the game ends.
// Game over is checked before every pass, so at most one pass happens:
// if the game is not over and one side cannot move, the other can.
func (c *Controller) settle() {
	for {
		if c.IsGameOver() {
			c.emit(Event{Kind: EventGameOver})
			return
		}
		if HasMove(c.board, c.current) {
			return
		}
		c.pushSnapshot()
		passed := c.current
		c.current = passed.Opponent()
		c.generation++
		c.emit(Event{Kind: EventPass, Player: passed})
	}
}
