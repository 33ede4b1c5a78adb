package reversi

import "time"

// OpponentDelay is the pause before the CPU plays. It only paces the game.
const OpponentDelay = 260 * time.Millisecond

// OpponentTask is a deferred CPU turn. It remembers the state it was
// scheduled against and is dropped if that state changed before it fires.
type OpponentTask struct {
	generation uint64
	mode       Mode
	player     Player
}

// ScheduleOpponent returns a task for the CPU's turn, or false when the CPU
// does not own the side to move.
func (c *Controller) ScheduleOpponent() (OpponentTask, bool) {
	if !c.OpponentToMove() {
		return OpponentTask{}, false
	}
	return OpponentTask{
		generation: c.generation,
		mode:       c.mode,
		player:     c.current,
	}, true
}

// Stale reports whether the controller moved on since t was scheduled.
func (c *Controller) Stale(t OpponentTask) bool {
	return t.generation != c.generation || t.mode != c.mode || t.player != c.current
}

// RunOpponent plays the CPU's move for t. A stale task, or one that no
// longer belongs to the CPU, does nothing and returns false. When White has
// no legal move the turn is passed instead.
func (c *Controller) RunOpponent(t OpponentTask) bool {
	if c.Stale(t) || !c.OpponentToMove() {
		return false
	}

	move, ok := ChooseOpponentMove(c.board)
	if !ok {
		c.settle()
		return true
	}
	c.play(OpponentSide, move.At)
	return true
}
