package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // K, Up arrow - move cursor up
	ActionDown              // J, Down arrow - move cursor down
	ActionLeft              // H, Left arrow - move cursor left
	ActionRight             // L, Right arrow - move cursor right
	ActionConfirm           // Enter, Space - place a disc (or pass when stuck)
	ActionUndo              // U, Backspace - take back the last move or pass
	ActionToggleMode        // M - switch between friend and CPU play
	ActionRestart           // R - start a new game
	ActionBack              // B, Escape - go back to menu
	ActionQuit              // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionUndo:
		return "Undo"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a screen position in character cells.
type Point struct {
	X, Y int
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame and at most
// one mouse click.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	click    Point
	hasClick bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetClick records a left click at screen position (x, y).
// A later click in the same frame replaces an earlier one.
func (f *InputFrame) SetClick(x, y int) {
	f.click = Point{X: x, Y: y}
	f.hasClick = true
}

// Click returns the click position, if a click happened this frame.
func (f InputFrame) Click() (Point, bool) {
	return f.click, f.hasClick
}

// Empty reports whether nothing was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && !f.hasClick
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.click = Point{}
	f.hasClick = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.click = f.click
	clone.hasClick = f.hasClick
	return clone
}
