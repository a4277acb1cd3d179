package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move the cursor up
	ActionDown           // S, Down arrow - move the cursor down
	ActionLeft           // A, Left arrow - move the cursor left
	ActionRight          // D, Right arrow - move the cursor right
	ActionGrab           // Space, Enter - press at the cursor
	ActionCancel         // Esc, right click - drop the drag or return the hand
	ActionRestart        // R - reload the level
	ActionNext           // N - next level after solving
	ActionBack           // B - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionGrab:
		return "Grab"
	case ActionCancel:
		return "Cancel"
	case ActionRestart:
		return "Restart"
	case ActionNext:
		return "Next"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse state for one tick in screen cells.
// Pressed and Released are edges seen since the previous tick; Down is the
// current button level. Valid is false until the first mouse event.
type Pointer struct {
	X, Y     int
	Down     bool
	Pressed  bool
	Released bool
	Valid    bool
}

// ClearEdges resets the edge flags while keeping position and level.
func (p *Pointer) ClearEdges() {
	p.Pressed = false
	p.Released = false
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	Pointer Pointer
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

// Clear resets all actions and pointer edges for the next frame.
// The pointer position and button level carry over.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.ClearEdges()
}
