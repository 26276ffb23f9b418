package core

// Action represents a semantic input action, abstracted from physical keys.
// The platform layer maps keys to actions and the simulation consumes the
// resulting intent.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionJump           // Space, W, Up arrow
	ActionShoot          // J, X, Z
	ActionAimUp          // W, Up arrow while held
	ActionRestart        // R
	ActionBack           // Escape
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionShoot:
		return "Shoot"
	case ActionAimUp:
		return "AimUp"
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

// InputFrame is the set of actions active during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
