package core

// Action represents a semantic input action, abstracted from physical
// key presses. The keymap layer translates terminal keys into actions;
// the game session consumes actions without knowing about key bindings.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move tiles up
	ActionDown           // S, Down arrow - move tiles down
	ActionLeft           // A, Left arrow - move tiles left
	ActionRight          // D, Right arrow - move tiles right
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
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
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}
