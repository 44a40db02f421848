package core

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm    // Enter - select in menus
	ActionBack       // Esc/B - back to menu
	ActionRestart    // R - start a new round
	ActionPause      // P - pause/unpause
	ActionScreenshot // Ctrl+S
	ActionQuit       // Q, Ctrl+C
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
	case ActionPause:
		return "Pause"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the direction name carried by a movement action
// ("up", "down", "left", "right") and false for every other action.
func (a Action) Direction() (string, bool) {
	switch a {
	case ActionUp:
		return "up", true
	case ActionDown:
		return "down", true
	case ActionLeft:
		return "left", true
	case ActionRight:
		return "right", true
	}
	return "", false
}
