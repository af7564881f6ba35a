package core

// Action represents a semantic player action, abstracted from physical input.
type Action int

const (
	ActionNone Action = iota
	ActionTap         // Space, Up, W, Enter, left click - flap or restart
	ActionHelp        // ? - toggle the key help footer
	ActionQuit        // Q, Esc, Ctrl+C - leave the game
	ActionScreenshot  // Ctrl+S - save the current frame as text
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTap:
		return "Tap"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
