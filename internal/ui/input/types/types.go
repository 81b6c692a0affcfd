package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeClosed Mode = iota // trigger has the keyboard
	ModeOpen               // overlay text field has the keyboard
)

func (m Mode) String() string {
	switch m {
	case ModeOpen:
		return "open"
	default:
		return "closed"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to widget state needed for input handling
type Context interface {
	Visible() bool
	ResultCount() int
	TriggerActive() bool // false when the trigger is hidden
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
