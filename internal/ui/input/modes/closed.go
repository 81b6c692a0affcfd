package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lookup/internal/ui/input/types"
)

// ClosedMode handles keys sent to the trigger
type ClosedMode struct {
	keys types.KeyMap
}

func NewClosedMode(keys types.KeyMap) *ClosedMode {
	return &ClosedMode{keys: keys}
}

func (m *ClosedMode) Name() string {
	return "closed"
}

func (m *ClosedMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// A hidden trigger can only be opened programmatically
	if !ctx.TriggerActive() {
		return nil, false
	}
	if key.Matches(msg, m.keys.Open) {
		return []types.Action{types.OpenAction{}}, true
	}
	return nil, false
}
