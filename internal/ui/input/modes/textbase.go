package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lookup/internal/domain"
	"lookup/internal/ui/input/types"
	"lookup/internal/ui/logic"
)

// TextInputMode is a base for modes that accept text input
type TextInputMode struct {
	mode      types.Mode
	name      string
	textInput *textinput.Model
}

func NewTextInputMode(mode types.Mode, name string, ti *textinput.Model) TextInputMode {
	return TextInputMode{
		mode:      mode,
		name:      name,
		textInput: ti,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

// Enter focuses the field. The text is not reset here: it was cleared when
// the previous close transition finished.
func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
		m.textInput.Prompt = "" // Prompt is handled in the view layer
	}
	return nil
}

// Exit blurs the field but keeps its text so it does not visibly empty
// while the overlay is closing
func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

// OpenMode handles keys while the overlay is shown
type OpenMode struct {
	TextInputMode
	keys types.KeyMap
}

func NewOpenMode(ti *textinput.Model, keys types.KeyMap) *OpenMode {
	return &OpenMode{
		TextInputMode: NewTextInputMode(types.ModeOpen, "open", ti),
		keys:          keys,
	}
}

func (m *OpenMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return []types.Action{types.CancelAction{Reason: domain.CancelBack}}, true
	case key.Matches(msg, m.keys.Close):
		return []types.Action{types.CancelAction{Reason: domain.CancelExplicit}}, true
	case key.Matches(msg, m.keys.Submit):
		return []types.Action{types.SubmitTextAction{}}, true
	case key.Matches(msg, m.keys.Confirm):
		return []types.Action{types.ConfirmAction{}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: logic.DirectionUp}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: logic.DirectionDown}}, true
	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: logic.DirectionPageUp}}, true
	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: logic.DirectionPageDown}}, true
	case key.Matches(msg, m.keys.Top):
		return []types.Action{types.NavigateAction{Direction: logic.DirectionHome}}, true
	case key.Matches(msg, m.keys.Bottom):
		return []types.Action{types.NavigateAction{Direction: logic.DirectionEnd}}, true
	default:
		// Let the handler feed the key to the text field
		return nil, false
	}
}
