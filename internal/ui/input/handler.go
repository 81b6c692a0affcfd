package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lookup/internal/ui/input/modes"
	"lookup/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Search field shown in the overlay
	keys        types.KeyMap
}

func New(keys types.KeyMap, placeholder string) *Handler {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""

	h := &Handler{
		currentMode: types.ModeClosed,
		textInput:   &ti,
		keys:        keys,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeClosed] = modes.NewClosedMode(keys)
	h.modes[types.ModeOpen] = modes.NewOpenMode(h.textInput, keys)

	return h
}

// HandleKey routes a key to the current mode. Keys the mode does not
// consume go to the text field while the overlay is open; a change of the
// field's value is reported as an UpdateTextAction.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed {
		return actions, nil
	}
	if !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		actions = append(actions, types.UpdateTextAction{Text: after})
	}
	return actions, cmd
}

// SetMode switches modes, running the exit and enter hooks
func (h *Handler) SetMode(mode types.Mode, ctx types.Context) tea.Cmd {
	if mode == h.currentMode {
		return nil
	}
	if old := h.modes[h.currentMode]; old != nil {
		old.Exit(ctx)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		next.Enter(ctx)
	}
	if h.isTextMode(mode) {
		return textinput.Blink
	}
	return nil
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// TextInput returns the search field model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// ResetText clears the search field
func (h *Handler) ResetText() {
	h.textInput.Reset()
}

// Update handles non-keyboard messages for the text field (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeOpen
}
