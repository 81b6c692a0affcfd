package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// InputTransformer turns the search field model into its rendered form
type InputTransformer struct {
	textInput *textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput *textinput.Model, placeholder lipgloss.Style) *InputTransformer {
	textInput.PlaceholderStyle = placeholder
	return &InputTransformer{
		textInput: textInput,
	}
}

// SetWidth keeps the field inside the overlay
func (it *InputTransformer) SetWidth(width int) {
	if width < 1 {
		width = 1
	}
	it.textInput.Width = width
}

// GetInputText returns the rendered search field
func (it *InputTransformer) GetInputText() string {
	return it.textInput.View()
}
