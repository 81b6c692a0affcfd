package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the widget
type Styles struct {
	Button       lipgloss.Style
	Content      lipgloss.Style
	Input        lipgloss.Style
	Placeholder  lipgloss.Style
	CloseButton  lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	Empty        lipgloss.Style
	Count        lipgloss.Style
	Help         lipgloss.Style
	Backdrop     lipgloss.Style
	BackdropChar string
}

// StyleOverrides replaces individual default styles. Nil fields keep the default.
type StyleOverrides struct {
	Button       *lipgloss.Style
	Content      *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	Placeholder  *lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Button: lipgloss.NewStyle().
			Bold(true).
			Italic(true).
			Foreground(lipgloss.Color("#1a1a1a")).
			Background(lipgloss.Color("#d6d6d6")).
			Padding(0, 1),
		Content: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Input:        lipgloss.NewStyle(),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		CloseButton:  lipgloss.NewStyle().Bold(true),
		Item:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SelectedItem: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("238")),
		Empty:        lipgloss.NewStyle().Faint(true).Italic(true),
		Count:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:         lipgloss.NewStyle().Faint(true),
		Backdrop:     lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		BackdropChar: "░",
	}
}

// Apply returns a copy of s with the overrides applied
func (s *Styles) Apply(o StyleOverrides) *Styles {
	out := *s
	if o.Button != nil {
		out.Button = *o.Button
	}
	if o.Content != nil {
		out.Content = *o.Content
	}
	if o.Item != nil {
		out.Item = *o.Item
	}
	if o.SelectedItem != nil {
		out.SelectedItem = *o.SelectedItem
	}
	if o.Placeholder != nil {
		out.Placeholder = *o.Placeholder
	}
	return &out
}
