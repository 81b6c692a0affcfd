package config

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"lookup/internal/ui"
	"lookup/internal/ui/logic"
	"lookup/internal/ui/views"
)

var borders = map[string]lipgloss.Border{
	"rounded": lipgloss.RoundedBorder(),
	"normal":  lipgloss.NormalBorder(),
	"thick":   lipgloss.ThickBorder(),
	"double":  lipgloss.DoubleBorder(),
	"hidden":  lipgloss.HiddenBorder(),
	"none":    {},
}

// ToOptions turns the config into widget options. Callbacks, data, the
// logger and the event bus are left for the caller to fill in.
func (c *Config) ToOptions() ui.Options {
	defaults := views.NewStyles()

	opts := ui.Options{
		DisplayKey:       c.DisplayKey,
		Placeholder:      c.Placeholder,
		SelectText:       c.SelectText,
		HideSelectButton: c.HideSelectButton,
		APIRoute:         c.APIRoute,
		HideDelay:        time.Duration(c.HideDelay),
		MaxVisible:       c.MaxVisible,
		SearchFunc:       logic.NewStrategy(c.Matcher, c.DisplayKey),
	}

	opts.Styles.Button = override(defaults.Button, c.Styles.Button)
	opts.Styles.Content = override(defaults.Content, c.Styles.Content)
	opts.Styles.Item = override(defaults.Item, c.Styles.Item)
	opts.Styles.SelectedItem = override(defaults.SelectedItem, c.Styles.SelectedItem)
	opts.Styles.Placeholder = override(defaults.Placeholder, c.Styles.Placeholder)
	return opts
}

// override applies sc on top of base, or returns nil when sc sets nothing
func override(base lipgloss.Style, sc StyleConfig) *lipgloss.Style {
	if sc.IsZero() {
		return nil
	}
	st := base
	if sc.Foreground != "" {
		st = st.Foreground(lipgloss.Color(sc.Foreground))
	}
	if sc.Background != "" {
		st = st.Background(lipgloss.Color(sc.Background))
	}
	if sc.Bold != nil {
		st = st.Bold(*sc.Bold)
	}
	if sc.Italic != nil {
		st = st.Italic(*sc.Italic)
	}
	if sc.Border != "" {
		name := strings.ToLower(sc.Border)
		if b, ok := borders[name]; ok {
			st = st.Border(b, name != "none")
		}
	}
	return &st
}
