package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	inputtypes "lookup/internal/ui/input/types"
)

// HelpRenderer renders the key reference
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent lists every binding of keys, grouped the way the
// overlay footer groups them
func (r *HelpRenderer) RenderHelpContent(keys inputtypes.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("lookup keys"))
	help.WriteString("\n")

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Trigger", []key.Binding{keys.Open}},
		{"Navigation", keys.FullHelp()[0]},
		{"Selection", keys.FullHelp()[1]},
	}
	for _, s := range sections {
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, b := range s.bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(strings.Join(b.Keys(), ", ")), descStyle.Render(h.Desc)))
		}
	}

	return help.String()
}

// PagerOps shows text in the ov pager
type PagerOps struct {
	program *tea.Program // when set, the program's terminal is released while ov runs
}

// NewPagerOps creates a new pager instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// ShowInPager runs ov over content until the user quits it
func (p *PagerOps) ShowInPager(content string) error {
	if p.program != nil {
		if err := p.program.ReleaseTerminal(); err != nil {
			return err
		}
		defer func() {
			// Small delay to ensure ov has fully exited before restoring terminal
			time.Sleep(100 * time.Millisecond)
			_ = p.program.RestoreTerminal()
		}()
	}

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("open pager: %w", err)
	}

	// Do not write the document back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
