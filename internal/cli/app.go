package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lookup/internal/domain"
	"lookup/internal/ui"
	"lookup/internal/ui/input/types"
)

type appKeys struct {
	Interrupt key.Binding
	Quit      key.Binding
	Help      key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		Help:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "keys")),
	}
}

// app hosts the widget for the pick command. It quits once an item is
// chosen, or when the user cancels with nothing left to return to.
type app struct {
	widget      *ui.Model
	keys        appKeys
	pager       *ui.PagerOps // set once the program exists
	title       string
	hideTrigger bool

	selected  domain.Item
	done      bool
	cancelled bool
}

// newApp wires the widget callbacks into the app. opts.OnSelect and
// opts.OnCancel are replaced.
func newApp(opts ui.Options, title string) *app {
	a := &app{
		keys:        defaultAppKeys(),
		title:       title,
		hideTrigger: opts.HideSelectButton,
	}
	opts.OnSelect = func(item domain.Item) {
		a.selected = item
		a.done = true
	}
	opts.OnCancel = func() {
		// with a visible trigger the user may open the overlay again
		if a.hideTrigger {
			a.cancelled = true
			a.done = true
		}
	}
	a.widget = ui.NewModel(opts)
	return a
}

func (a *app) Init() tea.Cmd {
	if a.hideTrigger {
		return tea.Batch(a.widget.Init(), a.widget.Open())
	}
	return a.widget.Init()
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, a.keys.Interrupt):
			a.cancelled = true
			a.done = true
			return a, tea.Quit
		case !a.widget.Visible() && key.Matches(k, a.keys.Quit):
			a.cancelled = true
			a.done = true
			return a, tea.Quit
		case key.Matches(k, a.keys.Help) && a.pager != nil:
			return a, a.showKeys()
		}
	}
	if _, ok := msg.(pagerClosedMsg); ok {
		return a, nil
	}

	_, cmd := a.widget.Update(msg)
	if a.done {
		return a, tea.Quit
	}
	return a, cmd
}

// pagerClosedMsg reports that the key reference pager was quit
type pagerClosedMsg struct {
	err error
}

// showKeys hands the terminal to ov until the pager is quit
func (a *app) showKeys() tea.Cmd {
	pager := a.pager
	content := ui.NewHelpRenderer().RenderHelpContent(types.DefaultKeyMap())
	return func() tea.Msg {
		return pagerClosedMsg{err: pager.ShowInPager(content)}
	}
}

var (
	appTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	appHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (a *app) View() string {
	if a.done {
		return ""
	}
	if a.widget.Visible() {
		return a.widget.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		appTitleStyle.Render(a.title),
		"",
		a.widget.View(),
		"",
		appHintStyle.Render("enter open • f1 keys • q quit"),
	)
}

// Result returns the chosen item, or ok false when the user cancelled
func (a *app) Result() (domain.Item, bool) {
	if a.cancelled || !a.done {
		return nil, false
	}
	return a.selected, true
}
