package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"lookup/internal/domain"
	"lookup/internal/eventbus"
	"lookup/internal/ui/commands"
	"lookup/internal/ui/input"
	inputtypes "lookup/internal/ui/input/types"
	"lookup/internal/ui/logic"
	"lookup/internal/ui/state"
	"lookup/internal/ui/viewmodels"
	"lookup/internal/ui/views"
)

const (
	DefaultPlaceholder = "Search..."
	DefaultSelectText  = "Select..."
	DefaultMaxVisible  = 10
)

// Viewer is anything that renders itself, such as another Bubble Tea model
type Viewer interface {
	View() string
}

// Options configures a widget. Everything except Data is fixed once the
// widget is built.
type Options struct {
	Data       []domain.Item
	DisplayKey string               // field shown and searched, default "title"
	SearchFunc logic.FilterStrategy // nil uses case-insensitive substring matching

	Placeholder        string
	SelectText         string
	HideSelectButton   bool
	CustomSelectButton Viewer

	OnSelect func(domain.Item)
	OnCancel func()

	// APIRoute is accepted for configuration compatibility and not used
	APIRoute string

	Styles     views.StyleOverrides
	HideDelay  time.Duration // length of the close transition
	MaxVisible int

	Logger logr.Logger
	Bus    eventbus.EventBus
	Keys   *inputtypes.KeyMap
}

// Model represents the widget
type Model struct {
	opts     Options
	state    state.Widget
	data     []domain.Item
	strategy logic.FilterStrategy
	log      logr.Logger
	focused  bool

	width  int
	height int
	layout views.OverlayLayout // where the overlay was last drawn

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
}

// NewModel creates a new widget
func NewModel(opts Options) *Model {
	if opts.DisplayKey == "" {
		opts.DisplayKey = domain.DefaultDisplayKey
	}
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultPlaceholder
	}
	if opts.SelectText == "" {
		opts.SelectText = DefaultSelectText
	}
	if opts.MaxVisible < 1 {
		opts.MaxVisible = DefaultMaxVisible
	}
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	log = log.WithName("lookup")

	keys := inputtypes.DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	strategy := opts.SearchFunc
	if strategy == nil {
		strategy = logic.Substring{DisplayKey: opts.DisplayKey}
	}

	styles := views.NewStyles().Apply(opts.Styles)

	m := &Model{
		opts:         opts,
		data:         opts.Data,
		state:        state.NewWidget(opts.Data),
		strategy:     strategy,
		log:          log,
		focused:      true,
		renderer:     views.NewRenderer(styles),
		inputHandler: input.New(keys, opts.Placeholder),
	}

	vmCfg := viewmodels.Config{
		DisplayKey:   opts.DisplayKey,
		TriggerLabel: opts.SelectText,
		Trigger:      views.ResolveTrigger(opts.HideSelectButton, opts.CustomSelectButton != nil),
		MaxVisible:   opts.MaxVisible,
		Placeholder:  styles.Placeholder,
	}
	if opts.CustomSelectButton != nil {
		vmCfg.CustomTrigger = opts.CustomSelectButton.View
	}
	m.viewModel = viewmodels.NewViewModel(vmCfg, keys, m.inputHandler.TextInput())

	m.cmdExecutor = commands.NewExecutor(&commands.CommandContext{
		State:       &m.state,
		Data:        &m.data,
		Strategy:    strategy,
		Bus:         opts.Bus,
		Log:         log,
		OnSelect:    opts.OnSelect,
		OnCancel:    opts.OnCancel,
		HideDelay:   opts.HideDelay,
		VisibleRows: m.viewModel.VisibleRows,
	})

	log.V(1).Info("widget created", "items", len(opts.Data), "trigger", vmCfg.Trigger.String())
	return m
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.state.Visible {
		return m.inputHandler.SetMode(inputtypes.ModeOpen, m)
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.state = logic.EnsureVisible(m.state, m.viewModel.VisibleRows())
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)
		return m, tea.Batch(cmd, m.apply(actions...))

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case OpenMsg:
		return m, m.Open()

	case DataMsg:
		return m, m.SetData(msg.Items)

	case commands.HiddenMsg:
		m.cmdExecutor.ExecuteHidden(msg.Session)
		if !m.state.Visible && !m.state.Hiding {
			m.inputHandler.ResetText()
		}
		return m, nil

	default:
		// Cursor blink and other text field messages
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the trigger, or the overlay while it is open
func (m *Model) View() string {
	vs := m.viewModel.BuildViewState(m.state, len(m.data))
	out, layout := m.renderer.Render(vs)
	m.layout = layout
	return out
}

// Open shows the overlay. This is the only way to open it when the
// trigger is hidden.
func (m *Model) Open() tea.Cmd {
	return m.apply(inputtypes.OpenAction{})
}

// SetData replaces the candidate list
func (m *Model) SetData(items []domain.Item) tea.Cmd {
	return m.cmdExecutor.ExecuteReplaceData(items)
}

// Focus lets the trigger react to keys
func (m *Model) Focus() {
	m.focused = true
}

// Blur stops the trigger from reacting to keys. An open overlay keeps the keyboard.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the trigger reacts to keys
func (m *Model) Focused() bool {
	return m.focused
}

// Visible reports whether the overlay is open
func (m *Model) Visible() bool {
	return m.state.Visible
}

// ResultCount returns the number of displayed results
func (m *Model) ResultCount() int {
	return len(m.state.Results)
}

// TriggerActive reports whether trigger keys may open the overlay
func (m *Model) TriggerActive() bool {
	return m.focused && m.viewModel.Trigger().Interactive()
}

// Query returns the current search text
func (m *Model) Query() string {
	return m.state.Query
}

// Results returns the displayed results in order
func (m *Model) Results() []domain.Item {
	return m.state.Results
}

// Highlighted returns the result under the cursor
func (m *Model) Highlighted() (domain.Item, bool) {
	return m.state.Highlighted()
}

// Data returns the current candidate list
func (m *Model) Data() []domain.Item {
	return m.data
}

// State returns a copy of the widget state
func (m *Model) State() state.Widget {
	return m.state
}

// Trigger returns the active trigger variant
func (m *Model) Trigger() views.TriggerVariant {
	return m.viewModel.Trigger()
}

// Layout returns where the overlay was last drawn
func (m *Model) Layout() views.OverlayLayout {
	return m.layout
}

// apply executes actions and keeps the input mode in step with visibility
func (m *Model) apply(actions ...inputtypes.Action) tea.Cmd {
	if len(actions) == 0 {
		return nil
	}
	wasVisible := m.state.Visible
	cmd := m.cmdExecutor.ExecuteAll(actions)

	switch {
	case !wasVisible && m.state.Visible:
		m.inputHandler.ResetText()
		return tea.Batch(cmd, m.inputHandler.SetMode(inputtypes.ModeOpen, m))
	case wasVisible && !m.state.Visible:
		return tea.Batch(cmd, m.inputHandler.SetMode(inputtypes.ModeClosed, m))
	}
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.state.Visible {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.apply(inputtypes.NavigateAction{Direction: logic.DirectionUp})
	case tea.MouseButtonWheelDown:
		return m.apply(inputtypes.NavigateAction{Direction: logic.DirectionDown})
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
	default:
		return nil
	}

	if m.layout.Close.Contains(msg.X, msg.Y) {
		return m.apply(inputtypes.CancelAction{Reason: domain.CancelExplicit})
	}
	if idx, ok := m.layout.RowAt(msg.X, msg.Y); ok {
		return m.apply(inputtypes.SelectAction{Index: idx})
	}
	if !m.layout.Box.Contains(msg.X, msg.Y) {
		return m.apply(inputtypes.CancelAction{Reason: domain.CancelBackdrop})
	}
	return nil
}
