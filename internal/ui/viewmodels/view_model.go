package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"lookup/internal/domain"
	"lookup/internal/ui/input/types"
	"lookup/internal/ui/logic"
	"lookup/internal/ui/state"
	"lookup/internal/ui/views"
)

const (
	maxInnerWidth = 60
	minInnerWidth = 20
	// border, header, footer and one line of backdrop above and below
	overlayChrome = 6
	// close control, the gap before it and the text field's cursor cell
	fieldMargin = 4
)

// Config holds the presentation settings of one widget
type Config struct {
	DisplayKey    string
	TriggerLabel  string
	Trigger       views.TriggerVariant
	CustomTrigger func() string
	MaxVisible    int
	Placeholder   lipgloss.Style
}

// ViewModel transforms widget state into view-ready data
type ViewModel struct {
	config           Config
	width            int
	height           int
	help             help.Model
	keys             types.KeyMap
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(cfg Config, keys types.KeyMap, textInput *textinput.Model) *ViewModel {
	if cfg.DisplayKey == "" {
		cfg.DisplayKey = domain.DefaultDisplayKey
	}
	if cfg.MaxVisible < 1 {
		cfg.MaxVisible = 10
	}
	vm := &ViewModel{
		config:           cfg,
		help:             help.New(),
		keys:             keys,
		inputTransformer: NewInputTransformer(textInput, cfg.Placeholder),
	}
	vm.inputTransformer.SetWidth(vm.InnerWidth() - fieldMargin)
	return vm
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = vm.InnerWidth()
	vm.inputTransformer.SetWidth(vm.InnerWidth() - fieldMargin)
}

// Trigger returns the active trigger variant
func (vm *ViewModel) Trigger() views.TriggerVariant {
	return vm.config.Trigger
}

// InnerWidth is the content width of the overlay box
func (vm *ViewModel) InnerWidth() int {
	if vm.width <= 0 {
		return maxInnerWidth
	}
	w := vm.width - 6
	if w > maxInnerWidth {
		w = maxInnerWidth
	}
	if w < minInnerWidth {
		w = minInnerWidth
	}
	return w
}

// VisibleRows is how many result rows fit in the overlay
func (vm *ViewModel) VisibleRows() int {
	rows := vm.config.MaxVisible
	if vm.height > 0 {
		if fit := vm.height - overlayChrome; fit < rows {
			rows = fit
		}
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Label returns the text shown for an item
func (vm *ViewModel) Label(item domain.Item) string {
	label, _ := domain.DisplayValue(item, vm.config.DisplayKey)
	return label
}

// BuildViewState creates the view state from the widget state
func (vm *ViewModel) BuildViewState(s state.Widget, total int) views.ViewState {
	vs := views.ViewState{
		Width:        vm.width,
		Height:       vm.height,
		Visible:      s.Visible,
		Trigger:      vm.config.Trigger,
		TriggerLabel: vm.config.TriggerLabel,
		Total:        total,
	}
	if vm.config.Trigger == views.TriggerCustom && vm.config.CustomTrigger != nil {
		vs.CustomTrigger = vm.config.CustomTrigger()
	}
	if !s.Visible {
		return vs
	}

	rows := vm.VisibleRows()
	s = logic.EnsureVisible(s, rows)
	start, end := logic.VisibleRange(s, rows)

	vs.Input = vm.inputTransformer.GetInputText()
	vs.Query = s.Query
	vs.InnerWidth = vm.InnerWidth()
	vs.FirstIndex = start
	vs.Matches = len(s.Results)
	vs.Help = vm.help.View(vm.keys)
	for i := start; i < end; i++ {
		vs.Rows = append(vs.Rows, views.RowView{
			Index:    i,
			Label:    vm.Label(s.Results[i]),
			Selected: i == s.Cursor,
		})
	}
	return vs
}
