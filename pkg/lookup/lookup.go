// Package lookup is a searchable single-select widget for Bubble Tea
// programs. A trigger opens a centered overlay with a text field and a
// result list; picking a result or typing text that matches nothing
// reports a selection, dismissing the overlay reports a cancellation.
//
//	m := lookup.New(lookup.Options{
//		Data:     []lookup.Item{{"title": "Apple"}, {"title": "Banana"}},
//		OnSelect: func(it lookup.Item) { chosen = it },
//	})
//
// The model is a tea.Model and can be embedded in a parent model or run
// on its own.
package lookup

import (
	"lookup/internal/domain"
	"lookup/internal/eventbus"
	"lookup/internal/ui"
	"lookup/internal/ui/input/types"
	"lookup/internal/ui/logic"
	"lookup/internal/ui/views"
)

// Item is one selectable record. Only the display field is read; the
// map handed to OnSelect is the caller's own.
type Item = domain.Item

type (
	Model          = ui.Model
	Options        = ui.Options
	Viewer         = ui.Viewer
	OpenMsg        = ui.OpenMsg
	DataMsg        = ui.DataMsg
	KeyMap         = types.KeyMap
	StyleOverrides = views.StyleOverrides
	TriggerVariant = views.TriggerVariant
)

// Filtering
type (
	FilterStrategy = logic.FilterStrategy
	StrategyFunc   = logic.StrategyFunc
	Substring      = logic.Substring
	Fuzzy          = logic.Fuzzy
)

// Lifecycle events
type (
	EventBus                = eventbus.EventBus
	DomainEvent             = domain.DomainEvent
	EventType               = domain.EventType
	CancelReason            = domain.CancelReason
	OverlayOpenedEvent      = domain.OverlayOpenedEvent
	QueryChangedEvent       = domain.QueryChangedEvent
	ItemSelectedEvent       = domain.ItemSelectedEvent
	SelectionCancelledEvent = domain.SelectionCancelledEvent
	OverlayHiddenEvent      = domain.OverlayHiddenEvent
	DataReplacedEvent       = domain.DataReplacedEvent
)

const (
	TriggerDefault = views.TriggerDefault
	TriggerCustom  = views.TriggerCustom
	TriggerHidden  = views.TriggerHidden

	CancelBackdrop = domain.CancelBackdrop
	CancelBack     = domain.CancelBack
	CancelExplicit = domain.CancelExplicit

	// SubmittedTextKey holds the typed text of a selection made without a matching result
	SubmittedTextKey = domain.SubmittedTextKey
)

// New creates a widget
func New(opts Options) *Model {
	return ui.NewModel(opts)
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return types.DefaultKeyMap()
}

// NewEventBus creates a bus to pass as Options.Bus
var NewEventBus = eventbus.New

// NewStrategy returns the strategy registered under name ("substring" or
// "fuzzy"), falling back to substring matching
func NewStrategy(name, displayKey string) FilterStrategy {
	return logic.NewStrategy(name, displayKey)
}
