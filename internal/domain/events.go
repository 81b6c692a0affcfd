package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventOverlayOpened      EventType = "OverlayOpened"
	EventQueryChanged       EventType = "QueryChanged"
	EventItemSelected       EventType = "ItemSelected"
	EventSelectionCancelled EventType = "SelectionCancelled"
	EventOverlayHidden      EventType = "OverlayHidden"
	EventDataReplaced       EventType = "DataReplaced"
	EventDataLoadFailed     EventType = "DataLoadFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CancelReason tells how the overlay was dismissed without a selection
type CancelReason string

const (
	CancelBackdrop CancelReason = "backdrop"
	CancelBack     CancelReason = "back"
	CancelExplicit CancelReason = "explicit"
)

// OverlayOpenedEvent is emitted when the overlay becomes visible
type OverlayOpenedEvent struct {
	Candidates int
}

func (e OverlayOpenedEvent) Type() EventType { return EventOverlayOpened }

// QueryChangedEvent is emitted after every keystroke that changes the query
type QueryChangedEvent struct {
	Query   string
	Results int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// ItemSelectedEvent is emitted when the overlay closes with a selection
type ItemSelectedEvent struct {
	Item      Item
	Synthetic bool // built from typed text, not picked from the list
}

func (e ItemSelectedEvent) Type() EventType { return EventItemSelected }

// SelectionCancelledEvent is emitted when the overlay closes without a selection
type SelectionCancelledEvent struct {
	Reason CancelReason
}

func (e SelectionCancelledEvent) Type() EventType { return EventSelectionCancelled }

// OverlayHiddenEvent is emitted once the close transition has finished
type OverlayHiddenEvent struct{}

func (e OverlayHiddenEvent) Type() EventType { return EventOverlayHidden }

// DataReplacedEvent is emitted when the caller swaps the candidate pool
type DataReplacedEvent struct {
	Count int
}

func (e DataReplacedEvent) Type() EventType { return EventDataReplaced }

// DataLoadFailedEvent is emitted by the data watcher when a reload fails
type DataLoadFailedEvent struct {
	Path string
	Err  error
}

func (e DataLoadFailedEvent) Type() EventType { return EventDataLoadFailed }
