package eventbus

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/go-logr/logr"

	"lookup/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Re-export events
type (
	OverlayOpenedEvent      = domain.OverlayOpenedEvent
	QueryChangedEvent       = domain.QueryChangedEvent
	ItemSelectedEvent       = domain.ItemSelectedEvent
	SelectionCancelledEvent = domain.SelectionCancelledEvent
	OverlayHiddenEvent      = domain.OverlayHiddenEvent
	DataReplacedEvent       = domain.DataReplacedEvent
	DataLoadFailedEvent     = domain.DataLoadFailedEvent
)

// Event type constants
const (
	EventOverlayOpened      = domain.EventOverlayOpened
	EventQueryChanged       = domain.EventQueryChanged
	EventItemSelected       = domain.EventItemSelected
	EventSelectionCancelled = domain.EventSelectionCancelled
	EventOverlayHidden      = domain.EventOverlayHidden
	EventDataReplaced       = domain.EventDataReplaced
	EventDataLoadFailed     = domain.EventDataLoadFailed
)

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	SubscribeAll(handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Handlers run on the publishing goroutine, in subscription order.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	all      []subscription
	nextID   uint64
	log      logr.Logger
}

// New creates a new event bus
func New(log logr.Logger) EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
		log:      log.WithName("eventbus"),
	}
}

// Publish delivers an event to every subscriber before returning
func (b *bus) Publish(event DomainEvent) {
	if event == nil {
		return
	}

	// QueryChanged fires on every keystroke
	if event.Type() != EventQueryChanged {
		b.log.V(1).Info("publishing event", "type", event.Type())
	}

	b.mu.RLock()
	handlers := make([]subscription, 0, len(b.handlers[event.Type()])+len(b.all))
	handlers = append(handlers, b.handlers[event.Type()]...)
	handlers = append(handlers, b.all...)
	b.mu.RUnlock()

	for _, s := range handlers {
		b.call(s.handler, event)
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.handlers[eventType] = remove(b.handlers[eventType], id)
	}
}

// SubscribeAll subscribes to every event type
func (b *bus) SubscribeAll(handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.all = append(b.all, subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.all = remove(b.all, id)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error(fmt.Errorf("%v", r), "event handler panic", "type", event.Type(), "stack", string(debug.Stack()))
		}
	}()
	h(event)
}

func remove(subs []subscription, id uint64) []subscription {
	out := subs[:0:0]
	for _, s := range subs {
		if s.id != id {
			out = append(out, s)
		}
	}
	return out
}
