package eventbus

import (
	"runtime/debug"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"pagegrip/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventItemsLoaded   = domain.EventItemsLoaded
	EventPageChanged   = domain.EventPageChanged
	EventFilterChanged = domain.EventFilterChanged
	EventSortChanged   = domain.EventSortChanged
	EventNavRejected   = domain.EventNavRejected
	EventError         = domain.EventError
	EventConfigLoaded  = domain.EventConfigLoaded
	EventConfigSaved   = domain.EventConfigSaved
)

// Re-export domain event types
type ItemsLoadedEvent = domain.ItemsLoadedEvent
type PageChangedEvent = domain.PageChangedEvent
type FilterChangedEvent = domain.FilterChangedEvent
type SortChangedEvent = domain.SortChangedEvent
type NavigationRejectedEvent = domain.NavigationRejectedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscriber struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Publish runs handlers inline, in subscription order, on the caller's goroutine.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscriber
	nextID   uint64
	logger   zerolog.Logger
}

// New creates a new event bus
func New(logger zerolog.Logger) EventBus {
	return &bus{
		handlers: make(map[EventType][]subscriber),
		logger:   logger.With().Str("component", "eventbus").Logger(),
	}
}

// Publish delivers an event to all subscribers before returning
func (b *bus) Publish(event DomainEvent) {
	// Page changes fire on every keystroke while filtering
	if event.Type() != EventPageChanged {
		b.logger.Debug().Str("event", string(event.Type())).Msg("publishing event")
	}

	// Copy so handlers may subscribe or unsubscribe while we dispatch
	b.mu.RLock()
	handlers := slices.Clone(b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range handlers {
		b.call(s.handler, event)
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		b.handlers[eventType] = slices.DeleteFunc(b.handlers[eventType], func(s subscriber) bool {
			return s.id == id
		})
	}
}

// call runs a single handler, recovering from panics
func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().
				Str("event", string(event.Type())).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("event handler panic")
		}
	}()
	h(event)
}
