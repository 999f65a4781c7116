package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventItemsLoaded   EventType = "ItemsLoaded"
	EventPageChanged   EventType = "PageChanged"
	EventFilterChanged EventType = "FilterChanged"
	EventSortChanged   EventType = "SortChanged"
	EventNavRejected   EventType = "NavigationRejected"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ItemsLoadedEvent is emitted when a source has produced its items
type ItemsLoadedEvent struct {
	Source string // file path, or "demo"
	Count  int
}

func (e ItemsLoadedEvent) Type() EventType { return EventItemsLoaded }

// PageChangedEvent mirrors a paginator emission
type PageChangedEvent struct {
	Summary PageSummary
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// FilterChangedEvent is emitted when the filter query is applied
type FilterChangedEvent struct {
	Query   string
	Matches int
}

func (e FilterChangedEvent) Type() EventType { return EventFilterChanged }

// SortChangedEvent is emitted when the sort mode changes
type SortChangedEvent struct {
	OldMode string
	NewMode string
}

func (e SortChangedEvent) Type() EventType { return EventSortChanged }

// NavigationRejectedEvent is emitted when a navigation request was ignored
// because the target page does not exist
type NavigationRejectedEvent struct {
	Requested  int
	TotalPages int
}

func (e NavigationRejectedEvent) Type() EventType { return EventNavRejected }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	PageSize int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
