package state

import (
	"pagegrip/internal/domain"
	"pagegrip/internal/paginator"
	"pagegrip/internal/ui/logic"
)

// AppState contains all the application state
type AppState struct {
	// Source data
	Source string        // items file, or "demo"
	Items  []domain.Item // full collection as loaded

	// Last page emitted by the paginator
	Window     []domain.Item
	Page       paginator.State
	TotalPages int
	TotalItems int // size of the working set

	// Filter and sort state
	FilterQuery     string         // applied filter query
	FilterBackup    string         // query to restore when filter editing is cancelled
	Sort            logic.SortMode // applied sort mode
	SortOptionIndex int            // highlighted option in sort mode

	// UI state
	Loading       bool
	StatusMessage string // status bar message
	StatusIsError bool
	ShowHelpHint  bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Items:        make([]domain.Item, 0),
		Window:       make([]domain.Item, 0),
		Page:         paginator.State{Page: 1, PageSize: paginator.DefaultPageSize},
		Sort:         logic.DefaultSortMode,
		ShowHelpHint: true,
	}
}

// ApplyPageChange records a paginator emission
func (s *AppState) ApplyPageChange(change paginator.PageChange[domain.Item], totalPages, totalItems int) {
	s.Window = change.Items
	s.Page = change.State
	s.TotalPages = totalPages
	s.TotalItems = totalItems
}

// Summary describes the current page for events and the status line
func (s *AppState) Summary() domain.PageSummary {
	return domain.PageSummary{
		Page:       s.Page.Page,
		PageSize:   s.Page.PageSize,
		Shown:      len(s.Window),
		TotalPages: s.TotalPages,
		TotalItems: s.TotalItems,
	}
}

// SetStatus sets the status bar message
func (s *AppState) SetStatus(message string, isError bool) {
	s.StatusMessage = message
	s.StatusIsError = isError
}

// ClearStatus clears the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
