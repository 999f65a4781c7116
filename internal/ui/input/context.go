package input

import (
	"pagegrip/internal/domain"
	"pagegrip/internal/paginator"
	"pagegrip/internal/ui/logic"
	"pagegrip/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State     *state.AppState
	Paginator *paginator.Paginator[domain.Item]
}

// CurrentPage returns the page shown
func (c *ModelContext) CurrentPage() int {
	return c.Paginator.CurrentPage()
}

// TotalPages returns the number of pages in the working set
func (c *ModelContext) TotalPages() int {
	return c.Paginator.TotalPages()
}

// PageSize returns the items per page
func (c *ModelContext) PageSize() int {
	return c.Paginator.PageSize()
}

// WindowLen returns the number of items on the current page
func (c *ModelContext) WindowLen() int {
	return len(c.State.Window)
}

// FilterQuery returns the applied filter query
func (c *ModelContext) FilterQuery() string {
	return c.State.FilterQuery
}

// CurrentSort returns the current sort mode
func (c *ModelContext) CurrentSort() logic.SortMode {
	return c.State.Sort
}
