package types

import "pagegrip/internal/ui/logic"

// Page directions
const (
	PageNext     = "next"
	PagePrevious = "prev"
	PageFirst    = "first"
	PageLast     = "last"
)

// Cursor directions
const (
	CursorUp     = "up"
	CursorDown   = "down"
	CursorTop    = "top"
	CursorBottom = "bottom"
)

// Page navigation actions
type PageAction struct {
	Direction string // PageNext, PagePrevious, PageFirst, PageLast
}

func (a PageAction) Type() string { return "page" }

type GoToPageAction struct {
	Page int
}

func (a GoToPageAction) Type() string { return "goto_page" }

// Cursor movement within the current page
type CursorAction struct {
	Direction string // CursorUp, CursorDown, CursorTop, CursorBottom
}

func (a CursorAction) Type() string { return "cursor" }

// ResizePageAction grows or shrinks the page size by Delta items
type ResizePageAction struct {
	Delta int
}

func (a ResizePageAction) Type() string { return "resize_page" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode // Which mode the text belongs to
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// ClearFilterAction drops the active filter
type ClearFilterAction struct{}

func (a ClearFilterAction) Type() string { return "clear_filter" }

// Sort actions
type SortByAction struct {
	Mode logic.SortMode
}

func (a SortByAction) Type() string { return "sort_by" }

type UpdateSortIndexAction struct {
	Index int
}

func (a UpdateSortIndexAction) Type() string { return "update_sort_index" }

// Command actions
type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
