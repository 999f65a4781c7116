package domain

import "fmt"

// Item is a single entry browsed through the paginator
type Item struct {
	Position int    // 1-based position in the source
	Label    string // text shown in the list and matched by filters
}

// NewItem creates an item at the given source position
func NewItem(position int, label string) Item {
	return Item{Position: position, Label: label}
}

// String returns the label
func (i Item) String() string {
	return i.Label
}

// DisplayLabel returns the label prefixed with its source position
func (i Item) DisplayLabel(width int) string {
	return fmt.Sprintf("%*d  %s", width, i.Position, i.Label)
}

// PageSummary describes a page change for logging and status display
type PageSummary struct {
	Page       int
	PageSize   int
	Shown      int // number of items in the window
	TotalPages int
	TotalItems int
}
