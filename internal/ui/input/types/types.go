package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"pagegrip/internal/ui/logic"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilter
	ModeGoTo
	ModeSort
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeFilter:
		return "filter"
	case ModeGoTo:
		return "goto"
	case ModeSort:
		return "sort"
	default:
		return "normal"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentPage() int
	TotalPages() int
	PageSize() int
	WindowLen() int
	FilterQuery() string
	CurrentSort() logic.SortMode
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
