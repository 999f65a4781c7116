package ui

import (
	"pagegrip/internal/domain"
)

// itemsLoadedMsg contains the result of loading the item source
type itemsLoadedMsg struct {
	items []domain.Item
	err   error
}

// pagerMsg contains the result of an ov pager session
type pagerMsg struct {
	what string // "help" or "items"
	err  error
}

// clearStatusMsg clears the status bar message
type clearStatusMsg struct {
	seq int
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
