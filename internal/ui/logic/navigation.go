package logic

// Navigator tracks the cursor inside the current page window and the
// viewport over it when the window is taller than the screen
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	total          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// Reset moves the cursor to the top of a new window with total rows
func (n *Navigator) Reset(total int) {
	n.total = max(total, 0)
	n.selectedIndex = 0
	n.viewportOffset = 0
}

// Resize updates the window length and viewport height, keeping the cursor
// on a valid row
func (n *Navigator) Resize(total, viewportHeight int) {
	n.total = max(total, 0)
	n.viewportHeight = max(viewportHeight, 1)
	n.clamp()
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// Move moves the cursor by delta rows, stopping at the window edges.
// It reports whether the cursor moved.
func (n *Navigator) Move(delta int) bool {
	before := n.selectedIndex
	n.selectedIndex += delta
	n.clamp()
	return n.selectedIndex != before
}

// Top moves the cursor to the first row
func (n *Navigator) Top() {
	n.selectedIndex = 0
	n.clamp()
}

// Bottom moves the cursor to the last row
func (n *Navigator) Bottom() {
	n.selectedIndex = n.total - 1
	n.clamp()
}

// VisibleRange returns the half-open row range to draw and whether scroll
// indicators are needed above and below it
func (n *Navigator) VisibleRange() (start, end int, above, below bool) {
	start = n.viewportOffset
	end = min(start+n.effectiveHeight(), n.total)
	return start, end, start > 0, end < n.total
}

func (n *Navigator) clamp() {
	if n.selectedIndex >= n.total {
		n.selectedIndex = n.total - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
	n.ensureSelectedVisible()
}

// ensureSelectedVisible adjusts the viewport to keep the selected row visible
func (n *Navigator) ensureSelectedVisible() {
	height := n.effectiveHeight()

	// If selected row is above viewport, scroll up
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}

	// If selected row is below viewport, scroll down
	if n.selectedIndex >= n.viewportOffset+height {
		n.viewportOffset = n.selectedIndex - height + 1
	}

	// Don't scroll past the last row
	if maxOffset := n.total - height; n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}

// effectiveHeight is the number of item rows in the viewport. When the
// window does not fit, two rows are kept for the scroll indicators.
func (n *Navigator) effectiveHeight() int {
	if n.total <= n.viewportHeight {
		return n.viewportHeight
	}
	return max(n.viewportHeight-2, 1)
}
