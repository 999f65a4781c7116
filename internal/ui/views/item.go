package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pagegrip/internal/domain"
)

// ItemRenderer handles rendering of page items
type ItemRenderer struct {
	styles *Styles
}

// NewItemRenderer creates a new item renderer
func NewItemRenderer(styles *Styles) *ItemRenderer {
	return &ItemRenderer{styles: styles}
}

// RenderItem renders one row: cursor marker, source position, label.
// filterQuery is highlighted in the label when it is plain text.
func (r *ItemRenderer) RenderItem(item domain.Item, isSelected bool, positionWidth int, filterQuery string, width int) string {
	marker := "  "
	if isSelected {
		marker = "> "
	}

	position := strconv.Itoa(item.Position)
	if pad := positionWidth - len(position); pad > 0 {
		position = strings.Repeat(" ", pad) + position
	}

	posStyle := r.styles.Position
	if isSelected {
		posStyle = posStyle.Background(lipgloss.Color("238"))
	}

	label := r.highlightMatch(item.Label, filterQuery, isSelected)

	line := marker + posStyle.Render(position) + "  " + label
	if isSelected {
		// Extend the selection background to the available width
		if fill := width - 4 - lipgloss.Width(line); fill > 0 {
			line += r.styles.HighlightBg.Render(strings.Repeat(" ", fill))
		}
	}
	return line
}

// highlightMatch emphasises the first case-insensitive occurrence of query
func (r *ItemRenderer) highlightMatch(label, query string, isSelected bool) string {
	base := lipgloss.NewStyle()
	if isSelected {
		base = r.styles.HighlightBg
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || strings.Contains(query, ":") {
		return base.Render(label)
	}

	// Lowercasing can change byte lengths outside ASCII; skip highlighting then
	lower := strings.ToLower(label)
	idx := strings.Index(lower, query)
	if idx < 0 || len(lower) != len(label) {
		return base.Render(label)
	}
	end := idx + len(query)

	match := r.styles.Highlight
	if isSelected {
		match = match.Background(lipgloss.Color("238"))
	}
	return base.Render(label[:idx]) + match.Render(label[idx:end]) + base.Render(label[end:])
}

// PositionWidth returns the digits needed for the largest position in items
func PositionWidth(items []domain.Item) int {
	width := 1
	for _, item := range items {
		if w := len(strconv.Itoa(item.Position)); w > width {
			width = w
		}
	}
	return width
}
