package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pagegrip/internal/domain"
	"pagegrip/internal/ui/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Source         string
	CollectionSize int // items loaded, before filtering
	Loading        bool

	Window        []domain.Item
	Page          int
	PageSize      int
	TotalPages    int
	TotalItems    int // working set size
	SelectedIndex int
	VisibleStart  int
	VisibleEnd    int
	MoreAbove     bool
	MoreBelow     bool

	FilterQuery     string
	SortMode        logic.SortMode
	InputMode       string // "", "filter", "goto" or "sort"
	Prompt          string
	TextInput       string
	SortOptionIndex int

	StatusMessage string
	StatusIsError bool
	ShowHelpHint  bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	itemRender *ItemRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		itemRender: NewItemRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	if state.InputMode != "" {
		if state.InputMode == "sort" {
			content.WriteString(r.renderSortOptions(state))
		} else {
			content.WriteString(r.styles.Prompt.Render(state.Prompt))
			content.WriteString(state.TextInput)
		}
		content.WriteString("\n\n")
	}

	// Main content
	switch {
	case state.Loading && state.CollectionSize == 0:
		content.WriteString(r.styles.Dim.Render("Loading items..."))
	case state.CollectionSize == 0:
		content.WriteString(r.styles.Dim.Render("No items. Press r to reload."))
	case state.TotalItems == 0:
		content.WriteString(r.styles.Dim.Render("No items match the filter. Press esc to clear it."))
	case len(state.Window) == 0:
		content.WriteString(r.styles.Dim.Render(fmt.Sprintf("Page %d is past the end. Press End or G for the last page.", state.Page)))
	default:
		content.WriteString(r.renderWindow(state))
	}

	content.WriteString("\n")
	content.WriteString(r.styles.Status.Render(StatusLine(state.Page, state.TotalPages, state.PageSize, state.TotalItems)))

	if state.StatusMessage != "" {
		style := r.styles.StatusInfo
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	// Push the help hint to the bottom
	if state.ShowHelpHint && state.InputMode == "" {
		currentLines := strings.Count(content.String(), "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render("n/p page • j/k move • F filter • s sort • : go to • v view all • ? help • q quit"))
	}

	return r.styles.Main.MaxHeight(max(state.Height, 1)).Render(content.String())
}

// StatusLine formats the pagination summary
func StatusLine(page, totalPages, pageSize, totalItems int) string {
	return fmt.Sprintf("Page %d/%d · %d per page · %d %s", page, totalPages, pageSize, totalItems, plural(totalItems, "item", "items"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// renderTitle renders the logo with right-aligned filter and sort indicators
func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("pagegrip")

	var indicators []string
	if state.Source != "" {
		indicators = append(indicators, r.styles.Dim.Render(state.Source))
	}
	if state.FilterQuery != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery)))
	}
	if state.SortMode.Field != logic.SortNone {
		indicators = append(indicators, r.styles.Sort.Render(fmt.Sprintf("[Sort: %s]", state.SortMode.Label())))
	}
	if len(indicators) == 0 {
		return logo
	}

	rightContent := strings.Join(indicators, "  ")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4 // Account for main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return logo + "  " + rightContent
}

// renderWindow renders the visible rows of the current page
func (r *Renderer) renderWindow(state ViewState) string {
	var lines []string
	positionWidth := PositionWidth(state.Window)

	if state.MoreAbove {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.VisibleStart)))
	}

	end := min(state.VisibleEnd, len(state.Window))
	for i := state.VisibleStart; i < end; i++ {
		lines = append(lines, r.itemRender.RenderItem(state.Window[i], i == state.SelectedIndex, positionWidth, state.FilterQuery, state.Width))
	}

	if state.MoreBelow {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", len(state.Window)-end)))
	}

	return strings.Join(lines, "\n")
}

// renderSortOptions renders the sort mode selection interface
func (r *Renderer) renderSortOptions(state ViewState) string {
	if state.SortOptionIndex < 0 || state.SortOptionIndex >= len(logic.SortModes) {
		return ""
	}
	option := logic.SortModes[state.SortOptionIndex]
	sortLine := r.styles.Prompt.Render("Sort by: ") + option.Label()
	helpLine := r.styles.Dim.Render("↑/↓ or j/k to change • Enter to accept • Esc to cancel")
	return sortLine + "\n" + helpLine
}
