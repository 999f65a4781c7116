package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"pagegrip/internal/domain"
	"pagegrip/internal/ui/views"
)

var errNoProgram = errors.New("program not set")

// Pager shows long content in the ov pager, handing the terminal over while
// it runs
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
	run     func(r io.Reader) error
}

// NewPager creates a new pager
func NewPager() *Pager {
	return &Pager{run: runOviewer}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Show pages through the content read from r
func (p *Pager) Show(r io.Reader) error {
	if p.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	return p.run(r)
}

// runOviewer runs ov over r until the user quits
func runOviewer(r io.Reader) error {
	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// WorkingSetContent renders every item of the working set, one per line,
// with a header naming the page size so the pager view lines up with the TUI
func WorkingSetContent(items []domain.Item, pageSize int) string {
	var b strings.Builder
	width := views.PositionWidth(items)
	for i, item := range items {
		if pageSize > 0 && i%pageSize == 0 {
			fmt.Fprintf(&b, "── page %d ──\n", i/pageSize+1)
		}
		b.WriteString(item.DisplayLabel(width))
		b.WriteString("\n")
	}
	return b.String()
}

// renderHelpContent renders the help information
func renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(16)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	line := func(key, desc string) {
		help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(key), descStyle.Render(desc)))
	}

	help.WriteString(titleStyle.Render("pagegrip Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Pages"))
	help.WriteString("\n")
	line("n, →, l, PgDn", "Next page")
	line("p, ←, h, PgUp", "Previous page")
	line("gg, Home", "First page")
	line("G, End", "Last page")
	line(":", "Go to page number")
	line("+/-", "Grow/shrink page size")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Within a page"))
	help.WriteString("\n")
	line("j/k, ↓/↑", "Move cursor")
	line("H/L", "First/last item on the page")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Filter & Sort"))
	help.WriteString("\n")
	line("F, /, ctrl+f", "Filter items (live)")
	line("Esc", "Clear filter")
	line("s", "Sort options")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Filter examples: item 1, prefix:item, suffix:9, pos:even, pos:odd"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	line("v", "View the whole filtered list")
	line("r", "Reload items")
	line("?", "This help")
	help.WriteString(fmt.Sprintf("  %s %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}
