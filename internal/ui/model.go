package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"pagegrip/internal/config"
	"pagegrip/internal/domain"
	"pagegrip/internal/eventbus"
	"pagegrip/internal/paginator"
	"pagegrip/internal/source"
	"pagegrip/internal/ui/input"
	inputtypes "pagegrip/internal/ui/input/types"
	"pagegrip/internal/ui/logic"
	"pagegrip/internal/ui/state"
	"pagegrip/internal/ui/views"
)

// statusTimeout is how long a status message stays on screen
const statusTimeout = 3 * time.Second

// chromeLines is the number of screen rows used by everything but the page window
const chromeLines = 11

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger zerolog.Logger
	state  *state.AppState // centralized state
	loader source.Loader

	// UI-specific state not in AppState
	width          int
	height         int
	viewportHeight int
	inPagerMode    bool // tracks if we're currently in pager mode
	statusSeq      int  // identifies the status message a clearStatusMsg belongs to

	// Handlers
	pages        *paginator.Paginator[domain.Item]
	navigator    *logic.Navigator // cursor and viewport within the page
	renderer     *views.Renderer  // view renderer
	inputHandler *input.Handler   // input handling
	pager        *Pager           // ov pager for help and the full list
}

// NewModel creates a new UI model.
// Items arrive asynchronously from loader once the program starts.
func NewModel(bus eventbus.EventBus, cfg *config.Config, loader source.Loader, logger zerolog.Logger) *Model {
	appState := state.NewAppState()
	appState.Loading = true
	appState.ShowHelpHint = cfg.UISettings.ShowHelpHint

	policy := paginator.ClampNever
	if cfg.Pagination.ClampOnShrink {
		policy = paginator.ClampToLastPage
	}

	m := &Model{
		bus:            bus,
		config:         cfg,
		logger:         logger.With().Str("component", "ui").Logger(),
		state:          appState,
		loader:         loader,
		viewportHeight: 20, // Will be updated on first WindowSizeMsg
		pages:          paginator.New(paginator.WithClampPolicy[domain.Item](policy)),
		navigator:      logic.NewNavigator(),
		renderer:       views.NewRenderer(),
		inputHandler:   input.New(),
		pager:          NewPager(),
	}
	m.pages.Subscribe(m.onPageChange)

	sortMode, err := logic.ParseSortMode(cfg.Pagination.Sort)
	if err != nil {
		m.logger.Warn().Err(err).Msg("ignoring configured sort")
	}
	appState.Sort = sortMode
	appState.FilterQuery = cfg.Pagination.Filter

	m.pages.SetInputs(nil, cfg.Pagination.PageSize, logic.ParseFilter(appState.FilterQuery), logic.Comparator(sortMode))
	m.logger.Debug().
		Stringer("clamp", policy).
		Int("page_size", m.pages.PageSize()).
		Msg("paginator ready")

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// State returns the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Paginator returns the paginator driving the page window
func (m *Model) Paginator() *paginator.Paginator[domain.Item] {
	return m.pages
}

// Init starts loading the items
func (m *Model) Init() tea.Cmd {
	return m.loadItems()
}

// onPageChange records every paginator emission
func (m *Model) onPageChange(change paginator.PageChange[domain.Item]) {
	prevPage := m.state.Page.Page
	m.state.ApplyPageChange(change, m.pages.TotalPages(), m.pages.Len())

	if change.State.Page != prevPage {
		m.navigator.Reset(len(change.Items))
	}
	m.navigator.Resize(len(change.Items), m.viewportHeight)

	if m.bus != nil {
		m.bus.Publish(eventbus.PageChangedEvent{Summary: m.state.Summary()})
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	default:
		cmd := m.inputHandler.Update(msg)
		_, next := m.handleNonKeyboardMsg(msg)
		return m, tea.Batch(cmd, next)
	}
}

// handleKey routes a key through the input handler and applies the resulting actions
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := &input.ModelContext{
		State:     m.state,
		Paginator: m.pages,
	}

	before := m.inputHandler.CurrentMode()
	actions, cmd := m.inputHandler.HandleKey(msg, ctx)
	if after := m.inputHandler.CurrentMode(); after != before && after == inputtypes.ModeFilter {
		m.state.FilterBackup = m.state.FilterQuery
	}

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug().Str("action", action.Type()).Msg("processAction")

	switch a := action.(type) {
	case inputtypes.PageAction:
		return m.navigatePage(a.Direction)

	case inputtypes.GoToPageAction:
		return m.goToPage(a.Page)

	case inputtypes.CursorAction:
		switch a.Direction {
		case inputtypes.CursorUp:
			m.navigator.Move(-1)
		case inputtypes.CursorDown:
			m.navigator.Move(1)
		case inputtypes.CursorTop:
			m.navigator.Top()
		case inputtypes.CursorBottom:
			m.navigator.Bottom()
		}

	case inputtypes.ResizePageAction:
		size := min(max(m.pages.PageSize()+a.Delta, config.MinPageSize), config.MaxPageSize)
		if size != m.pages.PageSize() {
			m.pages.SetPageSize(size)
		}

	case inputtypes.UpdateTextAction:
		if a.Mode == inputtypes.ModeFilter {
			m.applyFilter(a.Text)
		}

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeFilter:
			m.applyFilter(a.Text)
			m.publishFilterChanged()
		case inputtypes.ModeGoTo:
			if strings.TrimSpace(a.Text) != "" {
				return m.setStatus(fmt.Sprintf("Not a page number: %q", a.Text), true)
			}
		}

	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeFilter {
			m.applyFilter(m.state.FilterBackup)
		}

	case inputtypes.ClearFilterAction:
		m.applyFilter("")
		m.publishFilterChanged()

	case inputtypes.SortByAction:
		m.applySort(a.Mode)

	case inputtypes.UpdateSortIndexAction:
		m.state.SortOptionIndex = a.Index

	case inputtypes.ReloadAction:
		m.state.Loading = true
		return m.loadItems()

	case inputtypes.OpenPagerAction:
		content := WorkingSetContent(m.pages.WorkingSet(), m.pages.PageSize())
		return m.showInPager("items", content)

	case inputtypes.ToggleHelpAction:
		return m.showInPager("help", renderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// navigatePage moves one page or to either end; boundary moves are reported
// in the status line and change nothing
func (m *Model) navigatePage(direction string) tea.Cmd {
	current := m.pages.CurrentPage()
	switch direction {
	case inputtypes.PageNext:
		if !m.pages.NextPage() {
			m.publishRejected(current + 1)
			return m.setStatus("Already on the last page", false)
		}
	case inputtypes.PagePrevious:
		if !m.pages.PreviousPage() {
			m.publishRejected(current - 1)
			return m.setStatus("Already on the first page", false)
		}
	case inputtypes.PageFirst:
		return m.goToPage(1)
	case inputtypes.PageLast:
		return m.goToPage(m.pages.TotalPages())
	}
	return nil
}

// goToPage jumps to page n, reporting out-of-range requests
func (m *Model) goToPage(n int) tea.Cmd {
	if m.pages.GoToPage(n) {
		return nil
	}
	m.publishRejected(n)
	total := m.pages.TotalPages()
	if total == 0 {
		return m.setStatus("No pages to show", true)
	}
	return m.setStatus(fmt.Sprintf("Page %d out of range (1-%d)", n, total), true)
}

// applyFilter replaces the filter; the paginator re-derives the pages
func (m *Model) applyFilter(query string) {
	m.state.FilterQuery = query
	m.pages.SetFilter(logic.ParseFilter(query))
}

// applySort replaces the comparator when the mode changes
func (m *Model) applySort(mode logic.SortMode) {
	old := m.state.Sort
	if old == mode {
		return
	}
	m.state.Sort = mode
	m.pages.SetCompare(logic.Comparator(mode))
	if m.bus != nil {
		m.bus.Publish(eventbus.SortChangedEvent{OldMode: old.String(), NewMode: mode.String()})
	}
}

func (m *Model) publishFilterChanged() {
	if m.bus != nil {
		m.bus.Publish(eventbus.FilterChangedEvent{Query: m.state.FilterQuery, Matches: m.pages.Len()})
	}
}

func (m *Model) publishRejected(requested int) {
	if m.bus != nil {
		m.bus.Publish(eventbus.NavigationRejectedEvent{Requested: requested, TotalPages: m.pages.TotalPages()})
	}
}

// setStatus shows a status message and schedules its removal
func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.state.SetStatus(message, isError)
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// loadItems returns a command that reads the item source
func (m *Model) loadItems() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		if loader == nil {
			return itemsLoadedMsg{}
		}
		items, err := loader.Load(context.Background())
		return itemsLoadedMsg{items: items, err: err}
	}
}

// showInPager returns a command that shows content using ov pager
func (m *Model) showInPager(what, content string) tea.Cmd {
	pager := m.pager
	return func() tea.Msg {
		if pager.program == nil {
			return pagerMsg{what: what, err: errNoProgram}
		}
		// Send pause message to stop rendering
		pager.program.Send(pauseRenderingMsg{})

		err := pager.Show(strings.NewReader(content))

		// Send resume message to restart rendering
		pager.program.Send(resumeRenderingMsg{})

		return pagerMsg{what: what, err: err}
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		m.state.Loading = false
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("failed to load items")
			return m, m.setStatus(fmt.Sprintf("Failed to load items: %v", msg.err), true)
		}
		m.state.Items = msg.items
		m.state.Source = m.sourceName()
		m.pages.SetItems(msg.items)
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("content", msg.what).Msg("pager failed")
			return m, m.setStatus(fmt.Sprintf("Pager failed: %v", msg.err), true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		// Only clear the message this timer was scheduled for
		if msg.seq == m.statusSeq {
			m.state.ClearStatus()
		}
		return m, nil

	default:
		return m, nil
	}
}

// sourceName returns the name shown in the title bar
func (m *Model) sourceName() string {
	if m.config.Source == "" {
		return source.DemoSource
	}
	return m.config.Source
}

// updateViewportHeight sizes the page window to the terminal
func (m *Model) updateViewportHeight() {
	m.viewportHeight = max(m.height-chromeLines, 1)
	m.navigator.Resize(len(m.state.Window), m.viewportHeight)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	start, end, above, below := m.navigator.VisibleRange()
	vs := views.ViewState{
		Width:           m.width,
		Height:          m.height,
		Source:          m.state.Source,
		CollectionSize:  len(m.state.Items),
		Loading:         m.state.Loading,
		Window:          m.state.Window,
		Page:            m.state.Page.Page,
		PageSize:        m.state.Page.PageSize,
		TotalPages:      m.state.TotalPages,
		TotalItems:      m.state.TotalItems,
		SelectedIndex:   m.navigator.GetSelectedIndex(),
		VisibleStart:    start,
		VisibleEnd:      end,
		MoreAbove:       above,
		MoreBelow:       below,
		FilterQuery:     m.state.FilterQuery,
		SortMode:        m.state.Sort,
		SortOptionIndex: m.state.SortOptionIndex,
		StatusMessage:   m.state.StatusMessage,
		StatusIsError:   m.state.StatusIsError,
		ShowHelpHint:    m.state.ShowHelpHint,
	}

	if mode := m.inputHandler.CurrentMode(); mode != inputtypes.ModeNormal {
		vs.InputMode = mode.String()
		vs.Prompt = m.inputHandler.Prompt()
		if ti := m.inputHandler.TextInput(); ti != nil {
			vs.TextInput = ti.View()
		}
	}

	return m.renderer.Render(vs)
}
