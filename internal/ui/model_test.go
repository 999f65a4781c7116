package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagegrip/internal/config"
	"pagegrip/internal/domain"
	"pagegrip/internal/eventbus"
	"pagegrip/internal/source"
	inputtypes "pagegrip/internal/ui/input/types"
	"pagegrip/internal/ui/logic"
)

type fakeLoader struct {
	items []domain.Item
	err   error
}

func (f *fakeLoader) Load(ctx context.Context) ([]domain.Item, error) {
	return f.items, f.err
}

type harness struct {
	t      *testing.T
	model  *Model
	events []eventbus.DomainEvent
}

func newHarness(t *testing.T, configure func(cfg *config.Config)) *harness {
	t.Helper()
	cfg := config.DefaultConfig()
	if configure != nil {
		configure(cfg)
	}

	h := &harness{t: t}
	bus := eventbus.New(zerolog.Nop())
	for _, et := range []eventbus.EventType{
		eventbus.EventFilterChanged,
		eventbus.EventSortChanged,
		eventbus.EventNavRejected,
	} {
		bus.Subscribe(et, func(e eventbus.DomainEvent) { h.events = append(h.events, e) })
	}

	h.model = NewModel(bus, cfg, &fakeLoader{items: source.Demo(50)}, zerolog.Nop())
	h.model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	h.model.Update(h.run(h.model.Init()))
	return h
}

// run executes cmd and returns its message, expanding batches to the first
// non-nil message
func (h *harness) run(cmd tea.Cmd) tea.Msg {
	h.t.Helper()
	require.NotNil(h.t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				return h.run(c)
			}
		}
		return nil
	}
	return msg
}

func (h *harness) keys(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = h.model.Update(keyMsg(k))
	}
	return cmd
}

func (h *harness) typeText(text string) {
	for _, r := range text {
		h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func (h *harness) windowLabels() []string {
	return lo.Map(h.model.State().Window, func(item domain.Item, _ int) string { return item.Label })
}

func (h *harness) page() int {
	return h.model.State().Page.Page
}

func TestModelLoadsItemsOnInit(t *testing.T) {
	h := newHarness(t, nil)

	st := h.model.State()
	assert.False(t, st.Loading)
	assert.Len(t, st.Items, 50)
	assert.Equal(t, source.DemoSource, st.Source)
	assert.Equal(t, 5, st.TotalPages)
	assert.Equal(t, []string{"Item 1", "Item 2", "Item 3", "Item 4", "Item 5", "Item 6", "Item 7", "Item 8", "Item 9", "Item 10"}, h.windowLabels())
	assert.Contains(t, h.model.View(), "Page 1/5 · 10 per page · 50 items")
}

func TestModelPageNavigation(t *testing.T) {
	h := newHarness(t, nil)

	h.keys("n")
	assert.Equal(t, 2, h.page())
	assert.Equal(t, "Item 11", h.windowLabels()[0])

	h.keys("right", "l")
	assert.Equal(t, 4, h.page())

	h.keys("p", "h")
	assert.Equal(t, 2, h.page())

	h.keys("G")
	assert.Equal(t, 5, h.page())
	assert.Equal(t, "Item 41", h.windowLabels()[0])

	h.keys("g", "g")
	assert.Equal(t, 1, h.page())

	h.keys("end")
	assert.Equal(t, 5, h.page())
	h.keys("home")
	assert.Equal(t, 1, h.page())
}

func TestModelBoundaryNavigationIsRejected(t *testing.T) {
	h := newHarness(t, nil)

	h.keys("p")
	assert.Equal(t, 1, h.page())
	assert.Equal(t, "Already on the first page", h.model.State().StatusMessage)

	h.keys("G", "n")
	assert.Equal(t, 5, h.page())
	assert.Equal(t, "Already on the last page", h.model.State().StatusMessage)

	assert.Equal(t, []eventbus.DomainEvent{
		eventbus.NavigationRejectedEvent{Requested: 0, TotalPages: 5},
		eventbus.NavigationRejectedEvent{Requested: 6, TotalPages: 5},
	}, h.events)
}

func TestModelGoToPage(t *testing.T) {
	h := newHarness(t, nil)

	h.keys(":")
	assert.Equal(t, inputtypes.ModeGoTo, h.model.inputHandler.CurrentMode())
	assert.Contains(t, h.model.View(), "Go to page:")

	h.typeText("3")
	h.keys("enter")
	assert.Equal(t, inputtypes.ModeNormal, h.model.inputHandler.CurrentMode())
	assert.Equal(t, 3, h.page())

	h.keys(":")
	h.typeText("9")
	h.keys("enter")
	assert.Equal(t, 3, h.page())
	assert.Equal(t, "Page 9 out of range (1-5)", h.model.State().StatusMessage)
	assert.True(t, h.model.State().StatusIsError)
	assert.Contains(t, h.events, eventbus.DomainEvent(eventbus.NavigationRejectedEvent{Requested: 9, TotalPages: 5}))

	h.keys(":", "esc")
	assert.Equal(t, inputtypes.ModeNormal, h.model.inputHandler.CurrentMode())
	assert.Equal(t, 3, h.page())
}

func TestModelGoToPageReportsTextThatIsNotANumber(t *testing.T) {
	h := newHarness(t, nil)
	h.keys("n")

	h.keys(":")
	h.typeText("2a")
	h.keys("enter")

	assert.Equal(t, 2, h.page())
	assert.Equal(t, `Not a page number: "2a"`, h.model.State().StatusMessage)
	assert.True(t, h.model.State().StatusIsError)
}

func TestModelLiveFilter(t *testing.T) {
	h := newHarness(t, nil)

	h.keys("F")
	assert.Equal(t, inputtypes.ModeFilter, h.model.inputHandler.CurrentMode())

	h.typeText("1")
	assert.Equal(t, "1", h.model.State().FilterQuery)
	assert.Equal(t, 14, h.model.State().TotalItems)
	assert.Equal(t, 2, h.model.State().TotalPages)

	h.keys("enter")
	assert.Equal(t, inputtypes.ModeNormal, h.model.inputHandler.CurrentMode())
	assert.Equal(t, []eventbus.DomainEvent{eventbus.FilterChangedEvent{Query: "1", Matches: 14}}, h.events)

	h.keys("n")
	assert.Equal(t, []string{"Item 19", "Item 21", "Item 31", "Item 41"}, h.windowLabels())
	assert.Contains(t, h.model.View(), "[Filter: 1]")

	// esc in normal mode clears the filter
	h.keys("esc")
	assert.Empty(t, h.model.State().FilterQuery)
	assert.Equal(t, 50, h.model.State().TotalItems)
}

func TestModelFilterCancelRestoresPreviousQuery(t *testing.T) {
	h := newHarness(t, nil)

	h.keys("F")
	h.typeText("item 4")
	h.keys("enter")
	require.Equal(t, "item 4", h.model.State().FilterQuery)
	require.Equal(t, 11, h.model.State().TotalItems)

	// Re-entering starts from the applied query
	h.keys("F")
	assert.Equal(t, "item 4", h.model.inputHandler.TextInput().Value())

	h.typeText("2")
	assert.Equal(t, 1, h.model.State().TotalItems)

	h.keys("esc")
	assert.Equal(t, "item 4", h.model.State().FilterQuery)
	assert.Equal(t, 11, h.model.State().TotalItems)
}

func TestModelFilterClampsPageByDefault(t *testing.T) {
	h := newHarness(t, nil)

	h.keys("G")
	require.Equal(t, 5, h.page())

	h.keys("F")
	h.typeText("1")
	assert.Equal(t, 2, h.page())
	assert.Equal(t, []string{"Item 19", "Item 21", "Item 31", "Item 41"}, h.windowLabels())
}

func TestModelFilterKeepsPageWithoutClamp(t *testing.T) {
	h := newHarness(t, func(cfg *config.Config) {
		cfg.Pagination.ClampOnShrink = false
	})

	h.keys("G")
	h.keys("F")
	h.typeText("1")
	h.keys("enter")

	assert.Equal(t, 5, h.page())
	assert.Empty(t, h.windowLabels())
	assert.Contains(t, h.model.View(), "Page 5 is past the end")

	h.keys("G")
	assert.Equal(t, 2, h.page())
}

func TestModelSortSelection(t *testing.T) {
	h := newHarness(t, nil)
	h.model.Update(itemsLoadedMsg{items: source.Demo(12)})

	h.keys("s")
	assert.Equal(t, inputtypes.ModeSort, h.model.inputHandler.CurrentMode())
	assert.Equal(t, 0, h.model.State().SortOptionIndex)

	// Name order puts "Item 10" before "Item 2"
	h.keys("down")
	assert.Equal(t, logic.SortMode{Field: logic.SortName}, h.model.State().Sort)
	assert.Equal(t, "Item 10", h.windowLabels()[1])

	h.keys("down", "down")
	assert.Equal(t, logic.SortMode{Field: logic.SortNatural}, h.model.State().Sort)
	assert.Equal(t, "Item 3", h.windowLabels()[2])

	h.keys("enter")
	assert.Equal(t, inputtypes.ModeNormal, h.model.inputHandler.CurrentMode())
	assert.Contains(t, h.model.View(), "[Sort: Natural ↑]")

	// esc restores the sort active when the selector opened
	h.keys("s", "down", "esc")
	assert.Equal(t, logic.SortMode{Field: logic.SortNatural}, h.model.State().Sort)

	assert.Equal(t, eventbus.SortChangedEvent{OldMode: "none", NewMode: "name"}, h.events[0])
}

func TestModelPageSizeKeys(t *testing.T) {
	h := newHarness(t, nil)

	h.keys("+")
	assert.Equal(t, 11, h.model.State().Page.PageSize)
	assert.Len(t, h.windowLabels(), 11)

	h.keys("-", "-")
	assert.Equal(t, 9, h.model.State().Page.PageSize)
	assert.Equal(t, 6, h.model.State().TotalPages)
}

func TestModelPageSizeStopsAtMinimum(t *testing.T) {
	h := newHarness(t, func(cfg *config.Config) {
		cfg.Pagination.PageSize = 1
	})

	h.keys("-")
	assert.Equal(t, 1, h.model.State().Page.PageSize)
}

func TestModelCursorResetsOnPageChange(t *testing.T) {
	h := newHarness(t, nil)

	h.keys("j", "j", "down")
	assert.Equal(t, 3, h.model.navigator.GetSelectedIndex())

	h.keys("k")
	assert.Equal(t, 2, h.model.navigator.GetSelectedIndex())

	h.keys("L")
	assert.Equal(t, 9, h.model.navigator.GetSelectedIndex())

	h.keys("n")
	assert.Equal(t, 0, h.model.navigator.GetSelectedIndex())
}

func TestModelReloadAppliesNewItems(t *testing.T) {
	h := newHarness(t, nil)
	h.keys("G")

	h.model.loader = &fakeLoader{items: source.Demo(15)}
	cmd := h.keys("r")
	assert.True(t, h.model.State().Loading)

	h.model.Update(h.run(cmd))
	assert.False(t, h.model.State().Loading)
	assert.Len(t, h.model.State().Items, 15)
	assert.Equal(t, 2, h.page())
	assert.Equal(t, []string{"Item 11", "Item 12", "Item 13", "Item 14", "Item 15"}, h.windowLabels())
}

func TestModelPagerWithoutProgramReportsError(t *testing.T) {
	h := newHarness(t, nil)

	msg := h.run(h.keys("v"))
	require.IsType(t, pagerMsg{}, msg)
	assert.ErrorIs(t, msg.(pagerMsg).err, errNoProgram)

	h.model.Update(msg)
	assert.Equal(t, "Pager failed: program not set", h.model.State().StatusMessage)
}

func TestModelQuit(t *testing.T) {
	h := newHarness(t, nil)
	assert.IsType(t, tea.QuitMsg{}, h.run(h.keys("q")))
}

func TestModelStatusClearsOnlyForLatestMessage(t *testing.T) {
	h := newHarness(t, nil)

	h.keys("p") // status #1
	h.keys("p") // status #2
	h.model.Update(clearStatusMsg{seq: 1})
	assert.NotEmpty(t, h.model.State().StatusMessage)

	h.model.Update(clearStatusMsg{seq: 2})
	assert.Empty(t, h.model.State().StatusMessage)
}

func TestWorkingSetContent(t *testing.T) {
	content := WorkingSetContent(source.Demo(3), 2)
	assert.Equal(t, "── page 1 ──\n1  Item 1\n2  Item 2\n── page 2 ──\n3  Item 3\n", content)
}
