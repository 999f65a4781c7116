package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pagegrip/internal/ui/input/types"
)

// gPrefixTimeout is how long a first 'g' waits for the second one
const gPrefixTimeout = 500 * time.Millisecond

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	if key != "g" {
		m.lastKeyWasG = false
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return cursor(types.CursorUp), true

	case tea.KeyDown:
		return cursor(types.CursorDown), true

	case tea.KeyLeft, tea.KeyPgUp:
		return page(types.PagePrevious), true

	case tea.KeyRight, tea.KeyPgDown:
		return page(types.PageNext), true

	case tea.KeyHome:
		return page(types.PageFirst), true

	case tea.KeyEnd:
		return page(types.PageLast), true
	}

	switch key {
	case "n", "l":
		return page(types.PageNext), true

	case "p", "h":
		return page(types.PagePrevious), true

	case "G":
		return page(types.PageLast), true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < gPrefixTimeout {
			// gg - go to the first page
			m.lastKeyWasG = false
			return page(types.PageFirst), true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "j":
		return cursor(types.CursorDown), true

	case "k":
		return cursor(types.CursorUp), true

	case "H":
		return cursor(types.CursorTop), true

	case "L":
		return cursor(types.CursorBottom), true

	case ":":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoTo}}, true

	case "ctrl+f", "F", "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter, Data: ctx.FilterQuery()}}, true

	case "s":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSort}}, true

	case "+", "=":
		return []types.Action{types.ResizePageAction{Delta: 1}}, true

	case "-", "_":
		return []types.Action{types.ResizePageAction{Delta: -1}}, true

	case "r":
		return []types.Action{types.ReloadAction{}}, true

	case "v":
		return []types.Action{types.OpenPagerAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "esc":
		// Clear the filter if any, otherwise do nothing
		if ctx.FilterQuery() != "" {
			return []types.Action{types.ClearFilterAction{}}, true
		}
		return nil, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}

func page(direction string) []types.Action {
	return []types.Action{types.PageAction{Direction: direction}}
}

func cursor(direction string) []types.Action {
	return []types.Action{types.CursorAction{Direction: direction}}
}
