package modes

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pagegrip/internal/ui/input/types"
)

// GoToMode reads a page number. Text that is not a number is reported on submit.
type GoToMode struct {
	TextInputMode
}

func NewGoToMode(ti *textinput.Model) *GoToMode {
	return &GoToMode{
		TextInputMode: NewTextInputMode(types.ModeGoTo, "goto", "Go to page: ", ti),
	}
}

// HandleKey turns enter into a GoToPageAction; other keys behave as in any text mode
func (m *GoToMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() != "enter" {
		return m.TextInputMode.HandleKey(msg, ctx)
	}

	text := ""
	if m.textInput != nil {
		text = strings.TrimSpace(m.textInput.Value())
	}
	back := types.ChangeModeAction{Mode: types.ModeNormal}
	n, err := strconv.Atoi(text)
	if err != nil {
		// Nothing usable typed; submit the raw text so the model can report it
		return []types.Action{types.SubmitTextAction{Text: text, Mode: types.ModeGoTo}, back}, true
	}
	return []types.Action{types.GoToPageAction{Page: n}, back}, true
}
