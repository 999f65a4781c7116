package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"pagegrip/internal/ui/input/types"
)

// FilterMode edits the filter query; every keystroke re-filters the pages
type FilterMode struct {
	TextInputMode
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode(types.ModeFilter, "filter", "Filter: ", ti),
	}
}
