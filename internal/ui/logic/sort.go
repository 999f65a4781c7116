package logic

import (
	"cmp"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"pagegrip/internal/config"
	"pagegrip/internal/domain"
	"pagegrip/internal/paginator"
)

// SortField represents the item attribute a sort mode orders by
type SortField string

const (
	SortNone    SortField = "none"
	SortName    SortField = "name"
	SortNatural SortField = "natural"
	SortLength  SortField = "length"
)

// SortMode is a sort field plus direction
type SortMode struct {
	Field SortField
	Desc  bool
}

// DefaultSortMode keeps the source order
var DefaultSortMode = SortMode{Field: SortNone}

// SortModes lists the modes offered by the sort selector, in display order
var SortModes = []SortMode{
	{Field: SortNone},
	{Field: SortName},
	{Field: SortName, Desc: true},
	{Field: SortNatural},
	{Field: SortNatural, Desc: true},
	{Field: SortLength},
	{Field: SortLength, Desc: true},
}

// ParseSortMode parses "field" or "field:order", as accepted in the config file
func ParseSortMode(expr string) (SortMode, error) {
	field, order, err := config.ParseSort(expr)
	if err != nil {
		return DefaultSortMode, err
	}
	mode := SortMode{Field: SortField(field), Desc: order == config.SortOrderDesc}
	if mode.Field == SortNone {
		mode.Desc = false
	}
	return mode, nil
}

// String returns the expression form of the mode
func (m SortMode) String() string {
	if m.Desc {
		return string(m.Field) + ":" + config.SortOrderDesc
	}
	return string(m.Field)
}

// Label returns a short description for the title bar and sort selector
func (m SortMode) Label() string {
	var label string
	switch m.Field {
	case SortName:
		label = "Name"
	case SortNatural:
		label = "Natural"
	case SortLength:
		label = "Length"
	default:
		return "Original order"
	}
	if m.Desc {
		return label + " ↓"
	}
	return label + " ↑"
}

// IndexOf returns the position of mode in SortModes, or 0 when absent
func IndexOf(mode SortMode) int {
	for i, m := range SortModes {
		if m == mode {
			return i
		}
	}
	return 0
}

// Comparator returns the paginator comparator for mode.
// SortNone returns nil so the paginator keeps the filtered order.
func Comparator(mode SortMode) paginator.CompareFunc[domain.Item] {
	var compare paginator.CompareFunc[domain.Item]
	switch mode.Field {
	case SortName:
		compare = collatorCompare(collate.New(language.Und))
	case SortNatural:
		compare = collatorCompare(collate.New(language.Und, collate.Numeric))
	case SortLength:
		compare = func(a, b domain.Item) int {
			return cmp.Compare(utf8.RuneCountInString(a.Label), utf8.RuneCountInString(b.Label))
		}
	default:
		return nil
	}

	if mode.Desc {
		asc := compare
		compare = func(a, b domain.Item) int { return asc(b, a) }
	}
	return compare
}

// collatorCompare orders labels by locale-aware collation.
// A collator is not safe for concurrent use; the paginator sorts on one goroutine.
func collatorCompare(c *collate.Collator) paginator.CompareFunc[domain.Item] {
	return func(a, b domain.Item) int {
		return c.CompareString(a.Label, b.Label)
	}
}
