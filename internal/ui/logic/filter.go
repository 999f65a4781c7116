package logic

import (
	"strings"

	"pagegrip/internal/domain"
	"pagegrip/internal/paginator"
)

// Filter qualifiers
const (
	prefixQualifier   = "prefix:"
	suffixQualifier   = "suffix:"
	positionQualifier = "pos:"
)

// ParseFilter turns a filter query into a paginator filter.
// An empty query returns nil so the paginator keeps every item.
//
// Supported forms:
//
//	text         label contains text (case-insensitive)
//	prefix:text  label starts with text
//	suffix:text  label ends with text
//	pos:even     even source position
//	pos:odd      odd source position
func ParseFilter(query string) paginator.FilterFunc[domain.Item] {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	switch {
	case strings.HasPrefix(query, prefixQualifier):
		prefix := strings.TrimPrefix(query, prefixQualifier)
		return func(item domain.Item) bool {
			return strings.HasPrefix(strings.ToLower(item.Label), prefix)
		}
	case strings.HasPrefix(query, suffixQualifier):
		suffix := strings.TrimPrefix(query, suffixQualifier)
		return func(item domain.Item) bool {
			return strings.HasSuffix(strings.ToLower(item.Label), suffix)
		}
	case strings.HasPrefix(query, positionQualifier):
		if f := positionFilter(strings.TrimPrefix(query, positionQualifier)); f != nil {
			return f
		}
	}

	return func(item domain.Item) bool {
		return strings.Contains(strings.ToLower(item.Label), query)
	}
}

// positionFilter returns nil for an unknown parity so the query falls back to
// a plain substring match
func positionFilter(parity string) paginator.FilterFunc[domain.Item] {
	switch parity {
	case "even":
		return func(item domain.Item) bool { return item.Position%2 == 0 }
	case "odd":
		return func(item domain.Item) bool { return item.Position%2 != 0 }
	default:
		return nil
	}
}

