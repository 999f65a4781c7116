package paginator

// Meta summarizes the paginator for display and reports.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// Meta returns the current summary. HasNext and HasPrevious mirror the
// preconditions of NextPage and PreviousPage.
func (p *Paginator[T]) Meta() Meta {
	total := p.TotalPages()
	return Meta{
		CurrentPage: p.currentPage,
		PageSize:    p.pageSize,
		TotalPages:  total,
		TotalItems:  len(p.working),
		HasPrevious: p.currentPage > 1,
		HasNext:     p.currentPage < total,
	}
}

// InRange reports whether the current page has data behind it. It is false
// only after an input change shrank the working set under ClampNever, or
// when the working set is empty.
func (m Meta) InRange() bool {
	return m.CurrentPage >= 1 && m.CurrentPage <= m.TotalPages
}
