package paginator

import (
	"slices"

	"github.com/samber/lo"
)

// DefaultPageSize is used when no page size, or a non-positive one, is given.
const DefaultPageSize = 10

// FilterFunc reports whether an item belongs to the working set.
type FilterFunc[T any] func(item T) bool

// CompareFunc orders two items: negative when a sorts first, zero when equal,
// positive when b sorts first.
type CompareFunc[T any] func(a, b T) int

// State is the pagination metadata emitted with every page window.
type State struct {
	Page     int `json:"page"      yaml:"page"`
	PageSize int `json:"page_size" yaml:"page_size"`
}

// PageChange is the single notification sent to observers. Items is a fresh
// slice the observer may keep.
type PageChange[T any] struct {
	Items []T
	State State
}

// Observer receives page changes.
type Observer[T any] func(change PageChange[T])

// ClampPolicy controls the current page when an input change shrinks the
// working set below it.
type ClampPolicy int

const (
	// ClampNever keeps the page number as is. The next emission carries an
	// empty (or short) window and a page with no data behind it until the
	// caller navigates.
	ClampNever ClampPolicy = iota
	// ClampToLastPage lowers the page to max(1, TotalPages()).
	ClampToLastPage
)

func (c ClampPolicy) String() string {
	switch c {
	case ClampNever:
		return "never"
	case ClampToLastPage:
		return "last-page"
	default:
		return "unknown"
	}
}

type subscription[T any] struct {
	id       int
	observer Observer[T]
}

// Paginator derives the current page from its inputs.
type Paginator[T any] struct {
	items    []T
	pageSize int
	filter   FilterFunc[T]
	compare  CompareFunc[T]
	clamp    ClampPolicy

	working     []T
	currentPage int

	observers []subscription[T]
	nextID    int
}

// Option configures a Paginator.
type Option[T any] func(*Paginator[T])

// WithClampPolicy sets how input changes treat an out-of-range page.
func WithClampPolicy[T any](policy ClampPolicy) Option[T] {
	return func(p *Paginator[T]) {
		p.clamp = policy
	}
}

// WithObserver subscribes an observer before any input is applied.
func WithObserver[T any](observer Observer[T]) Option[T] {
	return func(p *Paginator[T]) {
		p.Subscribe(observer)
	}
}

// New creates a Paginator on page 1 with an empty working set.
func New[T any](opts ...Option[T]) *Paginator[T] {
	p := &Paginator[T]{
		pageSize:    DefaultPageSize,
		currentPage: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Subscribe registers an observer and returns a function that removes it.
// Observers run in subscription order.
func (p *Paginator[T]) Subscribe(observer Observer[T]) func() {
	if observer == nil {
		return func() {}
	}
	p.nextID++
	id := p.nextID
	p.observers = append(p.observers, subscription[T]{id: id, observer: observer})

	return func() {
		p.observers = slices.DeleteFunc(p.observers, func(s subscription[T]) bool {
			return s.id == id
		})
	}
}

// SetInputs applies new inputs, rebuilds the working set and emits.
// The caller's slice is read but never reordered. The current page is kept;
// it is only lowered when the policy is ClampToLastPage.
// Panics raised by filter or compare reach the caller unchanged.
func (p *Paginator[T]) SetInputs(items []T, pageSize int, filter FilterFunc[T], compare CompareFunc[T]) {
	p.items = items
	p.pageSize = normalizePageSize(pageSize)
	p.filter = filter
	p.compare = compare
	p.derive()
}

// SetItems replaces the collection, keeping the other inputs.
func (p *Paginator[T]) SetItems(items []T) {
	p.SetInputs(items, p.pageSize, p.filter, p.compare)
}

// SetPageSize replaces the page size, keeping the other inputs.
func (p *Paginator[T]) SetPageSize(pageSize int) {
	p.SetInputs(p.items, pageSize, p.filter, p.compare)
}

// SetFilter replaces the filter, keeping the other inputs. nil disables filtering.
func (p *Paginator[T]) SetFilter(filter FilterFunc[T]) {
	p.SetInputs(p.items, p.pageSize, filter, p.compare)
}

// SetCompare replaces the comparator, keeping the other inputs. nil restores
// the collection order.
func (p *Paginator[T]) SetCompare(compare CompareFunc[T]) {
	p.SetInputs(p.items, p.pageSize, p.filter, compare)
}

// Refresh rebuilds the working set from the last inputs and emits. Use it
// after mutating the collection in place.
func (p *Paginator[T]) Refresh() {
	p.derive()
}

// NextPage moves forward one page. It reports false, without emitting, when
// already on the last page.
func (p *Paginator[T]) NextPage() bool {
	if p.currentPage >= p.TotalPages() {
		return false
	}
	p.currentPage++
	p.emit()
	return true
}

// PreviousPage moves back one page. It reports false, without emitting, on page 1.
func (p *Paginator[T]) PreviousPage() bool {
	if p.currentPage <= 1 {
		return false
	}
	p.currentPage--
	p.emit()
	return true
}

// GoToPage jumps to page n when 1 <= n <= TotalPages(). Anything else,
// including any n on an empty working set, is ignored and reports false.
func (p *Paginator[T]) GoToPage(n int) bool {
	if n < 1 || n > p.TotalPages() {
		return false
	}
	p.currentPage = n
	p.emit()
	return true
}

// TotalPages is ceil(Len() / PageSize()), zero for an empty working set.
func (p *Paginator[T]) TotalPages() int {
	return (len(p.working) + p.pageSize - 1) / p.pageSize
}

// CurrentPage returns the 1-based page number.
func (p *Paginator[T]) CurrentPage() int {
	return p.currentPage
}

// PageSize returns the effective page size.
func (p *Paginator[T]) PageSize() int {
	return p.pageSize
}

// State returns the pagination state as it would be emitted now.
func (p *Paginator[T]) State() State {
	return State{Page: p.currentPage, PageSize: p.pageSize}
}

// Len returns the size of the working set.
func (p *Paginator[T]) Len() int {
	return len(p.working)
}

// WorkingSet returns a copy of the filtered and sorted items.
func (p *Paginator[T]) WorkingSet() []T {
	return slices.Clone(p.working)
}

// Window returns a copy of the current page's items.
func (p *Paginator[T]) Window() []T {
	start, end := p.bounds()
	out := make([]T, end-start)
	copy(out, p.working[start:end])
	return out
}

func (p *Paginator[T]) derive() {
	working := p.items
	if p.filter != nil {
		filter := p.filter
		working = lo.Filter(working, func(item T, _ int) bool {
			return filter(item)
		})
	} else {
		working = slices.Clone(working)
	}
	if p.compare != nil {
		slices.SortStableFunc(working, p.compare)
	}
	p.working = working

	if p.clamp == ClampToLastPage {
		if last := max(1, p.TotalPages()); p.currentPage > last {
			p.currentPage = last
		}
	}
	p.emit()
}

// bounds returns the [start, end) range of the current page within the
// working set. Both are len(working) when the page lies past the end.
func (p *Paginator[T]) bounds() (int, int) {
	start := (p.currentPage - 1) * p.pageSize
	if start > len(p.working) {
		start = len(p.working)
	}
	end := min(start+p.pageSize, len(p.working))
	return start, end
}

func (p *Paginator[T]) emit() {
	if len(p.observers) == 0 {
		return
	}
	state := p.State()
	// Observers may unsubscribe while being notified.
	observers := slices.Clone(p.observers)
	for _, s := range observers {
		s.observer(PageChange[T]{Items: p.Window(), State: state})
	}
}

func normalizePageSize(pageSize int) int {
	if pageSize < 1 {
		return DefaultPageSize
	}
	return pageSize
}
