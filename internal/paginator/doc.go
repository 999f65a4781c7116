// Package paginator derives a page of items from a caller-owned collection.
//
// A Paginator holds the current page number and the last applied inputs: the
// items, the page size, an optional filter and an optional comparator. The
// working set (filtered, then stably sorted) is rebuilt on every input change,
// and every state-affecting operation notifies observers synchronously with a
// single PageChange carrying both the page window and the {page, pageSize}
// state.
//
// Navigation never leaves the valid range: NextPage, PreviousPage and
// GoToPage are no-ops when their precondition fails. Input changes do not
// reset the page; see ClampPolicy for what happens when the working set
// shrinks below the current page.
//
// A Paginator is not safe for concurrent use.
package paginator
