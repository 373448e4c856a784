package crud

// TotalPages returns the number of display pages needed for totalItems at
// the given page size. Zero items means zero pages.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// PageNav is a pure view of the pagination state. It holds no mutable
// state of its own; navigation methods only compute clamped page numbers
// for the caller to apply.
type PageNav struct {
	Current    int
	TotalPages int
	TotalItems int
	PageSize   int
}

// NewPageNav builds a navigation view with the current page clamped to the
// valid range.
func NewPageNav(current, totalPages, totalItems, pageSize int) PageNav {
	nav := PageNav{
		TotalPages: totalPages,
		TotalItems: totalItems,
		PageSize:   pageSize,
	}
	nav.Current = nav.Clamp(current)
	return nav
}

// Visible reports whether a navigation control should render at all.
// A single page (or none) needs no control.
func (n PageNav) Visible() bool {
	return n.TotalPages > 1
}

func (n PageNav) HasPrev() bool {
	return n.Current > 1
}

func (n PageNav) HasNext() bool {
	return n.Current < n.TotalPages
}

// Prev returns the page reached by navigating backwards, never below 1.
func (n PageNav) Prev() int {
	return n.Clamp(n.Current - 1)
}

// Next returns the page reached by navigating forwards, never beyond the
// last page.
func (n PageNav) Next() int {
	return n.Clamp(n.Current + 1)
}

// Clamp forces page into [1, TotalPages]. An empty collection clamps to 1
// so callers always hold a sane page number.
func (n PageNav) Clamp(page int) int {
	if page < 1 {
		return 1
	}
	if n.TotalPages >= 1 && page > n.TotalPages {
		return n.TotalPages
	}
	return page
}

// Start is the 1-based index of the first item on the current page, for
// the full display mode's range summary.
func (n PageNav) Start() int {
	if n.TotalItems == 0 {
		return 0
	}
	return (n.Current-1)*n.PageSize + 1
}

// End is the 1-based index of the last item on the current page.
func (n PageNav) End() int {
	end := n.Current * n.PageSize
	if end > n.TotalItems {
		end = n.TotalItems
	}
	return end
}
