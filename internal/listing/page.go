package listing

// DefaultPageSize matches the listing endpoints' default window.
const DefaultPageSize = 50

// PageState is a pagination cursor over a filtered, sorted list. Page
// indexes are 1-based and always clamped into [1, TotalPages]; invalid
// parameters are corrected, never rejected.
type PageState struct {
	pageIndex  int
	pageSize   int
	totalItems int
}

// NewPageState starts on page 1 with the given page size (values below 1
// fall back to DefaultPageSize).
func NewPageState(pageSize int) *PageState {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &PageState{pageIndex: 1, pageSize: pageSize}
}

func (p *PageState) PageIndex() int  { return p.pageIndex }
func (p *PageState) PageSize() int   { return p.pageSize }
func (p *PageState) TotalItems() int { return p.totalItems }

// TotalPages is never below 1, even for an empty list.
func (p *PageState) TotalPages() int {
	if p.totalItems == 0 {
		return 1
	}
	pages := p.totalItems / p.pageSize
	if p.totalItems%p.pageSize != 0 {
		pages++
	}
	return pages
}

// SetTotalItems records the list length and clamps the current page.
func (p *PageState) SetTotalItems(n int) {
	if n < 0 {
		n = 0
	}
	p.totalItems = n
	p.clamp()
}

// SetPageSize ignores sizes below 1, recomputes the page count and clamps
// the current page.
func (p *PageState) SetPageSize(n int) {
	if n < 1 {
		return
	}
	p.pageSize = n
	p.clamp()
}

// GoToPage clamps out-of-range targets instead of failing.
func (p *PageState) GoToPage(page int) {
	p.pageIndex = page
	p.clamp()
}

func (p *PageState) clamp() {
	if p.pageIndex < 1 {
		p.pageIndex = 1
	}
	if max := p.TotalPages(); p.pageIndex > max {
		p.pageIndex = max
	}
}

// Slice records len(entries) as the total and returns the half-open window
// [(pageIndex-1)*pageSize, min(pageIndex*pageSize, total)).
func (p *PageState) Slice(entries []FileEntry) []FileEntry {
	p.SetTotalItems(len(entries))

	start := (p.pageIndex - 1) * p.pageSize
	if start >= len(entries) {
		return []FileEntry{}
	}
	end := start + p.pageSize
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end]
}
