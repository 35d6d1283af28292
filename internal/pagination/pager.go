// Package pagination models the page controls under the admin tables.
package pagination

const (
	DefaultLimit = 10
	// MaxLimit matches the largest page the api serves.
	MaxLimit = 100
)

// windowBefore/windowAfter bound the numbered page links around the current page.
const (
	windowBefore = 2
	windowAfter  = 2
)

type Pager struct {
	Current    int
	TotalPages int
	TotalCount int
	Limit      int
}

func New(current, totalPages, totalCount, limit int) Pager {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if totalPages < 0 {
		totalPages = 0
	}
	if current < 1 {
		current = 1
	}
	return Pager{Current: current, TotalPages: totalPages, TotalCount: totalCount, Limit: limit}
}

// Go moves to page. Pages outside [1, TotalPages] leave the pager unchanged.
func (p Pager) Go(page int) Pager {
	if page < 1 || page > p.TotalPages {
		return p
	}
	p.Current = page
	return p
}

func (p Pager) HasPrev() bool { return p.Current > 1 }
func (p Pager) HasNext() bool { return p.Current < p.TotalPages }
func (p Pager) Prev() int     { return p.Current - 1 }
func (p Pager) Next() int     { return p.Current + 1 }

// Window lists the page numbers rendered as direct links.
func (p Pager) Window() []int {
	lo := max(1, p.Current-windowBefore)
	hi := min(p.TotalPages, p.Current+windowAfter)
	out := make([]int, 0, windowBefore+windowAfter+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

// From is the 1-based index of the first row on the page.
func (p Pager) From() int {
	if p.TotalCount == 0 {
		return 0
	}
	return (p.Current-1)*p.Limit + 1
}

// To is the 1-based index of the last row on the page.
func (p Pager) To() int { return min(p.Current*p.Limit, p.TotalCount) }
