// Package pagination computes the page-link window shown under resource tables.
package pagination

import (
	"fmt"

	"warehouse-dashboard/internal/models"
)

// MaxVisiblePages bounds the numbered links around the current page.
const MaxVisiblePages = 5

// Link is one numbered page link.
type Link struct {
	Page   int
	Active bool
	Href   string
}

// Control is the render model of a pagination bar.
type Control struct {
	Current    int
	TotalPages int
	TotalItems int
	Limit      int

	Pages            []Link
	ShowFirst        bool
	LeadingEllipsis  bool
	TrailingEllipsis bool
	ShowLast         bool
	FirstHref        string
	LastHref         string

	HasPrev  bool
	HasNext  bool
	PrevHref string
	NextHref string

	// Rows is the number of rows actually shown, which can exceed Limit after
	// a create patched the page in place. Zero means a full page.
	Rows int

	// Cursor is set when the backend only reported has_next.
	Cursor bool
}

// Window returns the first and last page of the visible window. It holds at
// most MaxVisiblePages pages, never exceeds total and always contains current
// once current is clamped into [1, total]. Returns 0, 0 when there are no pages.
func Window(current, total int) (start, end int) {
	if total <= 0 {
		return 0, 0
	}
	current = clamp(current, 1, total)

	start = max(1, current-MaxVisiblePages/2)
	end = min(total, start+MaxVisiblePages-1)
	if end-start+1 < MaxVisiblePages {
		start = max(1, end-MaxVisiblePages+1)
	}
	return start, end
}

// New builds the control for the pagination block of a list envelope. page is
// the requested page, used when the backend answers with cursor pagination.
func New(p *models.Pagination, page, limit int, href func(page int) string) Control {
	if limit <= 0 {
		limit = models.DefaultLimit
	}
	if p == nil {
		return Control{Current: page, Limit: limit}
	}

	if p.IsCursor() {
		c := Control{Current: max(page, 1), Limit: limit, Cursor: true}
		c.HasPrev = c.Current > 1
		c.HasNext = p.HasNext
		if c.HasPrev {
			c.PrevHref = href(c.Current - 1)
		}
		if c.HasNext {
			c.NextHref = href(c.Current + 1)
		}
		return c
	}

	c := Control{
		Current:    p.CurrentPage,
		TotalPages: p.TotalPages,
		TotalItems: p.TotalItems,
		Limit:      limit,
	}
	if c.Current <= 0 {
		c.Current = max(page, 1)
	}

	start, end := Window(c.Current, c.TotalPages)
	if start == 0 {
		return c
	}
	// a delete can leave the reported page past the last one
	c.Current = clamp(c.Current, 1, c.TotalPages)

	for i := start; i <= end; i++ {
		c.Pages = append(c.Pages, Link{Page: i, Active: i == c.Current, Href: href(i)})
	}
	c.ShowFirst = start > 1
	c.LeadingEllipsis = start > 2
	c.TrailingEllipsis = end < c.TotalPages-1
	c.ShowLast = end < c.TotalPages
	c.FirstHref = href(1)
	c.LastHref = href(c.TotalPages)

	c.HasPrev = c.Current > 1
	c.HasNext = c.Current < c.TotalPages
	if c.HasPrev {
		c.PrevHref = href(c.Current - 1)
	}
	if c.HasNext {
		c.NextHref = href(c.Current + 1)
	}
	return c
}

// From is the 1-based index of the first row on the current page.
func (c Control) From() int {
	if c.TotalItems == 0 {
		return 0
	}
	return (c.Current-1)*c.Limit + 1
}

// To is the index of the last row on the current page.
func (c Control) To() int {
	if c.Rows > 0 && c.TotalItems > 0 {
		return min(c.From()+c.Rows-1, c.TotalItems)
	}
	return min(c.Current*c.Limit, c.TotalItems)
}

// Summary renders "Showing a–b of n".
func (c Control) Summary() string {
	if c.Cursor {
		return fmt.Sprintf("Page %d", c.Current)
	}
	return fmt.Sprintf("Showing %d–%d of %d", c.From(), c.To(), c.TotalItems)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
