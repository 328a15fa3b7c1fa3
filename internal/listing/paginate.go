package listing

import (
	"strconv"
	"strings"

	"github.com/harshbutfairx/signoz-web/internal/content"
)

// PageSize is the number of items on one listing page.
const PageSize = 20

// Page is one slice of a filtered listing.
type Page struct {
	Items       []content.Item
	CurrentPage int
	TotalPages  int
	PageSize    int
	TotalItems  int
	// Offset is the 0-based index of Items[0] within the filtered listing.
	Offset   int
	HasPrev  bool
	HasNext  bool
	PrevPage int
	NextPage int
}

// Empty reports whether the filtered listing had no items at all.
func (p Page) Empty() bool { return p.TotalItems == 0 }

// TotalPages returns ceil(n/size). Zero items yield zero pages.
func TotalPages(n, size int) int {
	if size <= 0 {
		size = PageSize
	}
	if n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// ClampPage clamps page into [1, total], or to 1 when there are no pages.
func ClampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Paginate slices items for the requested page, clamping out-of-range pages.
func Paginate(items []content.Item, page, size int) Page {
	if size <= 0 {
		size = PageSize
	}
	total := TotalPages(len(items), size)
	page = ClampPage(page, total)

	start := (page - 1) * size
	if start > len(items) {
		start = len(items)
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}

	p := Page{
		Items:       items[start:end:end],
		CurrentPage: page,
		TotalPages:  total,
		PageSize:    size,
		TotalItems:  len(items),
		Offset:      start,
		HasPrev:     page > 1,
		HasNext:     page < total,
	}
	if p.HasPrev {
		p.PrevPage = page - 1
	}
	if p.HasNext {
		p.NextPage = page + 1
	}
	return p
}

// PageURL builds the route of page n under prefix. Page 1 is the bare prefix.
func PageURL(prefix string, n int) string {
	prefix = "/" + strings.Trim(prefix, "/")
	if n <= 1 {
		return prefix
	}
	return prefix + "/page/" + strconv.Itoa(n)
}

// ParsePage parses a route page segment. Empty means page 1.
func ParsePage(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
