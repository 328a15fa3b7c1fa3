package listing

import "github.com/harshbutfairx/signoz-web/internal/content"

// Query is the input of one listing render. Topic and Page come from the route;
// Search is transient per-request state.
type Query struct {
	// Scoped is set on topic routes. An unscoped listing ignores Topic.
	Scoped bool
	Topic  string
	Search string
	Page   int
	// PageSize defaults to PageSize.
	PageSize int
}

// Run composes topic filter, search filter and pagination in that order.
func Run(items []content.Item, q Query) Page {
	filtered := items
	if q.Scoped {
		filtered = FilterByTopic(filtered, q.Topic)
	}
	filtered = Search(filtered, q.Search)
	size := q.PageSize
	if size <= 0 {
		size = PageSize
	}
	return Paginate(filtered, q.Page, size)
}
