package content

import (
	"errors"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/harshbutfairx/signoz-web/internal/markup"
)

// ErrNotFound is returned when a content item cannot be located.
var ErrNotFound = errors.New("content: not found")

// Item is a single published post or guide. Items are immutable once loaded;
// the Source hands out copies.
type Item struct {
	Section            string
	Slug               string
	Title              string
	Description        string
	Tags               []string
	Author             string
	Image              string
	ReadingTimeMinutes int
	Date               time.Time
	UpdatedAt          time.Time
	// Position is the 0-based publish-order position within its section.
	Position int
	Body     string
	HTML     template.HTML
	Text     string
	Headings []markup.Heading
}

// Permalink returns the detail page path of the item.
func (it Item) Permalink() string {
	return "/" + it.Section + "/" + it.Slug + "/"
}

// HasTag reports whether the item carries tag, compared case-insensitively.
func (it Item) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, t := range it.Tags {
		if strings.ToLower(strings.TrimSpace(t)) == tag {
			return true
		}
	}
	return false
}

// SortItems orders items newest first. Undated items go last; ties break on slug.
func SortItems(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a := items[i]
		b := items[j]

		switch {
		case !a.Date.IsZero() && !b.Date.IsZero():
			if !a.Date.Equal(b.Date) {
				return a.Date.After(b.Date)
			}
		case !a.Date.IsZero():
			return true
		case !b.Date.IsZero():
			return false
		}

		switch {
		case !a.UpdatedAt.IsZero() && !b.UpdatedAt.IsZero():
			if !a.UpdatedAt.Equal(b.UpdatedAt) {
				return a.UpdatedAt.After(b.UpdatedAt)
			}
		case !a.UpdatedAt.IsZero():
			return true
		case !b.UpdatedAt.IsZero():
			return false
		}

		return strings.Compare(a.Slug, b.Slug) < 0
	})
	for i := range items {
		items[i].Position = i
	}
}

// CloneItems deep-copies the slice fields of every item.
func CloneItems(src []Item) []Item {
	if len(src) == 0 {
		return []Item{}
	}
	out := make([]Item, len(src))
	for i, it := range src {
		out[i] = cloneItem(it)
	}
	return out
}

func cloneItem(it Item) Item {
	clone := it
	if it.Tags != nil {
		clone.Tags = append([]string(nil), it.Tags...)
	}
	if it.Headings != nil {
		clone.Headings = append([]markup.Heading(nil), it.Headings...)
	}
	return clone
}
