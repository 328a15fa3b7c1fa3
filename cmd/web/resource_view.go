package main

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/harshbutfairx/signoz-web/internal/content"
	"github.com/harshbutfairx/signoz-web/internal/format"
	"github.com/harshbutfairx/signoz-web/internal/listing"
	"github.com/harshbutfairx/signoz-web/internal/markup"
	"github.com/harshbutfairx/signoz-web/internal/nav"
	"github.com/harshbutfairx/signoz-web/internal/seo"
)

// ListingView is the payload of listing pages and the results fragment.
type ListingView struct {
	Section    nav.Section
	Topic      string // route topic segment, empty on the unscoped listing
	TopicLabel string
	Heading    string
	Query      string
	Sidebar    []nav.SidebarItem
	Cards      []CardView
	Page       listing.Page
	Pagination PaginationView
	Summary    string
	// Static listings are exported pages without the search box.
	Static bool
	// ResultsURL is the htmx endpoint the search box targets.
	ResultsURL string
}

// CardView is one content card.
type CardView struct {
	Href        string
	Title       []listing.Segment
	Description []listing.Segment
	Date        string
	DateISO     string
	ReadingTime string
	Tags        []string
	Image       string
}

// PaginationView renders "Previous", "Next" and "Page n of m".
type PaginationView struct {
	Show     bool
	Current  int
	Total    int
	PrevHref string
	NextHref string
	// HX* are set while a search is active: paging then stays on the results fragment.
	PrevHX string
	NextHX string
}

// ItemView is the payload of the detail page.
type ItemView struct {
	Section     nav.Section
	Item        content.Item
	Date        string
	DateISO     string
	ReadingTime string
	TOC         []markup.Heading
	Hero        *ViewerView
	Topics      []nav.SidebarItem
}

func listingPrefix(sec nav.Section, topic string) string {
	if topic == "" {
		return sec.BasePath
	}
	return sec.TopicPath(topic)
}

// resultsURL builds the fragment URL for a topic, query and page.
func resultsURL(sec nav.Section, topic, q string, page int) string {
	v := url.Values{}
	if topic != "" {
		v.Set("topic", topic)
	}
	if q != "" {
		v.Set("q", q)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	u := sec.BasePath + "/results"
	if enc := v.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

func buildListingView(sec nav.Section, topic, q string, page listing.Page) ListingView {
	v := ListingView{
		Section:    sec,
		Topic:      topic,
		Heading:    sec.Title,
		Query:      q,
		Sidebar:    sec.Sidebar(topic),
		Page:       page,
		ResultsURL: sec.BasePath + "/results",
	}
	if topic != "" {
		v.TopicLabel = sec.TopicLabel(topic)
		v.Heading = v.TopicLabel + " " + sec.Title
	}
	for _, it := range page.Items {
		v.Cards = append(v.Cards, buildCard(it, q))
	}
	if !page.Empty() {
		v.Summary = format.Plural(page.TotalItems, sec.Noun, sec.Nouns)
	}

	prefix := listingPrefix(sec, topic)
	p := PaginationView{Show: page.TotalPages > 1, Current: page.CurrentPage, Total: page.TotalPages}
	if page.HasPrev {
		p.PrevHref = listing.PageURL(prefix, page.PrevPage)
	}
	if page.HasNext {
		p.NextHref = listing.PageURL(prefix, page.NextPage)
	}
	if q != "" {
		if page.HasPrev {
			p.PrevHX = resultsURL(sec, topic, q, page.PrevPage)
		}
		if page.HasNext {
			p.NextHX = resultsURL(sec, topic, q, page.NextPage)
		}
	}
	v.Pagination = p
	return v
}

func buildCard(it content.Item, q string) CardView {
	return CardView{
		Href:        it.Permalink(),
		Title:       listing.Highlight(it.Title, q),
		Description: listing.Highlight(it.Description, q),
		Date:        format.FmtDate(it.Date),
		DateISO:     format.ISODate(it.Date),
		ReadingTime: format.ReadingTime(it.ReadingTimeMinutes),
		Tags:        it.Tags,
		Image:       it.Image,
	}
}

func listingMeta(sec nav.Section, v ListingView, path string) seo.Meta {
	title := v.Heading
	if v.Page.CurrentPage > 1 {
		title += " - Page " + strconv.Itoa(v.Page.CurrentPage)
	}
	entries := make([]seo.ListEntry, 0, len(v.Page.Items))
	for _, it := range v.Page.Items {
		entries = append(entries, seo.ListEntry{Name: it.Title, URL: site.Absolute(it.Permalink())})
	}
	crumbs := make([]seo.BreadcrumbItem, 0, 4)
	for _, c := range nav.Breadcrumbs(path) {
		crumbs = append(crumbs, seo.BreadcrumbItem{Name: c.Label, Item: site.Absolute(c.Href)})
	}
	m := site.Page(title, sec.Description, path, "", "website").WithJSONLD(
		seo.BreadcrumbList(crumbs),
		seo.ItemList(title, v.Page.Offset+1, entries),
	)
	if v.Page.Empty() {
		m.Robots = "noindex,follow"
	}
	return m
}

func buildItemView(sec nav.Section, it content.Item, static bool) ItemView {
	v := ItemView{
		Section:     sec,
		Item:        it,
		Date:        format.FmtDate(it.Date),
		DateISO:     format.ISODate(it.Date),
		ReadingTime: format.ReadingTime(it.ReadingTimeMinutes),
		TOC:         it.Headings,
	}
	if it.Image != "" {
		hero := buildViewerView(viewerParams{Src: it.Image, Alt: it.Title, Expandable: !static}, "")
		v.Hero = &hero
	}
	for _, tag := range it.Tags {
		if t, ok := sec.Topic(tag); ok && !listing.IsAll(t.Slug) {
			v.Topics = append(v.Topics, nav.SidebarItem{Href: sec.TopicPath(t.Slug), Label: t.Label})
		}
	}
	return v
}

func itemMeta(sec nav.Section, it content.Item) seo.Meta {
	path := it.Permalink()
	crumbs := make([]seo.BreadcrumbItem, 0, 3)
	for _, c := range nav.Breadcrumbs(strings.TrimSuffix(path, "/")) {
		crumbs = append(crumbs, seo.BreadcrumbItem{Name: c.Label, Item: site.Absolute(c.Href)})
	}
	if len(crumbs) > 0 {
		crumbs[len(crumbs)-1].Name = it.Title
	}
	m := site.Page(it.Title, it.Description, path, it.Image, "article")
	return m.WithJSONLD(
		seo.Article(seo.ArticleInput{
			Headline:    it.Title,
			Description: it.Description,
			URL:         site.Absolute(path),
			Image:       site.Absolute(it.Image),
			Author:      it.Author,
			Publisher:   site.Name,
			Keywords:    it.Tags,
			Published:   it.Date,
			Modified:    it.UpdatedAt,
		}),
		seo.BreadcrumbList(crumbs),
	)
}
