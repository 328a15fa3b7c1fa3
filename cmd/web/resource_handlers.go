package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/harshbutfairx/signoz-web/internal/content"
	"github.com/harshbutfairx/signoz-web/internal/format"
	handlersPkg "github.com/harshbutfairx/signoz-web/internal/handlers"
	"github.com/harshbutfairx/signoz-web/internal/listing"
	mw "github.com/harshbutfairx/signoz-web/internal/middleware"
	"github.com/harshbutfairx/signoz-web/internal/nav"
)

// SectionHandler renders the unscoped listing of a section: /resource-center/{section}[/page/{page}].
func SectionHandler(w http.ResponseWriter, r *http.Request) {
	renderListing(w, r, "")
}

// TopicHandler renders a topic listing: /resource-center/{section}/{topic}[/page/{page}].
// The "all" topic redirects to the unscoped listing.
func TopicHandler(w http.ResponseWriter, r *http.Request) {
	topic := strings.TrimSpace(chi.URLParam(r, "topic"))
	if listing.IsAll(topic) {
		sec, ok := nav.SectionFor(chi.URLParam(r, "section"))
		if !ok {
			notFound(w, r)
			return
		}
		http.Redirect(w, r, sec.BasePath, http.StatusFound)
		return
	}
	renderListing(w, r, topic)
}

func renderListing(w http.ResponseWriter, r *http.Request, topic string) {
	sec, ok := nav.SectionFor(chi.URLParam(r, "section"))
	if !ok {
		notFound(w, r)
		return
	}
	page, ok := listing.ParsePage(chi.URLParam(r, "page"))
	if !ok {
		notFound(w, r)
		return
	}
	items, err := contentSrc.List(r.Context(), sec.Key)
	if err != nil {
		serverError(w, r, err)
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	result := listing.Run(items, listing.Query{Scoped: topic != "", Topic: topic, Search: q, Page: page})
	view := buildListingView(sec, topic, q, result)
	view.Static = mw.IsStatic(r.Context())

	path := listing.PageURL(listingPrefix(sec, topic), result.CurrentPage)
	vm := handlersPkg.NewPageData(site, path, view.Heading)
	vm.SEO = listingMeta(sec, view, path)
	vm.DevMode = devMode
	vm.Static = view.Static
	vm.Listing = view
	renderPage(w, r, "listing", vm)
}

// ResultsFrag renders the results region for the search box and search-mode paging.
// The query is transient, so no HX-Push-Url is sent.
func ResultsFrag(w http.ResponseWriter, r *http.Request) {
	sec, ok := nav.SectionFor(chi.URLParam(r, "section"))
	if !ok {
		notFound(w, r)
		return
	}
	qs := r.URL.Query()
	topic := strings.TrimSpace(qs.Get("topic"))
	if listing.IsAll(topic) {
		topic = ""
	}
	page, ok := listing.ParsePage(qs.Get("page"))
	if !ok {
		mw.WriteError(w, r, http.StatusBadRequest, "invalid page")
		return
	}
	items, err := contentSrc.List(r.Context(), sec.Key)
	if err != nil {
		serverError(w, r, err)
		return
	}
	q := strings.TrimSpace(qs.Get("q"))
	result := listing.Run(items, listing.Query{Scoped: topic != "", Topic: topic, Search: q, Page: page})
	renderTemplate(w, r, "frag_results", buildListingView(sec, topic, q, result))
}

// ItemHandler renders a detail page: /{section}/{slug}, where section is a section's item path.
func ItemHandler(w http.ResponseWriter, r *http.Request) {
	var sec nav.Section
	var ok bool
	key := chi.URLParam(r, "section")
	for _, s := range nav.Sections {
		if strings.TrimPrefix(s.ItemPath, "/") == key {
			sec, ok = s, true
			break
		}
	}
	if !ok {
		notFound(w, r)
		return
	}
	it, err := contentSrc.Get(r.Context(), sec.Key, chi.URLParam(r, "slug"))
	if errors.Is(err, content.ErrNotFound) {
		notFound(w, r)
		return
	}
	if err != nil {
		serverError(w, r, err)
		return
	}

	view := buildItemView(sec, it, mw.IsStatic(r.Context()))
	vm := handlersPkg.NewPageData(site, strings.TrimSuffix(it.Permalink(), "/"), it.Title)
	if n := len(vm.Breadcrumbs); n > 0 {
		vm.Breadcrumbs[n-1].Label = it.Title
	}
	vm.SEO = itemMeta(sec, it)
	vm.DevMode = devMode
	vm.Static = mw.IsStatic(r.Context())
	vm.Item = view
	renderPage(w, r, "item", vm)
}

type apiItem struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Date        string   `json:"date,omitempty"`
	ReadingTime int      `json:"readingTimeMinutes,omitempty"`
	URL         string   `json:"url"`
}

type apiListing struct {
	Section    string    `json:"section"`
	Topic      string    `json:"topic,omitempty"`
	Query      string    `json:"q,omitempty"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
	TotalItems int       `json:"totalItems"`
	Items      []apiItem `json:"items"`
}

// ResourceAPIHandler serves a listing page as JSON: /api/resource-center/{section}?topic&q&page.
func ResourceAPIHandler(w http.ResponseWriter, r *http.Request) {
	sec, ok := nav.SectionFor(chi.URLParam(r, "section"))
	if !ok {
		mw.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "unknown section"})
		return
	}
	qs := r.URL.Query()
	page, ok := listing.ParsePage(qs.Get("page"))
	if !ok {
		mw.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid page " + strconv.Quote(qs.Get("page"))})
		return
	}
	topic := strings.TrimSpace(qs.Get("topic"))
	if listing.IsAll(topic) {
		topic = ""
	}
	items, err := contentSrc.List(r.Context(), sec.Key)
	if err != nil {
		serverError(w, r, err)
		return
	}
	q := strings.TrimSpace(qs.Get("q"))
	result := listing.Run(items, listing.Query{Scoped: topic != "", Topic: topic, Search: q, Page: page})

	out := apiListing{
		Section:    sec.Key,
		Topic:      topic,
		Query:      q,
		Page:       result.CurrentPage,
		TotalPages: result.TotalPages,
		TotalItems: result.TotalItems,
		Items:      make([]apiItem, 0, len(result.Items)),
	}
	for _, it := range result.Items {
		out.Items = append(out.Items, apiItem{
			Slug:        it.Slug,
			Title:       it.Title,
			Description: it.Description,
			Tags:        it.Tags,
			Date:        format.ISODate(it.Date),
			ReadingTime: it.ReadingTimeMinutes,
			URL:         site.Absolute(it.Permalink()),
		})
	}
	mw.WriteJSON(w, http.StatusOK, out)
}

