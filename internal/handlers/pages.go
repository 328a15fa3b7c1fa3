package handlers

import (
	"time"

	"github.com/harshbutfairx/signoz-web/internal/nav"
	"github.com/harshbutfairx/signoz-web/internal/seo"
)

// PageData is a generic view model for pages using the shared layout.
type PageData struct {
	Title    string
	SiteName string
	SEO      seo.Meta
	DevMode  bool
	// Static pages are written by the export and carry no htmx wiring.
	Static bool
	Year     int

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	// Optional per-page view model payloads
	Home    any
	Landing any
	Listing any
	Item    any
	Status  any
}

// NewPageData fills the layout fields shared by every page at path.
func NewPageData(site seo.Site, path, title string) PageData {
	return PageData{
		Title:       title,
		SiteName:    site.Name,
		Year:        time.Now().Year(),
		Path:        path,
		Nav:         nav.Build(path),
		Breadcrumbs: nav.Breadcrumbs(path),
	}
}
