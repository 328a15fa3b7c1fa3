package handlers

import (
	"github.com/harshbutfairx/signoz-web/internal/nav"
	"github.com/harshbutfairx/signoz-web/internal/seo"
)

// HomeData is the payload of the home page: a hero and one card per resource section.
type HomeData struct {
	Heading  string
	Subtitle string
	Sections []SectionLink
	Products []ProductLink
}

// SectionLink points at a resource-center section.
type SectionLink struct {
	Href        string
	Title       string
	Description string
	Count       int
}

// ProductLink points at a product landing page.
type ProductLink struct {
	Href  string
	Title string
}

// LogoPath is the site logo served from the public assets.
const LogoPath = "/assets/img/logo.svg"

// BuildHomeData constructs the home page view model. counts maps section keys to item counts.
func BuildHomeData(site seo.Site, counts map[string]int, products []ProductLink) PageData {
	home := HomeData{
		Heading:  "Observability for every signal",
		Subtitle: "Logs, metrics and traces in a single pane, built on OpenTelemetry.",
		Products: products,
	}
	for _, s := range nav.Sections {
		home.Sections = append(home.Sections, SectionLink{
			Href:        s.BasePath,
			Title:       s.Title,
			Description: s.Description,
			Count:       counts[s.Key],
		})
	}

	vm := NewPageData(site, "/", site.Name)
	vm.SEO = site.Page("", home.Subtitle, "/", "", "website").WithJSONLD(
		seo.Organization(site.Name, site.BaseURL, site.Absolute(LogoPath)),
		seo.WebSite(site.Name, site.BaseURL, site.Absolute("/resource-center/guides?q=")),
	)
	vm.Home = home
	return vm
}
