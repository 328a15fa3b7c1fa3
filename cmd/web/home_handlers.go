package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	handlersPkg "github.com/harshbutfairx/signoz-web/internal/handlers"
	"github.com/harshbutfairx/signoz-web/internal/landing"
	"github.com/harshbutfairx/signoz-web/internal/logging"
	mw "github.com/harshbutfairx/signoz-web/internal/middleware"
	"github.com/harshbutfairx/signoz-web/internal/nav"
)

// HomeHandler renders the home page.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	counts := map[string]int{}
	for _, s := range nav.Sections {
		items, err := contentSrc.List(r.Context(), s.Key)
		if err != nil {
			// the home page still renders without counts
			logging.FromContext(r.Context()).Warn("count section", zap.String("section", s.Key), zap.Error(err))
			continue
		}
		counts[s.Key] = len(items)
	}

	var products []handlersPkg.ProductLink
	if slugs, err := landings.Slugs(); err == nil {
		for _, slug := range slugs {
			if p, err := landings.Get(slug); err == nil {
				products = append(products, handlersPkg.ProductLink{Href: "/" + slug, Title: p.Title})
			}
		}
	} else {
		logging.FromContext(r.Context()).Warn("list landing pages", zap.Error(err))
	}

	vm := handlersPkg.BuildHomeData(site, counts, products)
	vm.DevMode = devMode
	vm.Static = mw.IsStatic(r.Context())
	renderPage(w, r, "home", vm)
}

// LandingView is the landing page payload with the page's figures prebuilt as viewers.
type LandingView struct {
	Page       landing.Page
	HeroImage  *ViewerView
	Highlights []HighlightView
	Closing    *ViewerView
}

// HighlightView pairs a highlight with its viewer.
type HighlightView struct {
	landing.Highlight
	Viewer *ViewerView
}

// viewerFor builds the viewer of img. Static pages get fixed images.
func viewerFor(img landing.Image, static bool) *ViewerView {
	if !validImageSrc(img.Src) {
		return nil
	}
	v := buildViewerView(viewerParams{
		Src:        img.Src,
		Alt:        img.Alt,
		Width:      img.Width,
		Height:     img.Height,
		Expandable: img.Expandable && !static,
	}, "")
	return &v
}

func buildLandingView(p landing.Page, static bool) LandingView {
	v := LandingView{
		Page:      p,
		HeroImage: viewerFor(p.Hero.Image, static),
		Closing:   viewerFor(p.GetStarted.Image, static),
	}
	for _, h := range p.Highlights {
		v.Highlights = append(v.Highlights, HighlightView{Highlight: h, Viewer: viewerFor(h.Image, static)})
	}
	return v
}

// LandingHandler renders a product landing page: /{product}.
func LandingHandler(w http.ResponseWriter, r *http.Request) {
	p, err := landings.Get(chi.URLParam(r, "product"))
	if errors.Is(err, landing.ErrNotFound) {
		notFound(w, r)
		return
	}
	if err != nil {
		serverError(w, r, err)
		return
	}
	path := "/" + p.Slug
	vm := handlersPkg.NewPageData(site, path, p.Title)
	vm.SEO = site.Page(p.Title, p.Description, path, p.Image, "website")
	vm.DevMode = devMode
	vm.Static = mw.IsStatic(r.Context())
	vm.Landing = buildLandingView(p, vm.Static)
	renderPage(w, r, "landing", vm)
}
