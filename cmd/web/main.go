package main

import (
	"html/template"
	"sync"

	"go.uber.org/zap"

	"github.com/harshbutfairx/signoz-web/internal/content"
	"github.com/harshbutfairx/signoz-web/internal/landing"
	"github.com/harshbutfairx/signoz-web/internal/seo"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	// devMode reparses templates on every request and disables asset caching
	devMode bool

	tmplMu    sync.RWMutex
	tmplCache *templateSet

	logger     = zap.NewNop()
	contentSrc *content.Source
	landings   *landing.Store
	site       seo.Site
)

// templateSet holds one clone of the shared layout per page plus the fragment set.
type templateSet struct {
	pages     map[string]*template.Template
	fragments *template.Template
}

func main() {
	Execute()
}
