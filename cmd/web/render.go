package main

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/harshbutfairx/signoz-web/internal/format"
	handlersPkg "github.com/harshbutfairx/signoz-web/internal/handlers"
	"github.com/harshbutfairx/signoz-web/internal/listing"
	"github.com/harshbutfairx/signoz-web/internal/logging"
	mw "github.com/harshbutfairx/signoz-web/internal/middleware"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"now":         time.Now,
		"fmtDate":     format.FmtDate,
		"isoDate":     format.ISODate,
		"readingTime": format.ReadingTime,
		"count":       format.Count,
		"plural":      format.Plural,
		"highlight":   listing.Highlight,
		"pageURL":     listing.PageURL,
		// jsonLD marks a payload produced by seo.JSON as safe script content
		"jsonLD": func(s string) template.JS { return template.JS(s) },
		"dict":   dict,
	}
}

// dict builds a map from alternating keys and values so partials can take several arguments.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

// parseTemplates parses layouts, partials and fragments into a shared set, then clones it
// once per file under pages/ so every page can define its own "content" block.
func parseTemplates() (*templateSet, error) {
	var shared, pages []string
	// ParseGlob doesn't support **, so walk the tree.
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".tmpl") {
			return nil
		}
		rel, err := filepath.Rel(templatesDir, path)
		if err != nil {
			return err
		}
		if strings.HasPrefix(filepath.ToSlash(rel), "pages/") {
			pages = append(pages, path)
		} else {
			shared = append(shared, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(shared) == 0 || len(pages) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}

	base, err := template.New("_root").Funcs(templateFuncs()).ParseFiles(shared...)
	if err != nil {
		return nil, err
	}
	set := &templateSet{pages: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFiles(p); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		set.pages[name] = clone
	}
	// base is never executed so it stays cloneable
	frag, err := base.Clone()
	if err != nil {
		return nil, err
	}
	set.fragments = frag
	return set, nil
}

// templates returns the parsed set. In dev mode, templates are reparsed on each call.
func templates() (*templateSet, error) {
	if devMode {
		return parseTemplates()
	}
	tmplMu.RLock()
	set := tmplCache
	tmplMu.RUnlock()
	if set != nil {
		return set, nil
	}
	tmplMu.Lock()
	defer tmplMu.Unlock()
	if tmplCache == nil {
		parsed, err := parseTemplates()
		if err != nil {
			return nil, err
		}
		tmplCache = parsed
	}
	return tmplCache, nil
}

// renderPage executes the base layout with the page's content block.
func renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	renderPageStatus(w, r, http.StatusOK, name, data)
}

func renderPageStatus(w http.ResponseWriter, r *http.Request, code int, name string, data any) {
	set, err := templates()
	if err != nil {
		serverError(w, r, fmt.Errorf("template parse: %w", err))
		return
	}
	t, ok := set.pages[name]
	if !ok {
		serverError(w, r, fmt.Errorf("unknown page template %q", name))
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		serverError(w, r, fmt.Errorf("template exec %s: %w", name, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

// renderTemplate executes a single named fragment, for htmx swaps.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	set, err := templates()
	if err != nil {
		serverError(w, r, fmt.Errorf("template parse: %w", err))
		return
	}
	var buf bytes.Buffer
	if err := set.fragments.ExecuteTemplate(&buf, name, data); err != nil {
		serverError(w, r, fmt.Errorf("template exec %s: %w", name, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Error("request failed", zap.Error(err), zap.String("path", r.URL.Path))
	mw.WriteError(w, r, http.StatusInternalServerError, "internal server error")
}

// notFound renders the 404 page, or a JSON error for htmx requests.
func notFound(w http.ResponseWriter, r *http.Request) {
	if mw.IsHTMX(r.Context()) {
		mw.WriteError(w, r, http.StatusNotFound, "not found")
		return
	}
	vm := handlersPkg.NewPageData(site, r.URL.Path, "Page not found")
	vm.SEO = site.Page("Page not found", "", r.URL.Path, "", "")
	vm.SEO.Robots = "noindex"
	vm.DevMode = devMode
	vm.Static = mw.IsStatic(r.Context())
	renderPageStatus(w, r, http.StatusNotFound, "not_found", vm)
}
