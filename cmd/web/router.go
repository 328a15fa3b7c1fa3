package main

import (
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	mw "github.com/harshbutfairx/signoz-web/internal/middleware"
)

// newRouter wires every route. serve, export and the tests share it.
func newRouter(log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(middleware.RealIP)
	// permalinks carry a trailing slash; routes are registered without one
	r.Use(middleware.StripSlashes)
	r.Use(mw.HTMX)
	r.Use(mw.Logger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.NotFound(notFound)

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})

	// Static assets under /assets/
	r.Handle("/assets/*", mw.AssetsWithCache(filepath.Join(publicDir, "assets"), "/assets", devMode))

	r.Get("/", HomeHandler)

	r.Route("/resource-center/{section}", func(r chi.Router) {
		r.Get("/", SectionHandler)
		r.Get("/page/{page}", SectionHandler)
		r.Get("/results", ResultsFrag)
		r.Get("/{topic}", TopicHandler)
		r.Get("/{topic}/page/{page}", TopicHandler)
	})

	r.Get("/fragments/image-viewer", ImageViewerFrag)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/resource-center/{section}", ResourceAPIHandler)
	})

	r.Get("/{product}", LandingHandler)
	r.Get("/{section}/{slug}", ItemHandler)

	return r
}
