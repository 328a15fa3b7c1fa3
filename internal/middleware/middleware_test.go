package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/harshbutfairx/signoz-web/internal/logging"
)

func TestHTMXMarksRequests(t *testing.T) {
	var gotHTMX bool
	h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHTMX = IsHTMX(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.True(t, gotHTMX)
	require.Equal(t, "HX-Request", rec.Header().Get("Vary"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Boosted", "true")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.False(t, gotHTMX)
}

func TestStaticFlag(t *testing.T) {
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
	require.False(t, IsStatic(ctx))
	require.True(t, IsStatic(WithStatic(ctx)))
}

func TestWriteErrorNegotiates(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	WriteError(rec, req, http.StatusNotFound, "not found")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	req = req.WithContext(WithHTMX(req.Context(), true))
	rec = httptest.NewRecorder()
	WriteError(rec, req, http.StatusBadRequest, "bad page")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"bad page"}`, rec.Body.String())
}

func TestLoggerRecordsRoute(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := chi.NewRouter()
	r.Use(chiMid.RequestID)
	r.Use(HTMX)
	r.Use(Logger(zap.New(core)))
	r.Get("/guides/{slug}", func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Debug("handler")
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guides/k8s", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "/guides/{slug}", fields["route"])
	require.EqualValues(t, http.StatusTeapot, fields["status"])
	require.NotEmpty(t, fields["request_id"])
	require.Equal(t, 1, logs.FilterMessage("handler").Len())
}

func TestAssetsETag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("body{}"), 0o644))
	h := AssetsWithCache(dir, "/assets", false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "body{}", rec.Body.String())
	et := rec.Header().Get("ETag")
	require.NotEmpty(t, et)

	req := httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	req.Header.Set("If-None-Match", et)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)
}
