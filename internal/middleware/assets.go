package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// AssetsWithCache serves dir under the URL prefix with Cache-Control, Vary and ETag handling.
// ETags are computed once at startup; in dev mode they are recomputed per request.
func AssetsWithCache(dir, prefix string, dev bool) http.Handler {
	prefix = "/" + strings.Trim(prefix, "/")
	etags := scanETags(dir)
	files := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rel := strings.TrimPrefix(r.URL.Path, prefix)
		if dev {
			w.Header().Set("Cache-Control", "no-cache")
			if et, err := fileETag(filepath.Join(dir, filepath.FromSlash(rel))); err == nil {
				w.Header().Set("ETag", et)
			}
		} else {
			w.Header().Set("Vary", "Accept-Encoding")
			w.Header().Set("Cache-Control", "public, max-age=604800, stale-while-revalidate=86400")
			if et := etags[rel]; et != "" {
				w.Header().Set("ETag", et)
			}
		}
		if et := w.Header().Get("ETag"); et != "" && r.Header.Get("If-None-Match") == et {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// scanETags maps URL paths relative to dir ("/css/site.css") to weak content ETags.
func scanETags(dir string) map[string]string {
	etags := map[string]string{}
	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info == nil || info.IsDir() {
			return nil
		}
		et, err := fileETag(path)
		if err != nil {
			return nil
		}
		if rel, err := filepath.Rel(dir, path); err == nil {
			etags["/"+filepath.ToSlash(rel)] = et
		}
		return nil
	})
	return etags
}

func fileETag(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil)[:16]) + `"`, nil
}
