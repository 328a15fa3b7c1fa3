package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/harshbutfairx/signoz-web/internal/listing"
	mw "github.com/harshbutfairx/signoz-web/internal/middleware"
	"github.com/harshbutfairx/signoz-web/internal/nav"
)

// progress reports export progress.
type progress interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// newProgress returns a terminal progress bar, or line-per-page output under CI.
func newProgress(w io.Writer) progress {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &lineProgress{w: w}
	}
	return &barProgress{w: w}
}

type barProgress struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (p *barProgress) Start(total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription("Exporting"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *barProgress) Update(current int, message string) {
	if p.bar != nil {
		p.bar.Describe(message)
		_ = p.bar.Set(current)
	}
}

func (p *barProgress) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

type lineProgress struct {
	w     io.Writer
	total int
}

func (p *lineProgress) Start(total int) {
	p.total = total
	fmt.Fprintf(p.w, "Exporting %d pages\n", total)
}

func (p *lineProgress) Update(current int, message string) {
	fmt.Fprintf(p.w, "[%d/%d] %s\n", current, p.total, message)
}

func (p *lineProgress) Finish() {
	fmt.Fprintln(p.w, "Export complete")
}

// exportPaths enumerates every static route: home, landing pages, each section and topic
// listing with all of its pages, and every item.
func exportPaths(ctx context.Context) ([]string, error) {
	paths := []string{"/"}

	slugs, err := landings.Slugs()
	if err != nil {
		return nil, err
	}
	for _, slug := range slugs {
		paths = append(paths, "/"+slug)
	}

	for _, sec := range nav.Sections {
		items, err := contentSrc.List(ctx, sec.Key)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", sec.Key, err)
		}
		paths = append(paths, pagePaths(sec.BasePath, len(items))...)
		for _, t := range sec.Topics {
			if listing.IsAll(t.Slug) {
				continue
			}
			n := len(listing.FilterByTopic(items, t.Slug))
			paths = append(paths, pagePaths(sec.TopicPath(t.Slug), n)...)
		}
		for _, it := range items {
			paths = append(paths, it.Permalink())
		}
	}
	return paths, nil
}

// pagePaths lists the routes of every page of an n-item listing. An empty listing
// still gets its first page, which renders the empty state.
func pagePaths(prefix string, n int) []string {
	total := listing.TotalPages(n, listing.PageSize)
	if total < 1 {
		total = 1
	}
	out := make([]string, 0, total)
	for p := 1; p <= total; p++ {
		out = append(out, listing.PageURL(prefix, p))
	}
	return out
}

// exportSite renders every route through h into outDir as {route}/index.html and copies
// the public assets alongside. Pages are rendered static: no search box, no htmx script,
// and images are fixed, since the fragment endpoints are not exported.
func exportSite(ctx context.Context, h http.Handler, outDir string, prog progress) error {
	if strings.TrimSpace(outDir) == "" {
		return fmt.Errorf("export: empty output directory")
	}
	paths, err := exportPaths(ctx)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	prog.Start(len(paths) + 1)
	for i, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := exportOne(ctx, h, outDir, p); err != nil {
			return fmt.Errorf("export %s: %w", p, err)
		}
		prog.Update(i+1, p)
	}
	if err := exportOne(ctx, h, outDir, "/404"); err != nil {
		return fmt.Errorf("export 404: %w", err)
	}
	if err := copyDir(filepath.Join(publicDir, "assets"), filepath.Join(outDir, "assets")); err != nil {
		return fmt.Errorf("export assets: %w", err)
	}
	prog.Update(len(paths)+1, "assets")
	prog.Finish()
	logger.Info("export complete", zap.Int("pages", len(paths)), zap.String("dir", outDir))
	return nil
}

func exportOne(ctx context.Context, h http.Handler, outDir, route string) error {
	req := httptest.NewRequest(http.MethodGet, route, nil).WithContext(mw.WithStatic(ctx))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	target := exportRoute(outDir, route)
	switch {
	case route == "/404":
		if rec.Code != http.StatusNotFound {
			return fmt.Errorf("status %d", rec.Code)
		}
		target = filepath.Join(outDir, "404.html")
	case rec.Code != http.StatusOK:
		return fmt.Errorf("status %d", rec.Code)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, rec.Body.Bytes(), 0o644)
}

func copyDir(src, dst string) error {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		in, err := os.Open(p)
		if err != nil {
			return err
		}
		defer in.Close()
		out, err := os.Create(target)
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, in); err != nil {
			_ = out.Close()
			return err
		}
		return out.Close()
	})
}

// exportRoute maps a route onto its index.html under outDir.
func exportRoute(outDir, route string) string {
	clean := path.Clean("/" + route)
	if clean == "/" {
		return filepath.Join(outDir, "index.html")
	}
	return filepath.Join(outDir, filepath.FromSlash(strings.TrimPrefix(clean, "/")), "index.html")
}
