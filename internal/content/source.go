package content

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/harshbutfairx/signoz-web/internal/markup"
)

const (
	defaultContentDir = "content"
	defaultCacheTTL   = 5 * time.Minute
)

// Options configures a Source.
type Options struct {
	// Dir is the local content root holding one directory per section.
	Dir string
	// BaseURL points at an optional remote CMS. Empty means local content only.
	BaseURL  string
	CacheTTL time.Duration
	Logger   *zap.Logger
	Renderer *markup.Renderer
	HTTP     *http.Client
	// OnChange runs after the watcher invalidates the cache.
	OnChange func()
}

// Source supplies the sorted items of a section, reading the remote CMS when configured
// and falling back to local markdown.
type Source struct {
	dir     string
	fsys    fs.FS
	baseURL string
	http    *http.Client
	md      *markup.Renderer
	log     *zap.Logger
	ttl     time.Duration
	now     func() time.Time
	changed func()

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	items   []Item
	expires time.Time
}

// NewSource constructs a Source from opts.
func NewSource(opts Options) *Source {
	dir := strings.TrimSpace(opts.Dir)
	if dir == "" {
		dir = defaultContentDir
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	client := opts.HTTP
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	md := opts.Renderer
	if md == nil {
		md = markup.NewRenderer()
	}
	return &Source{
		dir:     dir,
		fsys:    os.DirFS(dir),
		baseURL: strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"),
		http:    client,
		md:      md,
		log:     logger,
		ttl:     ttl,
		now:     time.Now,
		changed: opts.OnChange,
		cache:   map[string]cacheEntry{},
	}
}

// Dir returns the local content root.
func (s *Source) Dir() string { return s.dir }

// List returns every item of section, newest first. The result is a copy.
func (s *Source) List(ctx context.Context, section string) ([]Item, error) {
	section = strings.ToLower(strings.TrimSpace(section))
	if section == "" {
		return []Item{}, nil
	}
	if items, ok := s.cached(section); ok {
		return items, nil
	}

	items, err := s.load(ctx, section)
	if err != nil {
		return nil, err
	}
	SortItems(items)
	s.store(section, items)
	return CloneItems(items), nil
}

// Get returns the item of section with the given slug.
func (s *Source) Get(ctx context.Context, section, slug string) (Item, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Item{}, ErrNotFound
	}
	items, err := s.List(ctx, section)
	if err != nil {
		return Item{}, err
	}
	for _, it := range items {
		if it.Slug == slug {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

// Invalidate drops the cached items of every section.
func (s *Source) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = map[string]cacheEntry{}
}

func (s *Source) load(ctx context.Context, section string) ([]Item, error) {
	if s.baseURL != "" {
		items, err := s.fetchRemote(ctx, section)
		switch {
		case err == nil && len(items) > 0:
			return items, nil
		case err == nil, errors.Is(err, ErrNotFound):
			s.log.Debug("remote section empty, using local content", zap.String("section", section))
		default:
			s.log.Warn("remote content unavailable, using local content",
				zap.String("section", section), zap.Error(err))
		}
	}
	return loadSection(s.fsys, section, s.md)
}

func (s *Source) cached(section string) ([]Item, bool) {
	s.mu.RLock()
	entry, ok := s.cache[section]
	s.mu.RUnlock()
	if !ok || s.now().After(entry.expires) {
		return nil, false
	}
	return CloneItems(entry.items), true
}

func (s *Source) store(section string, items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[section] = cacheEntry{
		items:   CloneItems(items),
		expires: s.now().Add(s.ttl),
	}
}
