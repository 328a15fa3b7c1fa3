// Package landing loads product landing pages from YAML documents under the content directory.
package landing

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no landing page exists for a slug.
var ErrNotFound = errors.New("landing: not found")

// Link is a call-to-action button.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
	ID    string `yaml:"id"`
}

// Image is a figure on the page. Expandable images render through the image viewer.
type Image struct {
	Src        string `yaml:"src"`
	Alt        string `yaml:"alt"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Expandable bool   `yaml:"expandable"`
}

// Hero is the page header.
type Hero struct {
	Heading   string `yaml:"heading"`
	Subtitle  string `yaml:"subtitle"`
	Primary   Link   `yaml:"primary"`
	Secondary Link   `yaml:"secondary"`
	Image     Image  `yaml:"image"`
}

// TrustedBy is the customer logo strip.
type TrustedBy struct {
	Heading string  `yaml:"heading"`
	Logos   []Image `yaml:"logos"`
	Link    Link    `yaml:"link"`
}

// Card is a titled block of copy. Paragraphs render in order.
type Card struct {
	Title      string   `yaml:"title"`
	Logo       string   `yaml:"logo"`
	Paragraphs []string `yaml:"paragraphs"`
	Link       Link     `yaml:"link"`
}

// Highlight is a feature tile with a screenshot.
type Highlight struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       Image  `yaml:"image"`
	Link        Link   `yaml:"link"`
}

// Block is a headed list of cards.
type Block struct {
	Heading string `yaml:"heading"`
	Title   string `yaml:"title"`
	Lead    string `yaml:"lead"`
	Items   []Card `yaml:"items"`
}

// Stat is a single headline number.
type Stat struct {
	Logo  string `yaml:"logo"`
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Stats is the "developers love" block.
type Stats struct {
	Heading string `yaml:"heading"`
	Items   []Stat `yaml:"items"`
	Links   []Link `yaml:"links"`
}

// GetStarted is the closing call to action.
type GetStarted struct {
	Heading   string `yaml:"heading"`
	Primary   Link   `yaml:"primary"`
	Secondary Link   `yaml:"secondary"`
	Image     Image  `yaml:"image"`
}

// Page is one product landing page.
type Page struct {
	Slug        string      `yaml:"-"`
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Image       string      `yaml:"image"`
	Hero        Hero        `yaml:"hero"`
	TrustedBy   TrustedBy   `yaml:"trusted_by"`
	WhyHeading  string      `yaml:"why_heading"`
	Features    []Card      `yaml:"features"`
	Highlights  []Highlight `yaml:"highlights"`
	Usage       Block       `yaml:"usage"`
	Pricing     Block       `yaml:"pricing"`
	Stats       Stats       `yaml:"stats"`
	GetStarted  GetStarted  `yaml:"get_started"`
}

// Store reads landing pages from {dir}/landing/*.yaml and caches them until Invalidate.
type Store struct {
	fsys fs.FS

	mu     sync.RWMutex
	pages  map[string]Page
	loaded bool
}

// NewStore returns a store rooted at the content directory dir.
func NewStore(dir string) *Store {
	if strings.TrimSpace(dir) == "" {
		dir = "content"
	}
	return &Store{fsys: os.DirFS(dir)}
}

// NewStoreFS returns a store reading from fsys.
func NewStoreFS(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// Get returns the landing page for slug.
func (s *Store) Get(slug string) (Page, error) {
	pages, err := s.all()
	if err != nil {
		return Page{}, err
	}
	p, ok := pages[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return Page{}, ErrNotFound
	}
	return p, nil
}

// Slugs returns every known landing slug in lexical order.
func (s *Store) Slugs() ([]string, error) {
	pages, err := s.all()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(pages))
	for slug := range pages {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out, nil
}

// Invalidate drops the cache so the next access rereads the documents.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.pages = nil
	s.loaded = false
	s.mu.Unlock()
}

func (s *Store) all() (map[string]Page, error) {
	s.mu.RLock()
	if s.loaded {
		pages := s.pages
		s.mu.RUnlock()
		return pages, nil
	}
	s.mu.RUnlock()

	pages, err := load(s.fsys)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.pages = pages
	s.loaded = true
	s.mu.Unlock()
	return pages, nil
}

func load(fsys fs.FS) (map[string]Page, error) {
	matches, err := doublestar.Glob(fsys, "landing/*.{yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("landing: glob: %w", err)
	}
	pages := make(map[string]Page, len(matches))
	for _, name := range matches {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("landing: read %s: %w", name, err)
		}
		p, err := Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("landing: %s: %w", name, err)
		}
		base := path.Base(name)
		p.Slug = strings.ToLower(strings.TrimSuffix(base, path.Ext(base)))
		if _, dup := pages[p.Slug]; dup {
			return nil, fmt.Errorf("landing: duplicate slug %q", p.Slug)
		}
		pages[p.Slug] = p
	}
	return pages, nil
}

// Parse decodes one landing document. Unknown keys are rejected.
func Parse(raw []byte) (Page, error) {
	var p Page
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Page{}, fmt.Errorf("decode: %w", err)
	}
	if strings.TrimSpace(p.Title) == "" {
		return Page{}, errors.New("title is required")
	}
	if strings.TrimSpace(p.Hero.Heading) == "" {
		p.Hero.Heading = p.Title
	}
	if p.Description == "" {
		p.Description = p.Hero.Subtitle
	}
	return p, nil
}
