package seo

import (
	"strings"
)

// Site holds the site-wide values every page's metadata is derived from.
type Site struct {
	Name    string
	BaseURL string // absolute origin, e.g. "https://signoz.io"
	Twitter string // e.g. "@SigNozHQ"
	Image   string // default share image path
}

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// Absolute joins p onto the site origin. Absolute URLs pass through.
func (s Site) Absolute(p string) string {
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	base := strings.TrimRight(s.BaseURL, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return base + p
}

// Page builds the metadata for one page. An empty image falls back to the site default.
func (s Site) Page(title, description, path, image, ogType string) Meta {
	full := title
	if s.Name != "" && title != "" && title != s.Name {
		full = title + " | " + s.Name
	} else if title == "" {
		full = s.Name
	}
	if image == "" {
		image = s.Image
	}
	if ogType == "" {
		ogType = "website"
	}
	canonical := s.Absolute(path)
	img := s.Absolute(image)
	card := "summary"
	if img != "" {
		card = "summary_large_image"
	}
	return Meta{
		Title:       full,
		Description: description,
		Canonical:   canonical,
		Robots:      "index,follow",
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Image:       img,
			Type:        ogType,
			URL:         canonical,
			SiteName:    s.Name,
		},
		Twitter: Twitter{Card: card, Site: s.Twitter, Image: img},
	}
}

// WithJSONLD appends serialized schema payloads, skipping ones that fail to encode.
func (m Meta) WithJSONLD(payloads ...any) Meta {
	for _, p := range payloads {
		if s := JSON(p); s != "" {
			m.JSONLD = append(m.JSONLD, s)
		}
	}
	return m
}
