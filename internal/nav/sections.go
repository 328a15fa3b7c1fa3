package nav

import (
	"strings"

	"github.com/harshbutfairx/signoz-web/internal/listing"
)

// Topic is one entry of a section's sidebar.
type Topic struct {
	Slug  string // route segment, "all" for the unscoped listing
	Label string
}

// Section describes a resource-center listing: its routes, copy and topics.
type Section struct {
	Key               string
	Title             string
	Eyebrow           string
	Description       string
	SearchPlaceholder string
	EmptyText         string
	// Noun and Nouns count items in summaries: "1 guide", "45 guides".
	Noun  string
	Nouns string
	// BasePath is the listing route; ItemPath prefixes detail pages.
	BasePath string
	ItemPath string
	Topics   []Topic
}

// SidebarItem is a rendered topic link.
type SidebarItem struct {
	Href   string
	Label  string
	Active bool
}

// Sections lists every resource-center section in display order.
var Sections = []Section{
	{
		Key:               "guides",
		Title:             "Guides",
		Eyebrow:           "resources",
		Description:       "Learn how to monitor applications and infrastructure with OpenTelemetry and SigNoz.",
		SearchPlaceholder: "Search for guides...",
		EmptyText:         "No Guides found",
		Noun:              "guide",
		Nouns:             "guides",
		BasePath:          "/resource-center/guides",
		ItemPath:          "/guides",
		Topics: []Topic{
			{Slug: "all", Label: "All"},
			{Slug: "kubernetes", Label: "Kubernetes"},
			{Slug: "opentelemetry", Label: "OpenTelemetry"},
			{Slug: "logs", Label: "Logs"},
			{Slug: "traces", Label: "Traces"},
			{Slug: "metrics", Label: "Metrics"},
			{Slug: "devops", Label: "DevOps"},
			{Slug: "cloud", Label: "Cloud"},
			{Slug: "databases", Label: "Databases"},
		},
	},
	{
		Key:               "blog",
		Title:             "Blog",
		Eyebrow:           "resources",
		Description:       "Product updates, engineering deep dives and notes on observability.",
		SearchPlaceholder: "Search for posts...",
		EmptyText:         "No Posts found",
		Noun:              "post",
		Nouns:             "posts",
		BasePath:          "/resource-center/blog",
		ItemPath:          "/blog",
		Topics: []Topic{
			{Slug: "all", Label: "All"},
			{Slug: "product", Label: "Product"},
			{Slug: "engineering", Label: "Engineering"},
			{Slug: "opentelemetry", Label: "OpenTelemetry"},
			{Slug: "observability", Label: "Observability"},
		},
	},
}

// SectionFor looks up a section by key.
func SectionFor(key string) (Section, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, s := range Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// Topic looks up a topic by route segment, comparing normalized forms.
func (s Section) Topic(slug string) (Topic, bool) {
	n := listing.Normalize(slug)
	for _, t := range s.Topics {
		if listing.Normalize(t.Slug) == n {
			return t, true
		}
	}
	return Topic{}, false
}

// TopicLabel returns the display label for a topic segment, prettifying unknown ones.
func (s Section) TopicLabel(slug string) string {
	if t, ok := s.Topic(slug); ok {
		return t.Label
	}
	return TitleFromSegment(slug)
}

// TopicPath returns the listing route of a topic. "all" maps to the base path.
func (s Section) TopicPath(slug string) string {
	if slug == "" || listing.IsAll(slug) {
		return s.BasePath
	}
	return s.BasePath + "/" + slug
}

// Sidebar renders the topic list, marking active. An empty active topic selects "all".
func (s Section) Sidebar(active string) []SidebarItem {
	if active == "" {
		active = listing.AllTopic
	}
	activeNorm := listing.Normalize(active)
	out := make([]SidebarItem, 0, len(s.Topics))
	for _, t := range s.Topics {
		out = append(out, SidebarItem{
			Href:   s.TopicPath(t.Slug),
			Label:  t.Label,
			Active: listing.Normalize(t.Slug) == activeNorm,
		})
	}
	return out
}
