package seo

import (
	"encoding/json"
	"strings"
	"time"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// WebSite returns a minimal WebSite schema with optional SearchAction.
func WebSite(name, url, searchActionURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if searchActionURL != "" {
		m["potentialAction"] = map[string]any{
			"@type":       "SearchAction",
			"target":      searchActionURL + "{search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// ArticleInput carries the fields of an Article schema.
type ArticleInput struct {
	Headline    string
	Description string
	URL         string
	Image       string
	Author      string
	Publisher   string
	Keywords    []string
	Published   time.Time
	Modified    time.Time
}

// Article returns an Article schema payload. Zero times are omitted.
func Article(in ArticleInput) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Article",
		"headline": in.Headline,
	}
	if in.Description != "" {
		m["description"] = in.Description
	}
	if in.URL != "" {
		m["url"] = in.URL
		m["mainEntityOfPage"] = in.URL
	}
	if in.Image != "" {
		m["image"] = in.Image
	}
	if in.Author != "" {
		m["author"] = map[string]any{"@type": "Person", "name": in.Author}
	}
	if in.Publisher != "" {
		m["publisher"] = map[string]any{"@type": "Organization", "name": in.Publisher}
	}
	if len(in.Keywords) > 0 {
		m["keywords"] = strings.Join(in.Keywords, ", ")
	}
	if !in.Published.IsZero() {
		m["datePublished"] = in.Published.UTC().Format(time.RFC3339)
	}
	if !in.Modified.IsZero() {
		m["dateModified"] = in.Modified.UTC().Format(time.RFC3339)
	}
	return m
}

// ListEntry is one element of an ItemList.
type ListEntry struct {
	Name string
	URL  string
}

// ItemList builds a schema.org ItemList. start is the 1-based position of the first entry.
func ItemList(name string, start int, entries []ListEntry) map[string]any {
	if start < 1 {
		start = 1
	}
	el := make([]map[string]any, 0, len(entries))
	for i, e := range entries {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": start + i,
			"name":     e.Name,
			"url":      e.URL,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"name":            name,
		"itemListElement": el,
	}
}
