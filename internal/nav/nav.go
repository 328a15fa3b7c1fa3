package nav

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/resource-center/guides"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/log-management", Label: "Logs"},
	{Path: "/resource-center/guides", Label: "Guides"},
	{Path: "/resource-center/blog", Label: "Blog"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/resource-center/guides" or "/resource-center/guides/..."
	if currentPath == itemPath {
		return true
	}
	if strings.HasPrefix(currentPath, itemPath+"/") {
		return true
	}
	// detail pages live at /{section}/{slug}
	if sec, ok := SectionFor(strings.TrimPrefix(itemPath, "/resource-center/")); ok {
		return strings.HasPrefix(currentPath, sec.ItemPath+"/")
	}
	return false
}

// Breadcrumbs builds breadcrumb entries from the current path.
// Rules:
// - Always start with Home
// - Known sections and topics use their display titles
// - "page/{n}" segments collapse into a single "Page n" crumb
func Breadcrumbs(currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

	var sec Section
	var haveSection bool
	href := ""
	for i := 0; i < len(parts); i++ {
		seg := parts[i]
		href += "/" + seg
		last := i == len(parts)-1

		label := TitleFromSegment(seg)
		switch {
		case seg == "resource-center":
			label = "Resource Center"
		case seg == "page" && i+1 < len(parts):
			i++
			href += "/" + parts[i]
			label = "Page " + parts[i]
			last = i == len(parts)-1
		case !haveSection:
			if s, ok := SectionFor(seg); ok {
				sec, haveSection = s, true
				label = s.Title
			}
		default:
			if t, ok := sec.Topic(seg); ok {
				label = t.Label
			}
		}
		crumbs = append(crumbs, Crumb{Href: href, Label: label, Active: last})
	}
	return crumbs
}

// TitleFromSegment prettifies a slug segment: "kubernetes-logging" -> "Kubernetes Logging".
// A Caser keeps state, so each call builds its own.
func TitleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	return cases.Title(language.English).String(s)
}
