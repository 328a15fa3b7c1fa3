package content

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/harshbutfairx/signoz-web/internal/markup"
)

type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Summary     string   `yaml:"summary"`
	Slug        string   `yaml:"slug"`
	Tags        []string `yaml:"tags"`
	Author      string   `yaml:"author"`
	Image       string   `yaml:"image"`
	Date        string   `yaml:"date"`
	UpdatedAt   string   `yaml:"updated_at"`
	ReadingTime int      `yaml:"reading_time"`
	Draft       bool     `yaml:"draft"`
}

// loadSection reads every markdown file under section/ in fsys.
// A missing section directory yields no items.
func loadSection(fsys fs.FS, section string, md *markup.Renderer) ([]Item, error) {
	matches, err := doublestar.Glob(fsys, section+"/**/*.md")
	if err != nil {
		return nil, fmt.Errorf("content: glob %s: %w", section, err)
	}
	items := make([]Item, 0, len(matches))
	seen := map[string]string{}
	for _, file := range matches {
		raw, err := fs.ReadFile(fsys, file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("content: read %s: %w", file, err)
		}
		item, ok, err := parseItem(section, file, raw, md)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if prev, dup := seen[item.Slug]; dup {
			return nil, fmt.Errorf("content: duplicate slug %q in %s and %s", item.Slug, prev, file)
		}
		seen[item.Slug] = file
		items = append(items, item)
	}
	return items, nil
}

func parseItem(section, file string, raw []byte, md *markup.Renderer) (Item, bool, error) {
	fm, body := splitFrontMatter(string(raw))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Item{}, false, fmt.Errorf("content: parse front matter %s: %w", file, err)
		}
	}
	if front.Draft {
		return Item{}, false, nil
	}

	slug := sanitizeSlug(front.Slug)
	if slug == "" {
		slug = sanitizeSlug(strings.TrimSuffix(path.Base(file), path.Ext(file)))
	}
	if slug == "" {
		return Item{}, false, nil
	}

	item := Item{
		Section:            section,
		Slug:               slug,
		Title:              strings.TrimSpace(front.Title),
		Description:        firstNonEmpty(strings.TrimSpace(front.Description), strings.TrimSpace(front.Summary)),
		Tags:               trimTags(front.Tags),
		Author:             strings.TrimSpace(front.Author),
		Image:              strings.TrimSpace(front.Image),
		ReadingTimeMinutes: front.ReadingTime,
		Date:               parseDate(front.Date),
		UpdatedAt:          parseDate(front.UpdatedAt),
		Body:               body,
	}
	if item.Title == "" {
		item.Title = prettifySlug(slug)
	}
	if err := renderBody(&item, md); err != nil {
		return Item{}, false, fmt.Errorf("content: render %s: %w", file, err)
	}
	return item, true, nil
}

func renderBody(item *Item, md *markup.Renderer) error {
	if md == nil || strings.TrimSpace(item.Body) == "" {
		return nil
	}
	doc, err := md.Render([]byte(item.Body))
	if err != nil {
		return err
	}
	item.HTML = doc.HTML
	item.Text = doc.Text
	item.Headings = doc.Headings
	if item.ReadingTimeMinutes <= 0 {
		item.ReadingTimeMinutes = readingMinutes(doc.Words)
	}
	return nil
}

func readingMinutes(words int) int {
	const wordsPerMinute = 200
	if words <= 0 {
		return 0
	}
	m := (words + wordsPerMinute - 1) / wordsPerMinute
	if m < 1 {
		m = 1
	}
	return m
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 {
		return "", ""
	}
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
		"2006/01/02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func trimTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func prettifySlug(slug string) string {
	parts := strings.Split(strings.TrimSpace(slug), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
