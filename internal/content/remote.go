package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type pageItems struct {
	Items []rawItem `json:"items"`
}

type rawItem struct {
	Slug               string     `json:"slug"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Summary            string     `json:"summary"`
	Tags               []string   `json:"tags"`
	Author             rawAuthor  `json:"author"`
	Image              string     `json:"heroImageUrl"`
	ReadingTimeMinutes int        `json:"readingTimeMinutes"`
	Body               string     `json:"body"`
	PublishAt          *time.Time `json:"publishAt"`
	CreatedAt          *time.Time `json:"createdAt"`
	UpdatedAt          *time.Time `json:"updatedAt"`
}

type rawAuthor struct {
	Name string `json:"name"`
}

// fetchRemote lists a section from the CMS. ErrNotFound means the CMS has no such section.
func (s *Source) fetchRemote(ctx context.Context, section string) ([]Item, error) {
	endpoint, err := url.JoinPath(s.baseURL, "content", section)
	if err != nil {
		return nil, fmt.Errorf("content: join path %s: %w", section, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("content: build request %s: %w", section, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("content: list %s: %w", section, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("content: list %s: remote status %d", section, resp.StatusCode)
	}

	var pg pageItems
	if err := json.NewDecoder(resp.Body).Decode(&pg); err != nil {
		return nil, fmt.Errorf("content: decode %s: %w", section, err)
	}

	items := make([]Item, 0, len(pg.Items))
	for _, raw := range pg.Items {
		item, ok := mapRawItem(section, raw)
		if !ok {
			continue
		}
		if err := renderBody(&item, s.md); err != nil {
			return nil, fmt.Errorf("content: render %s/%s: %w", section, item.Slug, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func mapRawItem(section string, raw rawItem) (Item, bool) {
	slug := sanitizeSlug(raw.Slug)
	title := strings.TrimSpace(raw.Title)
	if slug == "" || title == "" {
		return Item{}, false
	}
	item := Item{
		Section:            section,
		Slug:               slug,
		Title:              title,
		Description:        firstNonEmpty(strings.TrimSpace(raw.Description), strings.TrimSpace(raw.Summary)),
		Tags:               trimTags(raw.Tags),
		Author:             strings.TrimSpace(raw.Author.Name),
		Image:              strings.TrimSpace(raw.Image),
		ReadingTimeMinutes: raw.ReadingTimeMinutes,
		Body:               raw.Body,
	}
	if raw.PublishAt != nil {
		item.Date = *raw.PublishAt
	}
	if raw.UpdatedAt != nil {
		item.UpdatedAt = *raw.UpdatedAt
	} else if raw.CreatedAt != nil {
		item.UpdatedAt = *raw.CreatedAt
	}
	return item, true
}
