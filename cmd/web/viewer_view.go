package main

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/harshbutfairx/signoz-web/internal/viewer"
)

// viewerParams is the state an image viewer round-trips through its fragment URL.
type viewerParams struct {
	ID         string
	Src        string
	Alt        string
	Width      int
	Height     int
	Expandable bool
	Zoomed     bool
}

// ViewerView is the payload of the viewer partial and fragment.
type ViewerView struct {
	ID         string
	Src        string
	Alt        string
	Width      int
	Height     int
	Expandable bool
	Zoomed     bool
	State      string
	// ClickURL and ScrollURL re-render the viewer after the matching event.
	ClickURL  string
	ScrollURL string
}

func parseViewerParams(q url.Values) (viewerParams, bool) {
	p := viewerParams{
		ID:         strings.TrimSpace(q.Get("id")),
		Src:        strings.TrimSpace(q.Get("src")),
		Alt:        strings.TrimSpace(q.Get("alt")),
		Expandable: parseBool(q.Get("expandable")),
		Zoomed:     parseBool(q.Get("zoomed")),
	}
	p.Width, _ = strconv.Atoi(q.Get("width"))
	p.Height, _ = strconv.Atoi(q.Get("height"))
	if p.Width < 0 || p.Height < 0 {
		return p, false
	}
	return p, validImageSrc(p.Src) && validViewerID(p.ID)
}

// validImageSrc accepts site-relative paths and http(s) URLs.
func validImageSrc(src string) bool {
	if src == "" {
		return false
	}
	if strings.HasPrefix(src, "/") && !strings.HasPrefix(src, "//") {
		return true
	}
	u, err := url.Parse(src)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validViewerID(id string) bool {
	if id == "" {
		return true
	}
	for _, r := range id {
		if !(r == '-' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

// buildViewerView applies event to the viewer state and prepares the next round of URLs.
func buildViewerView(p viewerParams, event string) ViewerView {
	state := viewer.Normal
	if p.Zoomed {
		state = viewer.Zoomed
	}
	state = viewer.Next(state, viewer.ParseEvent(event), p.Expandable)

	id := p.ID
	if id == "" {
		id = "viewer-" + uuid.NewString()
	}
	v := ViewerView{
		ID:         id,
		Src:        p.Src,
		Alt:        p.Alt,
		Width:      p.Width,
		Height:     p.Height,
		Expandable: p.Expandable,
		Zoomed:     state == viewer.Zoomed,
		State:      state.String(),
	}
	if v.Expandable {
		v.ClickURL = viewerURL(v, "click")
		if v.Zoomed {
			v.ScrollURL = viewerURL(v, "scroll")
		}
	}
	return v
}

func viewerURL(v ViewerView, event string) string {
	q := url.Values{}
	q.Set("id", v.ID)
	q.Set("src", v.Src)
	if v.Alt != "" {
		q.Set("alt", v.Alt)
	}
	if v.Width > 0 {
		q.Set("width", strconv.Itoa(v.Width))
	}
	if v.Height > 0 {
		q.Set("height", strconv.Itoa(v.Height))
	}
	q.Set("expandable", strconv.FormatBool(v.Expandable))
	q.Set("zoomed", strconv.FormatBool(v.Zoomed))
	q.Set("event", event)
	return "/fragments/image-viewer?" + q.Encode()
}
