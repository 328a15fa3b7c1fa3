package main

import (
	"net/http"

	mw "github.com/harshbutfairx/signoz-web/internal/middleware"
)

// ImageViewerFrag re-renders an image viewer after a click or scroll.
// Only a zoomed, expandable viewer carries the window scroll listener, so swapping
// the fragment out is what detaches it.
func ImageViewerFrag(w http.ResponseWriter, r *http.Request) {
	p, ok := parseViewerParams(r.URL.Query())
	if !ok {
		mw.WriteError(w, r, http.StatusBadRequest, "invalid image viewer parameters")
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	renderTemplate(w, r, "frag_viewer", buildViewerView(p, r.URL.Query().Get("event")))
}
