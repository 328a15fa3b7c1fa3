package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel, body string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func newTestSource(t *testing.T) (*Source, string) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "guides/kubernetes-logging.md", `---
title: Kubernetes Logging
description: Collect pod logs with OpenTelemetry.
tags: [Kubernetes, "Dev Ops"]
date: 2024-03-01
---
## Deploy the collector

Install the daemonset.
`)
	writeFile(t, dir, "guides/aws/aws-setup.md", `---
title: AWS Setup
tags: [AWS]
date: 2024-05-10
---
Body.
`)
	writeFile(t, dir, "guides/undated.md", `---
title: Undated
---
Body.
`)
	writeFile(t, dir, "guides/draft.md", `---
title: Draft
draft: true
---
`)
	return NewSource(Options{Dir: dir}), dir
}

func TestListSortsNewestFirstAndSetsPositions(t *testing.T) {
	src, _ := newTestSource(t)

	items, err := src.List(context.Background(), "guides")
	require.NoError(t, err)
	require.Len(t, items, 3)

	require.Equal(t, "aws-setup", items[0].Slug)
	require.Equal(t, "kubernetes-logging", items[1].Slug)
	require.Equal(t, "undated", items[2].Slug)
	for i, it := range items {
		require.Equal(t, i, it.Position)
		require.Equal(t, "guides", it.Section)
	}

	k8s := items[1]
	require.Equal(t, []string{"Kubernetes", "Dev Ops"}, k8s.Tags)
	require.Equal(t, "Collect pod logs with OpenTelemetry.", k8s.Description)
	require.Len(t, k8s.Headings, 1)
	require.Equal(t, "deploy-the-collector", k8s.Headings[0].ID)
	require.Equal(t, 1, k8s.ReadingTimeMinutes)
	require.Equal(t, "/guides/kubernetes-logging/", k8s.Permalink())
}

func TestListMissingSectionIsEmpty(t *testing.T) {
	src, _ := newTestSource(t)
	items, err := src.List(context.Background(), "blog")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestListReturnsCopies(t *testing.T) {
	src, _ := newTestSource(t)
	items, err := src.List(context.Background(), "guides")
	require.NoError(t, err)
	items[1].Tags[0] = "mutated"

	again, err := src.List(context.Background(), "guides")
	require.NoError(t, err)
	require.Equal(t, "Kubernetes", again[1].Tags[0])
}

func TestGetUnknownSlug(t *testing.T) {
	src, _ := newTestSource(t)
	_, err := src.Get(context.Background(), "guides", "missing")
	require.True(t, errors.Is(err, ErrNotFound))

	_, err = src.Get(context.Background(), "guides", "../etc")
	require.True(t, errors.Is(err, ErrNotFound))

	it, err := src.Get(context.Background(), "guides", "AWS-Setup")
	require.NoError(t, err)
	require.Equal(t, "AWS Setup", it.Title)
}

func TestCacheExpiresAfterTTL(t *testing.T) {
	src, dir := newTestSource(t)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	src.now = func() time.Time { return now }

	items, err := src.List(context.Background(), "guides")
	require.NoError(t, err)
	require.Len(t, items, 3)

	writeFile(t, dir, "guides/new.md", "---\ntitle: New\ndate: 2025-01-01\n---\nhi\n")

	items, err = src.List(context.Background(), "guides")
	require.NoError(t, err)
	require.Len(t, items, 3, "cached result expected before ttl")

	now = now.Add(defaultCacheTTL + time.Second)
	items, err = src.List(context.Background(), "guides")
	require.NoError(t, err)
	require.Len(t, items, 4)
	require.Equal(t, "new", items[0].Slug)
}

func TestDuplicateSlugIsAnError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blog/a.md", "---\nslug: same\n---\n")
	writeFile(t, dir, "blog/b.md", "---\nslug: same\n---\n")
	_, err := NewSource(Options{Dir: dir}).List(context.Background(), "blog")
	require.Error(t, err)
}

func TestRemoteItemsPreferred(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/content/guides", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"slug":"remote-one","title":"Remote One","tags":["OpenTelemetry"],"publishAt":"2024-01-01T00:00:00Z","body":"# hi"},
			{"slug":"","title":"skipped"}
		]}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	src := NewSource(Options{Dir: dir, BaseURL: srv.URL})
	items, err := src.List(context.Background(), "guides")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "remote-one", items[0].Slug)
	require.Equal(t, 2024, items[0].Date.Year())
}

func TestRemoteFailureFallsBackToDisk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	dir := t.TempDir()
	writeFile(t, dir, "guides/local.md", "---\ntitle: Local\n---\nbody\n")
	src := NewSource(Options{Dir: dir, BaseURL: srv.URL})
	items, err := src.List(context.Background(), "guides")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "local", items[0].Slug)
}

func TestWatchInvalidatesCache(t *testing.T) {
	src, dir := newTestSource(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, src.Watch(ctx))

	items, err := src.List(ctx, "guides")
	require.NoError(t, err)
	require.Len(t, items, 3)

	writeFile(t, dir, "guides/fresh.md", "---\ntitle: Fresh\n---\nbody\n")

	require.Eventually(t, func() bool {
		items, err := src.List(ctx, "guides")
		return err == nil && len(items) == 4
	}, 5*time.Second, 20*time.Millisecond)
}

func TestSplitFrontMatter(t *testing.T) {
	fm, body := splitFrontMatter("---\ntitle: x\n---\n\nbody")
	require.Equal(t, "title: x", fm)
	require.Equal(t, "body", body)

	fm, body = splitFrontMatter("no front matter")
	require.Empty(t, fm)
	require.Equal(t, "no front matter", body)
}
