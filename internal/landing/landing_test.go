package landing

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const logsDoc = `
title: Log Management
description: Log management at any scale, powered by ClickHouse.
hero:
  heading: Log Management at any Scale Powered by ClickHouse
  primary: {label: Start your free trial, href: /teams/}
  image: {src: /img/platform/LogsManagementHero.webp, alt: Logs explorer, expandable: true}
features:
  - title: Fast troubleshooting with Query Builder
    paragraphs:
      - Query your logs quickly.
      - Apply aggregations.
highlights:
  - title: Live Tailing
    description: View logs in real-time.
    image: {src: /img/features/logs/live-logs.webp, alt: Live tail, expandable: true}
stats:
  items:
    - {name: GitHub Stars, value: 17k+}
`

func TestStoreGetAndSlugs(t *testing.T) {
	fsys := fstest.MapFS{
		"landing/log-management.yaml": {Data: []byte(logsDoc)},
		"landing/notes.txt":           {Data: []byte("ignored")},
		"guides/a.md":                 {Data: []byte("---\ntitle: A\n---\n")},
	}
	s := NewStoreFS(fsys)

	slugs, err := s.Slugs()
	require.NoError(t, err)
	require.Equal(t, []string{"log-management"}, slugs)

	p, err := s.Get("Log-Management")
	require.NoError(t, err)
	require.Equal(t, "log-management", p.Slug)
	require.Equal(t, "Log Management at any Scale Powered by ClickHouse", p.Hero.Heading)
	require.True(t, p.Hero.Image.Expandable)
	require.Len(t, p.Features, 1)
	require.Len(t, p.Features[0].Paragraphs, 2)
	require.Equal(t, "17k+", p.Stats.Items[0].Value)

	_, err = s.Get("apm")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestStoreInvalidate(t *testing.T) {
	fsys := fstest.MapFS{"landing/log-management.yaml": {Data: []byte(logsDoc)}}
	s := NewStoreFS(fsys)
	_, err := s.Get("log-management")
	require.NoError(t, err)

	fsys["landing/apm.yml"] = &fstest.MapFile{Data: []byte("title: APM\n")}
	_, err = s.Get("apm")
	require.ErrorIs(t, err, ErrNotFound)

	s.Invalidate()
	p, err := s.Get("apm")
	require.NoError(t, err)
	require.Equal(t, "APM", p.Hero.Heading)
}

func TestParseRejectsBadDocuments(t *testing.T) {
	_, err := Parse([]byte("description: no title\n"))
	require.Error(t, err)

	_, err = Parse([]byte("title: X\nheroes: {}\n"))
	require.Error(t, err)

	p, err := Parse([]byte("title: X\nhero: {subtitle: Sub}\n"))
	require.NoError(t, err)
	require.Equal(t, "Sub", p.Description)
}

func TestStoreSurfacesParseErrors(t *testing.T) {
	s := NewStoreFS(fstest.MapFS{"landing/bad.yaml": {Data: []byte("title: [unterminated\n")}})
	_, err := s.Get("bad")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNotFound))
}
