package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "content", cfg.ContentDir)
	require.Equal(t, 5*time.Minute, cfg.CacheTTL)
	require.False(t, cfg.Dev)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.yaml"), []byte(
		"site_name: Docs\ncache_ttl: 30s\nbase_url: https://signoz.io/\ncontent_dir: fixtures\n"), 0o644))
	t.Setenv("SITE_CONTENT_DIR", "from-env")
	t.Setenv("SITE_DEV", "true")
	t.Setenv("PORT", "9090")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	require.Equal(t, "Docs", cfg.SiteName)
	require.Equal(t, 30*time.Second, cfg.CacheTTL)
	require.Equal(t, "https://signoz.io", cfg.BaseURL)
	require.Equal(t, "from-env", cfg.ContentDir)
	require.True(t, cfg.Dev)
	require.Equal(t, ":9090", cfg.Addr)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
