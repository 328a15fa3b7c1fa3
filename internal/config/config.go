// Package config resolves site settings from defaults, an optional site.yaml, SITE_* environment
// variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides: SITE_CONTENT_DIR, SITE_DEV, ...
const EnvPrefix = "SITE"

type Config struct {
	Addr         string        `mapstructure:"addr"`
	TemplatesDir string        `mapstructure:"templates_dir"`
	PublicDir    string        `mapstructure:"public_dir"`
	ContentDir   string        `mapstructure:"content_dir"`
	CMSBaseURL   string        `mapstructure:"cms_base_url"`
	BaseURL      string        `mapstructure:"base_url"`
	SiteName     string        `mapstructure:"site_name"`
	Dev          bool          `mapstructure:"dev"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
	LogLevel     string        `mapstructure:"log_level"`
	ExportDir    string        `mapstructure:"export_dir"`
	Watch        bool          `mapstructure:"watch"`
}

// New returns a viper instance carrying defaults and environment bindings.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("addr", "")
	v.SetDefault("templates_dir", "templates")
	v.SetDefault("public_dir", "public")
	v.SetDefault("content_dir", "content")
	v.SetDefault("cms_base_url", "")
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("site_name", "SigNoz")
	v.SetDefault("dev", false)
	v.SetDefault("cache_ttl", 5*time.Minute)
	v.SetDefault("log_level", "info")
	v.SetDefault("export_dir", "dist")
	v.SetDefault("watch", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads cfgFile, or site.yaml from the working directory when cfgFile is empty,
// and decodes the merged settings. A missing default file is not an error.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("site")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return Config{}, fmt.Errorf("config: read %s: %w", describe(cfgFile), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Addr = resolveAddr(cfg.Addr)
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.CacheTTL < 0 {
		cfg.CacheTTL = 0
	}
	return cfg, nil
}

// resolveAddr keeps an explicit addr, else listens on $PORT, else :8080.
func resolveAddr(addr string) string {
	if strings.TrimSpace(addr) != "" {
		return addr
	}
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return ":8080"
}

func describe(cfgFile string) string {
	if cfgFile == "" {
		return "site.yaml"
	}
	return cfgFile
}
