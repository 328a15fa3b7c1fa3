package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harshbutfairx/signoz-web/internal/config"
	"github.com/harshbutfairx/signoz-web/internal/content"
	"github.com/harshbutfairx/signoz-web/internal/landing"
	"github.com/harshbutfairx/signoz-web/internal/logging"
	"github.com/harshbutfairx/signoz-web/internal/markup"
	"github.com/harshbutfairx/signoz-web/internal/seo"
)

var (
	cfgFile  string
	settings = config.New()
	cfg      config.Config
)

var rootCmd = &cobra.Command{
	Use:           "web",
	Short:         "Marketing site and resource center",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render every route to static files",
	Long: `Render every route to static files.

The export is a non-interactive snapshot: listings keep their topic and page
links but drop the search box, and images do not zoom.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportSite(cmd.Context(), newRouter(logger), cfg.ExportDir, newProgress(cmd.ErrOrStderr()))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./site.yaml)")
	rootCmd.PersistentFlags().String("templates", "templates", "templates directory")
	rootCmd.PersistentFlags().String("public", "public", "public assets directory")
	rootCmd.PersistentFlags().String("content", "content", "content directory")
	rootCmd.PersistentFlags().Bool("dev", false, "reparse templates per request and disable caching")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")
	serveCmd.Flags().String("addr", "", "HTTP listen address (default :$PORT or :8080)")
	serveCmd.Flags().Bool("watch", false, "invalidate content caches when files change")
	exportCmd.Flags().String("out", "dist", "output directory")

	pf := rootCmd.PersistentFlags()
	if err := errors.Join(
		settings.BindPFlag("templates_dir", pf.Lookup("templates")),
		settings.BindPFlag("public_dir", pf.Lookup("public")),
		settings.BindPFlag("content_dir", pf.Lookup("content")),
		settings.BindPFlag("dev", pf.Lookup("dev")),
		settings.BindPFlag("log_level", pf.Lookup("log-level")),
		settings.BindPFlag("addr", serveCmd.Flags().Lookup("addr")),
		settings.BindPFlag("watch", serveCmd.Flags().Lookup("watch")),
		settings.BindPFlag("export_dir", exportCmd.Flags().Lookup("out")),
	); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(serveCmd, exportCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and builds the package-level dependencies handlers use.
func initializeApp() error {
	loaded, err := config.Load(settings, cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	l, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	logger = l

	templatesDir = cfg.TemplatesDir
	publicDir = cfg.PublicDir
	devMode = cfg.Dev
	site = seo.Site{Name: cfg.SiteName, BaseURL: cfg.BaseURL, Twitter: "@SigNozHQ", Image: "/assets/img/og-default.svg"}

	landings = landing.NewStore(cfg.ContentDir)
	contentSrc = content.NewSource(content.Options{
		Dir:      cfg.ContentDir,
		BaseURL:  cfg.CMSBaseURL,
		CacheTTL: cfg.CacheTTL,
		Logger:   logger.Named("content"),
		Renderer: markup.NewRenderer(),
		OnChange: landings.Invalidate,
	})

	if !devMode {
		// Parse templates once in production so broken templates fail at startup
		set, err := parseTemplates()
		if err != nil {
			return fmt.Errorf("parse templates: %w", err)
		}
		tmplMu.Lock()
		tmplCache = set
		tmplMu.Unlock()
	}
	return nil
}

func serve(ctx context.Context) error {
	defer func() { _ = logger.Sync() }()

	if cfg.Watch || devMode {
		if err := contentSrc.Watch(ctx); err != nil {
			logger.Warn("content watch disabled", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web listening", zap.String("addr", cfg.Addr), zap.Bool("dev", devMode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
