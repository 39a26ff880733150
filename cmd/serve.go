package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/conneroisu/italia/internal/server"
	"github.com/conneroisu/italia/internal/watcher"
)

var serveKeys = map[string]string{
	"port":     "server.port",
	"host":     "server.host",
	"examples": "gallery.examples",
	"watch":    "gallery.watch",
	"title":    "gallery.title",
	"lang":     "gallery.lang",
}

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the component gallery with live reload",
	Long: `Start the component gallery. Every component gets a page rendering its
examples; open pages reload when the examples change.

Examples:
  italia serve                          # Built-in examples on :8080
  italia serve -p 3000 --host 0.0.0.0   # Listen on all interfaces
  italia serve -e examples.yml -w       # Merge examples.yml and watch it`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "Port to serve on")
	serveCmd.Flags().String("host", "localhost", "Host to bind to")
	serveCmd.Flags().StringP("examples", "e", "", "YAML file with extra examples")
	serveCmd.Flags().BoolP("watch", "w", false, "Reload the examples file when it changes")
	serveCmd.Flags().String("title", "", "Gallery title")
	serveCmd.Flags().String("lang", "", "Gallery language (BCP 47)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, serveKeys)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// A broken examples file is reported in the gallery instead of
	// stopping the server.
	cat, err := newCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Warn(ctx, err, "Examples file has problems", "file", cfg.Gallery.Examples)
	}

	srv := server.New(*cfg, cat, logger)

	if cfg.Gallery.Watch && cfg.Gallery.Examples != "" {
		ew, err := watcher.WatchExamples(cat, cfg.Gallery.Examples, watcher.DefaultDelay, logger)
		if err != nil {
			return fmt.Errorf("watch %s: %w", cfg.Gallery.Examples, err)
		}
		ew.OnReload(srv.NotifyExamplesReloaded)

		if err := ew.Start(ctx); err != nil {
			return fmt.Errorf("watch %s: %w", cfg.Gallery.Examples, err)
		}
		defer func() {
			if err := ew.Stop(); err != nil {
				logger.Warn(context.Background(), err, "Failed to stop examples watcher")
			}
		}()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Serving %d components at http://%s\n", cat.Registry().Count(), cfg.Server.Address())

	return srv.Start(ctx)
}
