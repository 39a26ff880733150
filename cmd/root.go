// Package cmd implements the italia command line.
//
// Configuration is read from .italia.yml (or --config), ITALIA_* environment
// variables and flags, in increasing order of precedence. For example
// ITALIA_SERVER_PORT=9000 overrides server.port from the file, and --port
// overrides both.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/italia/internal/catalog"
	"github.com/conneroisu/italia/internal/config"
	"github.com/conneroisu/italia/internal/logging"
	"github.com/conneroisu/italia/internal/registry"
)

var cfgFile string

// rootKeys binds the persistent flags to configuration keys.
var rootKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
}

var rootCmd = &cobra.Command{
	Use:   "italia",
	Short: "Bootstrap Italia components for Go templ",
	Long: `italia renders Bootstrap Italia components as templ components and serves
a live gallery of their examples.

Quick Start:
  italia serve                       Start the gallery on http://localhost:8080
  italia serve -e examples.yml -w    Serve extra examples and reload on change
  italia list                        List components and their examples
  italia render button primary       Print the HTML of one example
  italia audit                       Run the accessibility rules on every example
  italia step --type int32 --value 9 --max 10 --step 2`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is "+config.File+", or ITALIA_CONFIG_FILE)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
}

// loadConfig reads the configuration for cmd with its flags bound to keys.
func loadConfig(cmd *cobra.Command, keys map[string]string) (*config.Config, error) {
	v := viper.New()
	if err := config.Init(v, cfgFile); err != nil {
		return nil, err
	}

	if err := config.BindFlags(v, cmd.Root().PersistentFlags(), rootKeys); err != nil {
		return nil, err
	}
	if err := config.BindFlags(v, cmd.Flags(), keys); err != nil {
		return nil, err
	}

	return config.Load(v)
}

// newLogger builds the logger described by cfg.Log, writing to the
// command's error stream.
func newLogger(cmd *cobra.Command, cfg *config.Config) (logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	return logging.NewLogger(&logging.LoggerConfig{
		Level:  level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	}), nil
}

// newCatalog returns the built-in catalog merged with gallery.examples.
func newCatalog(ctx context.Context, cfg *config.Config, logger logging.Logger) (*catalog.Catalog, error) {
	cat := catalog.New(registry.New(), logger)
	if cfg.Gallery.Examples == "" {
		return cat, nil
	}

	if err := cat.LoadFile(ctx, cfg.Gallery.Examples); err != nil {
		return cat, err
	}

	return cat, nil
}

// setup is the common prologue of every command: configuration, logger
// and catalog.
func setup(cmd *cobra.Command, keys map[string]string) (*config.Config, logging.Logger, *catalog.Catalog, error) {
	cfg, err := loadConfig(cmd, keys)
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	cat, err := newCatalog(cmd.Context(), cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, logger, cat, nil
}
