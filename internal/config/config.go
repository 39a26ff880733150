// Package config loads the gallery configuration with Viper from a YAML
// file, environment variables with the ITALIA_ prefix and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	italiaerrors "github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/validation"
	"github.com/conneroisu/italia/pkg/components"
)

// File is the configuration file name looked up in the working directory.
const File = ".italia.yml"

// EnvPrefix prefixes every environment override, e.g. ITALIA_SERVER_PORT.
const EnvPrefix = "ITALIA"

type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Assets  AssetsConfig  `mapstructure:"assets" yaml:"assets"`
	Gallery GalleryConfig `mapstructure:"gallery" yaml:"gallery"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host" validate:"omitempty,hostname_rfc1123|ip"`
	Port int    `mapstructure:"port" yaml:"port" validate:"gte=0,lte=65535"`
	// MaxConnections caps concurrent connections; 0 disables the cap.
	MaxConnections  int           `mapstructure:"max_connections" yaml:"max_connections" validate:"gte=0"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" validate:"gte=0"`
	// AllowedOrigins lists extra websocket origins besides the server's own.
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

type AssetsConfig struct {
	SpriteURL     string `mapstructure:"sprite_url" yaml:"sprite_url" validate:"required,asset_url"`
	StylesheetURL string `mapstructure:"stylesheet_url" yaml:"stylesheet_url" validate:"omitempty,asset_url"`
	ScriptURL     string `mapstructure:"script_url" yaml:"script_url" validate:"omitempty,asset_url"`
}

type GalleryConfig struct {
	// Examples is an optional YAML file adding or overriding examples.
	Examples string `mapstructure:"examples" yaml:"examples" validate:"omitempty,safe_path"`
	Lang     string `mapstructure:"lang" yaml:"lang" validate:"required,bcp47"`
	Title    string `mapstructure:"title" yaml:"title" validate:"required"`
	// Watch reloads the examples file when it changes.
	Watch bool `mapstructure:"watch" yaml:"watch"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}

// Address returns host:port.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			MaxConnections:  256,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Assets: AssetsConfig{
			SpriteURL:     components.DefaultSpriteURL,
			StylesheetURL: "https://cdn.jsdelivr.net/npm/bootstrap-italia@2/dist/css/bootstrap-italia.min.css",
			ScriptURL:     "https://cdn.jsdelivr.net/npm/bootstrap-italia@2/dist/js/bootstrap-italia.bundle.min.js",
		},
		Gallery: GalleryConfig{
			Lang:  "it",
			Title: "Bootstrap Italia",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults registers every key with its default so that environment
// overrides are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.max_connections", d.Server.MaxConnections)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)

	v.SetDefault("assets.sprite_url", d.Assets.SpriteURL)
	v.SetDefault("assets.stylesheet_url", d.Assets.StylesheetURL)
	v.SetDefault("assets.script_url", d.Assets.ScriptURL)

	v.SetDefault("gallery.examples", d.Gallery.Examples)
	v.SetDefault("gallery.lang", d.Gallery.Lang)
	v.SetDefault("gallery.title", d.Gallery.Title)
	v.SetDefault("gallery.watch", d.Gallery.Watch)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Init prepares v: defaults, environment overrides and the configuration
// file. cfgFile overrides the lookup of File in the working directory; a
// missing default file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		cfgFile = v.GetString("config_file")
	}

	if cfgFile != "" {
		if err := validation.ValidatePath(cfgFile); err != nil {
			return italiaerrors.NewConfigError(italiaerrors.ErrCodeConfigInvalid, "invalid config file path").
				WithCause(err).
				WithContext("file", cfgFile)
		}
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(strings.TrimSuffix(File, ".yml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}

		return italiaerrors.NewConfigError(italiaerrors.ErrCodeConfigInvalid, "cannot read config file").
			WithCause(err).
			WithContext("file", cfgFile)
	}

	return nil
}

// BindFlags binds the flags named in keys (flag name -> config key).
// Flags missing from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}

	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, italiaerrors.NewConfigError(italiaerrors.ErrCodeConfigInvalid, "cannot decode configuration").
			WithCause(err)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every section; the first failure is returned as an
// ERR_CONFIG_INVALID error naming the offending key.
func (c *Config) Validate() error {
	if err := validation.Struct("config", italiaerrors.ErrCodeConfigInvalid, c); err != nil {
		var ie *italiaerrors.ItaliaError
		if errors.As(err, &ie) {
			ce := italiaerrors.NewConfigError(ie.Code, ie.Message).WithComponent("config").WithCause(ie.Cause)
			for k, val := range ie.Context {
				ce.WithContext(k, val)
			}
			return ce
		}
		return err
	}

	if c.Gallery.Examples != "" {
		if err := validation.ValidateFileExtension(c.Gallery.Examples, []string{".yml", ".yaml"}); err != nil {
			return italiaerrors.NewConfigError(italiaerrors.ErrCodeConfigInvalid, "gallery.examples must be a YAML file").
				WithComponent("config").
				WithContext("field", "gallery.examples").
				WithCause(err)
		}
	}

	return nil
}
