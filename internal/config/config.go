package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/atomicstack/termfolio/internal/app"
	"github.com/atomicstack/termfolio/internal/theme"
	"github.com/atomicstack/termfolio/internal/weather"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the config file that was read, if any.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envPrefix     = "TERMFOLIO"
	envConfigFile = "TERMFOLIO_CONFIG"
	envWeatherKey = "OPENWEATHER_API_KEY"

	defaultAddr      = "127.0.0.1:8080"
	defaultMinWidth  = 20
	defaultMinHeight = 5
)

const (
	keyConfig         = "config"
	keyWidth          = "width"
	keyHeight         = "height"
	keyTheme          = "theme"
	keyTypewriter     = "typewriter"
	keyTypeDelay      = "type-delay"
	keyMinPaneWidth   = "min-pane-width"
	keyMinPaneHeight  = "min-pane-height"
	keyDB             = "db"
	keyWeatherURL     = "weather-url"
	keyWeatherKey     = "weather-api-key"
	keyWeatherTimeout = "weather-timeout"
	keyAddr           = "addr"
	keyLogFile        = "log-file"
	keyTrace          = "trace"
)

// keys lists every setting that may come from a file or the environment.
var keys = []string{
	keyWidth, keyHeight, keyTheme, keyTypewriter, keyTypeDelay,
	keyMinPaneWidth, keyMinPaneHeight, keyDB, keyWeatherURL, keyWeatherKey,
	keyWeatherTimeout, keyAddr, keyLogFile, keyTrace,
}

// RegisterFlags defines the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "path to a YAML, TOML or JSON config file")
	fs.Int(keyWidth, 0, "desired canvas width in cells (0 uses terminal width)")
	fs.Int(keyHeight, 0, "desired canvas height in rows (0 uses terminal height)")
	fs.String(keyTheme, "", "theme name (empty uses the saved preference)")
	fs.Bool(keyTypewriter, true, "type out info and error messages")
	fs.Duration(keyTypeDelay, 20*time.Millisecond, "delay between typed characters")
	fs.Int(keyMinPaneWidth, defaultMinWidth, "smallest pane width in cells when resizing")
	fs.Int(keyMinPaneHeight, defaultMinHeight, "smallest pane height in rows when resizing")
	fs.String(keyDB, defaultDBPath(), "preference database path (empty keeps preferences in memory)")
	fs.String(keyWeatherURL, weather.DefaultEndpoint, "current weather endpoint")
	fs.String(keyWeatherKey, "", "weather API key (falls back to "+envWeatherKey+")")
	fs.Duration(keyWeatherTimeout, weather.DefaultTimeout, "weather request timeout")
	fs.String(keyAddr, defaultAddr, "listen address for serve")
	fs.String(keyLogFile, "", "path to the log file")
	fs.Bool(keyTrace, false, "enable verbose JSON trace logging")
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("termfolio", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return FromFlags(fs, environ)
}

// FromFlags resolves configuration from a parsed FlagSet. Flags that were
// set win over the environment, which wins over the config file.
func FromFlags(fs *pflag.FlagSet, environ []string) (Config, error) {
	env := parseEnv(environ)
	v := viper.New()

	file := envOrDefault(env, envConfigFile, "")
	if f := fs.Lookup(keyConfig); f != nil && f.Changed {
		file = f.Value.String()
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	overrides := make(map[string]interface{})
	for _, key := range keys {
		if value, ok := env[envName(key)]; ok && strings.TrimSpace(value) != "" {
			overrides[key] = value
		}
	}
	if _, ok := overrides[keyWeatherKey]; !ok && !v.IsSet(keyWeatherKey) {
		if value := strings.TrimSpace(env[envWeatherKey]); value != "" {
			overrides[keyWeatherKey] = value
		}
	}
	if err := v.MergeConfigMap(overrides); err != nil {
		return Config{}, fmt.Errorf("apply environment: %w", err)
	}
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	cfg := Config{
		App: app.Config{
			Width:         v.GetInt(keyWidth),
			Height:        v.GetInt(keyHeight),
			Theme:         strings.ToLower(strings.TrimSpace(v.GetString(keyTheme))),
			Typewriter:    v.GetBool(keyTypewriter),
			TypeDelay:     v.GetDuration(keyTypeDelay),
			MinPaneWidth:  v.GetInt(keyMinPaneWidth),
			MinPaneHeight: v.GetInt(keyMinPaneHeight),
			DBPath:        v.GetString(keyDB),
			Addr:          v.GetString(keyAddr),
			Weather: weather.Config{
				Endpoint: v.GetString(keyWeatherURL),
				APIKey:   v.GetString(keyWeatherKey),
				Timeout:  v.GetDuration(keyWeatherTimeout),
			},
		},
		Logging: Logging{
			FilePath: v.GetString(keyLogFile),
			Trace:    v.GetBool(keyTrace),
		},
		File: v.ConfigFileUsed(),
		Args: append([]string(nil), fs.Args()...),
	}
	cfg.Flags = map[string]string{
		keyWidth:          strconv.Itoa(cfg.App.Width),
		keyHeight:         strconv.Itoa(cfg.App.Height),
		keyTheme:          cfg.App.Theme,
		keyTypewriter:     strconv.FormatBool(cfg.App.Typewriter),
		keyTypeDelay:      cfg.App.TypeDelay.String(),
		keyMinPaneWidth:   strconv.Itoa(cfg.App.MinPaneWidth),
		keyMinPaneHeight:  strconv.Itoa(cfg.App.MinPaneHeight),
		keyDB:             cfg.App.DBPath,
		keyWeatherURL:     cfg.App.Weather.Endpoint,
		keyWeatherKey:     redact(cfg.App.Weather.APIKey),
		keyWeatherTimeout: cfg.App.Weather.Timeout.String(),
		keyAddr:           cfg.App.Addr,
		keyLogFile:        cfg.Logging.FilePath,
		keyTrace:          strconv.FormatBool(cfg.Logging.Trace),
	}
	return cfg, nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the configuration is usable.
func Validate(cfg Config) error {
	sizes := []struct {
		name  string
		value int
	}{
		{keyWidth, cfg.App.Width},
		{keyHeight, cfg.App.Height},
		{keyMinPaneWidth, cfg.App.MinPaneWidth},
		{keyMinPaneHeight, cfg.App.MinPaneHeight},
	}
	for _, s := range sizes {
		if s.value < 0 {
			return fmt.Errorf("%s must be >= 0 (got %d)", s.name, s.value)
		}
	}
	if cfg.App.Theme != "" && !theme.Valid(cfg.App.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", cfg.App.Theme, strings.Join(theme.Names(), ", "))
	}
	if cfg.App.TypeDelay <= 0 {
		return fmt.Errorf("%s must be positive (got %s)", keyTypeDelay, cfg.App.TypeDelay)
	}
	if cfg.App.Weather.Timeout <= 0 {
		return fmt.Errorf("%s must be positive (got %s)", keyWeatherTimeout, cfg.App.Weather.Timeout)
	}
	return nil
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "***"
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "termfolio.db"
	}
	return filepath.Join(dir, "termfolio", "prefs.db")
}
