// Package config manages the gateway's configuration using koanf/v2.
//
// Supports a YAML file plus environment variable overrides, merged on
// top of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the complete gateway configuration.
type Config struct {
	Listen  ListenConfig  `koanf:"listen"`
	Log     LogConfig     `koanf:"log"`
	Login   LoginConfig   `koanf:"login"`
	Status  StatusConfig  `koanf:"status"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// ListenConfig holds the TCP listener configuration.
type ListenConfig struct {
	// Addr is the listen address, e.g. "127.0.0.1:25565".
	Addr string `koanf:"addr"`
}

// LogConfig holds the logging configuration.
type LogConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `koanf:"level"`
	// Format is the log output format: "json" or "text".
	Format string `koanf:"format"`
}

// LoginConfig holds the login-state dispatcher's configuration.
type LoginConfig struct {
	// CompressionThreshold is the value announced via LoginCompression
	// once a login completes successfully.
	CompressionThreshold int32 `koanf:"compression_threshold"`
}

// StatusConfig holds the status response configuration.
type StatusConfig struct {
	// MOTD is the description text the initial Description snapshot
	// carries in the status response.
	MOTD string `koanf:"motd"`
}

// MetricsConfig holds the Prometheus metrics endpoint configuration.
type MetricsConfig struct {
	// Addr is the HTTP listen address for the metrics endpoint.
	Addr string `koanf:"addr"`
	// Path is the URL path serving the metrics endpoint.
	Path string `koanf:"path"`
}

// DefaultConfig returns a Config populated with sensible defaults,
// matching spec.md §6's stated default listen address and compression
// threshold.
func DefaultConfig() *Config {
	return &Config{
		Listen: ListenConfig{
			Addr: "127.0.0.1:25565",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Login: LoginConfig{
			CompressionThreshold: 256,
		},
		Status: StatusConfig{
			MOTD: "Maintenance",
		},
		Metrics: MetricsConfig{
			Addr: ":9100",
			Path: "/metrics",
		},
	}
}

// envPrefix is the environment variable prefix for gateway configuration.
// Variables are named GATEWAY_<section>_<key>, e.g. GATEWAY_LISTEN_ADDR.
const envPrefix = "GATEWAY_"

// Load reads configuration from a YAML file at path (if path is
// non-empty), overlays environment variable overrides, and merges on
// top of DefaultConfig(). Missing fields inherit defaults. A missing
// file at a non-empty path is an error; an empty path skips the file
// layer entirely and runs on defaults plus environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := DefaultConfig()
	if err := loadDefaults(k, defaults); err != nil {
		return nil, fmt.Errorf("load config defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config from %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config from %s: %w", path, err)
	}

	return cfg, nil
}

// envKeyMapper transforms GATEWAY_LISTEN_ADDR -> listen.addr. Only the
// first underscore separates section from key, so
// GATEWAY_LOGIN_COMPRESSION_THRESHOLD -> login.compression_threshold.
func envKeyMapper(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.Replace(s, "_", ".", 1)
}

// loadDefaults marshals the default config into koanf as the base layer.
func loadDefaults(k *koanf.Koanf, defaults *Config) error {
	defaultMap := map[string]any{
		"listen.addr":              defaults.Listen.Addr,
		"log.level":                defaults.Log.Level,
		"log.format":               defaults.Log.Format,
		"login.compression_threshold": defaults.Login.CompressionThreshold,
		"status.motd":              defaults.Status.MOTD,
		"metrics.addr":             defaults.Metrics.Addr,
		"metrics.path":             defaults.Metrics.Path,
	}

	for key, val := range defaultMap {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

// Validation errors.
var (
	// ErrEmptyListenAddr indicates the listen address is empty.
	ErrEmptyListenAddr = errors.New("listen.addr must not be empty")

	// ErrInvalidCompressionThreshold indicates a negative compression
	// threshold was configured; negative thresholds have no meaning
	// under spec.md §4.6 other than "disabled", which this gateway only
	// expresses via EnableCompression never being called.
	ErrInvalidCompressionThreshold = errors.New("login.compression_threshold must be >= 0")
)

// Validate checks the configuration for logical errors.
func Validate(cfg *Config) error {
	if cfg.Listen.Addr == "" {
		return ErrEmptyListenAddr
	}
	if cfg.Login.CompressionThreshold < 0 {
		return ErrInvalidCompressionThreshold
	}
	return nil
}

// ParseLogLevel maps a configuration log level string to the
// corresponding slog.Level. Unknown values default to slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
