package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/solacecommunity/feedstreams/errors"
)

// DefaultEnvPrefix is the prefix for environment variable overrides.
const DefaultEnvPrefix = "FEEDSTREAMS"

// Config is the complete application configuration.
type Config struct {
	LogLevel string         `json:"log_level,omitempty" yaml:"log_level"`
	NATS     NATSConfig     `json:"nats"                yaml:"nats"`
	Feeds    FeedsConfig    `json:"feeds"               yaml:"feeds"`
	Gateway  GatewayConfig  `json:"gateway,omitempty"   yaml:"gateway"`
	Metrics  MetricsConfig  `json:"metrics,omitempty"   yaml:"metrics"`
	EventLog EventLogConfig `json:"event_log,omitempty" yaml:"event_log"`
}

// NATSConfig defines the broker connection settings.
type NATSConfig struct {
	URL           string        `json:"url,omitempty"            yaml:"url"`
	Username      string        `json:"username,omitempty"       yaml:"username"`
	Password      string        `json:"password,omitempty"       yaml:"password"`
	Token         string        `json:"token,omitempty"          yaml:"token"`
	MaxReconnects int           `json:"max_reconnects,omitempty" yaml:"max_reconnects"`
	ReconnectWait time.Duration `json:"reconnect_wait,omitempty" yaml:"reconnect_wait"`
	Timeout       time.Duration `json:"timeout,omitempty"        yaml:"timeout"`
}

// FeedsConfig locates the feed definition files.
type FeedsConfig struct {
	Dir      string `json:"dir"                 yaml:"dir"`
	StartAll bool   `json:"start_all,omitempty" yaml:"start_all"`
}

// GatewayConfig defines the WebSocket gateway settings.
type GatewayConfig struct {
	Enabled      bool          `json:"enabled"                 yaml:"enabled"`
	Addr         string        `json:"addr,omitempty"          yaml:"addr"`
	Path         string        `json:"path,omitempty"          yaml:"path"`
	PingInterval time.Duration `json:"ping_interval,omitempty" yaml:"ping_interval"`
}

// MetricsConfig defines the Prometheus endpoint settings.
type MetricsConfig struct {
	Enabled bool   `json:"enabled"        yaml:"enabled"`
	Addr    string `json:"addr,omitempty" yaml:"addr"`
	Path    string `json:"path,omitempty" yaml:"path"`
}

// EventLogConfig bounds the in-memory event log.
type EventLogConfig struct {
	Capacity int `json:"capacity,omitempty" yaml:"capacity"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		NATS: NATSConfig{
			URL:           "nats://localhost:4222",
			MaxReconnects: -1,
			ReconnectWait: 2 * time.Second,
			Timeout:       5 * time.Second,
		},
		Feeds: FeedsConfig{
			Dir: "feeds",
		},
		Gateway: GatewayConfig{
			Enabled:      true,
			Addr:         ":8081",
			Path:         "/ws",
			PingInterval: 30 * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Addr:    ":9090",
			Path:    "/metrics",
		},
		EventLog: EventLogConfig{
			Capacity: 100,
		},
	}
}

// Validate fails fast on settings the process cannot start with.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}

	if c.NATS.URL == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate", "nats.url is required")
	}
	if c.Feeds.Dir == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate", "feeds.dir is required")
	}
	if c.Gateway.Enabled && c.Gateway.Addr == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate", "gateway.addr is required when the gateway is enabled")
	}
	if c.Metrics.Enabled && c.Metrics.Addr == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate", "metrics.addr is required when metrics are enabled")
	}
	if c.EventLog.Capacity < 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate", "event_log.capacity cannot be negative")
	}
	return nil
}

// Loader loads configuration from a file with environment overrides
// layered on top.
type Loader struct {
	envPrefix string
}

// NewLoader builds a loader with the default environment prefix.
func NewLoader() *Loader {
	return &Loader{envPrefix: DefaultEnvPrefix}
}

// WithEnvPrefix overrides the environment variable prefix, mainly for
// tests.
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// Load reads the file at path (JSON or YAML by extension), fills in
// defaults, applies environment overrides, and validates. An empty path
// yields the defaults plus overrides.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := l.loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	l.applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapInvalid(err, "Loader", "loadFile", "read "+path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return errors.WrapInvalid(err, "Loader", "loadFile", "parse YAML "+path)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return errors.WrapInvalid(err, "Loader", "loadFile", "parse JSON "+path)
		}
	default:
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Loader", "loadFile",
			fmt.Sprintf("unsupported config extension %q (want .json, .yaml, or .yml)", ext))
	}
	return nil
}

// applyEnvOverrides layers environment variables over the loaded
// configuration. Unset variables leave the file values alone.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if val := l.env("LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}

	if val := l.env("NATS_URL"); val != "" {
		cfg.NATS.URL = val
	}
	if val := l.env("NATS_USERNAME"); val != "" {
		cfg.NATS.Username = val
	}
	if val := l.env("NATS_PASSWORD"); val != "" {
		cfg.NATS.Password = val
	}
	if val := l.env("NATS_TOKEN"); val != "" {
		cfg.NATS.Token = val
	}

	if val := l.env("FEEDS_DIR"); val != "" {
		cfg.Feeds.Dir = val
	}
	if val := l.env("FEEDS_START_ALL"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Feeds.StartAll = b
		}
	}

	if val := l.env("GATEWAY_ADDR"); val != "" {
		cfg.Gateway.Addr = val
	}
	if val := l.env("METRICS_ADDR"); val != "" {
		cfg.Metrics.Addr = val
	}

	if val := l.env("EVENTLOG_CAPACITY"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.EventLog.Capacity = n
		}
	}
}

func (l *Loader) env(key string) string {
	return os.Getenv(l.envPrefix + "_" + key)
}

// String returns an indented JSON rendering with credentials masked.
func (c *Config) String() string {
	clone := *c
	if clone.NATS.Password != "" {
		clone.NATS.Password = "****"
	}
	if clone.NATS.Token != "" {
		clone.NATS.Token = "****"
	}
	data, _ := json.MarshalIndent(&clone, "", "  ")
	return string(data)
}
