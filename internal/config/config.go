// Package config loads pinwin settings from defaults, an optional YAML file
// and PINWIN_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Poll    PollConfig    `yaml:"poll"`
	Journal JournalConfig `yaml:"journal"`
	Serve   ServeConfig   `yaml:"serve"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
}

// PollConfig holds refresh behavior configuration
type PollConfig struct {
	Interval    time.Duration `yaml:"interval"` // How often windows are re-enumerated
	MinInterval time.Duration `yaml:"-"`
	MaxInterval time.Duration `yaml:"-"`
}

// JournalConfig holds command history configuration
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // Empty means <user config dir>/pinwin/journal.db
}

// ServeConfig holds MCP server configuration
type ServeConfig struct {
	Transport string        `yaml:"transport"` // stdio or streamable-http
	Port      int           `yaml:"port"`
	CacheTTL  time.Duration `yaml:"cache_ttl"` // How long a listed generation is served without a new pass
}

// UIConfig holds terminal UI colors
type UIConfig struct {
	ForegroundBg string `yaml:"foreground_bg"`
	ForegroundFg string `yaml:"foreground_fg"`
	TopmostBg    string `yaml:"topmost_bg"`
	TopmostFg    string `yaml:"topmost_fg"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// Transports accepted by ServeConfig.Transport.
const (
	TransportStdio          = "stdio"
	TransportStreamableHTTP = "streamable-http"
)

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Poll: PollConfig{
			Interval:    500 * time.Millisecond,
			MinInterval: 100 * time.Millisecond,
			MaxInterval: 10 * time.Second,
		},
		Journal: JournalConfig{
			Enabled: false,
			Path:    "",
		},
		Serve: ServeConfig{
			Transport: TransportStdio,
			Port:      8080,
			CacheTTL:  500 * time.Millisecond,
		},
		UI: UIConfig{
			ForegroundBg: "#ff0000",
			ForegroundFg: "#ffffff",
			TopmostBg:    "#ffffe0",
			TopmostFg:    "#000000",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Poll.Interval < c.Poll.MinInterval {
		return fmt.Errorf("poll interval (%v) cannot be less than minimum (%v)",
			c.Poll.Interval, c.Poll.MinInterval)
	}
	if c.Poll.Interval > c.Poll.MaxInterval {
		return fmt.Errorf("poll interval (%v) cannot be greater than maximum (%v)",
			c.Poll.Interval, c.Poll.MaxInterval)
	}

	switch c.Serve.Transport {
	case TransportStdio, TransportStreamableHTTP:
	default:
		return fmt.Errorf("unknown transport %q (supported: %s, %s)",
			c.Serve.Transport, TransportStdio, TransportStreamableHTTP)
	}
	if c.Serve.Port < 1 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve port must be between 1 and 65535, got %d", c.Serve.Port)
	}
	if c.Serve.CacheTTL < 0 {
		return fmt.Errorf("cache ttl cannot be negative")
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// SetPollInterval sets the poll interval with validation
func (c *Config) SetPollInterval(interval time.Duration) error {
	if interval < c.Poll.MinInterval {
		return fmt.Errorf("poll interval cannot be less than %v", c.Poll.MinInterval)
	}
	if interval > c.Poll.MaxInterval {
		return fmt.Errorf("poll interval cannot be greater than %v", c.Poll.MaxInterval)
	}
	c.Poll.Interval = interval
	return nil
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q (supported: debug, info, warn, error)", name)
}

// LogLevel returns the configured slog level, falling back to warn.
func (c *Config) LogLevel() slog.Level {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}
