package config

import (
	"os"
	"strconv"
	"time"
)

// LoadFromEnv loads configuration from environment variables
// Environment variables override file and default values
func LoadFromEnv(cfg *Config) {
	if pollInterval := os.Getenv("PINWIN_POLL_INTERVAL"); pollInterval != "" {
		if ms, err := strconv.Atoi(pollInterval); err == nil && ms > 0 {
			interval := time.Duration(ms) * time.Millisecond
			if interval >= cfg.Poll.MinInterval && interval <= cfg.Poll.MaxInterval {
				cfg.Poll.Interval = interval
			}
		}
	}

	if journal := os.Getenv("PINWIN_JOURNAL"); journal != "" {
		if val, err := strconv.ParseBool(journal); err == nil {
			cfg.Journal.Enabled = val
		}
	}

	if journalPath := os.Getenv("PINWIN_JOURNAL_PATH"); journalPath != "" {
		cfg.Journal.Path = journalPath
	}

	if level := os.Getenv("PINWIN_LOG_LEVEL"); level != "" {
		if _, err := ParseLevel(level); err == nil {
			cfg.Log.Level = level
		}
	}
}

// LogFile returns the path the terminal UI writes its log to, or "" to
// discard it.
func LogFile() string {
	return os.Getenv("PINWIN_LOG_FILE")
}
