package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"interval too low", func(c *Config) { c.Poll.Interval = 50 * time.Millisecond }, "less than minimum"},
		{"interval too high", func(c *Config) { c.Poll.Interval = time.Minute }, "greater than maximum"},
		{"bad transport", func(c *Config) { c.Serve.Transport = "sse" }, "unknown transport"},
		{"http transport", func(c *Config) { c.Serve.Transport = TransportStreamableHTTP }, ""},
		{"port zero", func(c *Config) { c.Serve.Port = 0 }, "serve port"},
		{"port too high", func(c *Config) { c.Serve.Port = 70000 }, "serve port"},
		{"negative ttl", func(c *Config) { c.Serve.CacheTTL = -time.Second }, "cache ttl"},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "unknown log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PINWIN_POLL_INTERVAL", "250")
	t.Setenv("PINWIN_JOURNAL", "true")
	t.Setenv("PINWIN_JOURNAL_PATH", "/tmp/j.db")
	t.Setenv("PINWIN_LOG_LEVEL", "debug")

	cfg := Default()
	LoadFromEnv(cfg)

	if cfg.Poll.Interval != 250*time.Millisecond {
		t.Errorf("interval: got %v, want 250ms", cfg.Poll.Interval)
	}
	if !cfg.Journal.Enabled || cfg.Journal.Path != "/tmp/j.db" {
		t.Errorf("journal: got %+v", cfg.Journal)
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("level: got %v, want debug", cfg.LogLevel())
	}
}

func TestLoadFromEnv_IgnoresInvalid(t *testing.T) {
	t.Setenv("PINWIN_POLL_INTERVAL", "5") // below minimum
	t.Setenv("PINWIN_JOURNAL", "maybe")
	t.Setenv("PINWIN_LOG_LEVEL", "loud")

	cfg := Default()
	LoadFromEnv(cfg)

	want := Default()
	if cfg.Poll.Interval != want.Poll.Interval || cfg.Journal.Enabled || cfg.Log.Level != want.Log.Level {
		t.Errorf("invalid values should be ignored, got %+v", cfg)
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "poll:\n  interval: 250ms\nui:\n  topmost_bg: \"#00ff00\"\njournal:\n  enabled: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Poll.Interval != 250*time.Millisecond {
		t.Errorf("interval: got %v", cfg.Poll.Interval)
	}
	if cfg.Poll.MinInterval != 100*time.Millisecond {
		t.Errorf("min interval should keep its default, got %v", cfg.Poll.MinInterval)
	}
	if cfg.UI.TopmostBg != "#00ff00" || cfg.UI.ForegroundBg != "#ff0000" {
		t.Errorf("ui: got %+v", cfg.UI)
	}
	if !cfg.Journal.Enabled {
		t.Error("journal should be enabled")
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing explicit config file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("poll: [unclosed"), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestNew_RejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("serve:\n  transport: carrier-pigeon\n"), 0o644)
	if _, err := New(path); err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("got %v, want invalid configuration", err)
	}
}

func TestJournalPath(t *testing.T) {
	cfg := Default()
	if cfg.JournalPath() != DefaultJournalPath() {
		t.Errorf("got %q, want default", cfg.JournalPath())
	}
	cfg.Journal.Path = "/var/tmp/pinwin.db"
	if cfg.JournalPath() != "/var/tmp/pinwin.db" {
		t.Errorf("got %q", cfg.JournalPath())
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("poll:\n  interval: 500ms\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan *Config, 4)
	if err := Watch(ctx, path, func(c *Config) { got <- c }); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("poll:\n  interval: 2s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-got:
			if cfg.Poll.Interval == 2*time.Second {
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}
