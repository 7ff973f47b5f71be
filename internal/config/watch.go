package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watch reloads the configuration whenever the file at path is written and
// passes each valid result to fn. Invalid edits are logged and skipped. The
// watch stops when ctx ends.
//
// The parent directory is watched so that editors which replace the file on
// save are still seen.
func Watch(ctx context.Context, path string, fn func(*Config)) error {
	if path == "" {
		path = DefaultPath()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create config watcher")
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return errors.Wrapf(err, "watch %s", filepath.Dir(path))
	}

	target := filepath.Clean(path)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				cfg, err := New(path)
				if err != nil {
					slog.Warn("config: reload failed", "path", path, "error", err)
					continue
				}
				slog.Info("config: reloaded", "path", path)
				fn(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("config: watch error", "error", err)
			}
		}
	}()
	return nil
}
