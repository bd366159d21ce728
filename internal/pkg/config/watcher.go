package config

import (
	"context"
	"fmt"
	"path/filepath"

	"macnetconfig/internal/pkg/logging"

	"github.com/fsnotify/fsnotify"
)

// Watch reports every valid change of the config file at path to onChange
// until ctx is cancelled. The parent directory is watched rather than the
// file so that editors replacing the file by rename are noticed. Invalid
// changes are logged and skipped.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	logger := logging.WithComponent("config").WithField("path", path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	logger.Debug("Watching config file")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			config, err := Load(path)
			if err != nil {
				logger.WithError(err).Warn("Ignoring unreadable config change")
				continue
			}
			if err := config.Validate(); err != nil {
				logger.WithError(err).Warn("Ignoring invalid config change")
				continue
			}

			logger.Info("Config file changed")
			onChange(config)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.WithError(err).Warn("Config watcher error")
		}
	}
}
