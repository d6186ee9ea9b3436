package overrides

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Quiet period after the last file event before reloading. Editors often
// write a file in several steps.
const reloadDebounce = 200 * time.Millisecond

// Reloads the store whenever one of its source files changes, until ctx is
// cancelled.
//
// The parent directories are watched rather than the files themselves so
// that files replaced by rename, or created after startup, are noticed.
// Failed reloads are logged and the previous snapshot is kept.
func (s *Store) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReload, err)
	}
	defer w.Close()

	files := s.watchedFiles()
	dirs := make(map[string]bool)
	for f := range files {
		dir := filepath.Dir(f)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			slog.Warn("cannot watch directory", "path", dir, "error", err)
			continue
		}
		dirs[dir] = true
	}

	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !files[filepath.Clean(event.Name)] {
				continue
			}
			slog.Debug("source changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(reloadDebounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)

		case <-timer.C:
			if _, err := s.Reload(); err != nil {
				slog.Error("keeping previous override registry", "error", err)
			}
		}
	}
}

// Returns the cleaned set of source files.
func (s *Store) watchedFiles() map[string]bool {
	files := make(map[string]bool)
	if s.sources.Settings != "" {
		files[filepath.Clean(s.sources.Settings)] = true
	}
	for _, r := range s.sources.Registries {
		files[filepath.Clean(r)] = true
	}
	return files
}
