package worker

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/trknhr/phraseguess/internal/logger"
)

const DefaultDebounce = 500 * time.Millisecond

// Watch syncs a worker again each time its file is written, until ctx is
// done. Bursts of events for one file within debounce cause a single sync.
func Watch(ctx context.Context, debounce time.Duration, syncers ...SyncWorker) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	byPath := make(map[string]SyncWorker, len(syncers))
	dirs := make(map[string]bool)
	for _, s := range syncers {
		abs, err := filepath.Abs(s.Path())
		if err != nil {
			return err
		}
		byPath[abs] = s
		// watch the directory: editors often replace the file instead of writing it
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			path := filepath.Clean(ev.Name)
			if _, ok := byPath[path]; ok {
				logger.Debug("watch: %s %s", ev.Op, path)
				pending[path] = time.Now()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case now := <-ticker.C:
			for path, at := range pending {
				if now.Sub(at) < debounce {
					continue
				}
				delete(pending, path)
				s := byPath[path]
				if err := s.Sync(ctx); err != nil {
					logger.Error("[%s] resync failed: %v", s.Key(), err)
					continue
				}
				logger.Info("[%s] resynced", s.Key())
			}
		}
	}
}
