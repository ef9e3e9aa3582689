package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/trknhr/phraseguess/internal/logger"
	"golang.org/x/sync/errgroup"
)

type SyncWorker interface {
	Key() string
	Path() string
	NeedsReload() bool
	Sync(ctx context.Context) error
}

const maxParallelSyncs = 4

// Result is what happened to one worker.
type Result struct {
	Key     string
	Skipped bool
	Err     error
}

// RunSyncWorkers syncs every worker that needs it and waits for all of them.
// Failures do not stop the others; they are joined into the returned error.
func RunSyncWorkers(ctx context.Context, syncers ...SyncWorker) ([]Result, error) {
	results := make([]Result, len(syncers))

	var (
		mu     sync.Mutex
		allErr error
	)
	var g errgroup.Group
	g.SetLimit(maxParallelSyncs)

	for i, s := range syncers {
		g.Go(func() error {
			results[i].Key = s.Key()
			if !s.NeedsReload() {
				logger.Debug("[%s] sync skipped (up-to-date)", s.Key())
				results[i].Skipped = true
				return nil
			}
			if err := s.Sync(ctx); err != nil {
				logger.Error("[%s] sync failed: %v", s.Key(), err)
				results[i].Err = err
				mu.Lock()
				allErr = errors.Join(allErr, fmt.Errorf("%s: %w", s.Path(), err))
				mu.Unlock()
				return nil
			}
			logger.Info("[%s] sync done", s.Key())
			return nil
		})
	}
	_ = g.Wait()

	return results, allErr
}
