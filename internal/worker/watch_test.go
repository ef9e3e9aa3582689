package worker_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/phraseguess/internal/worker"
)

type countingWorker struct {
	path  string
	syncs atomic.Int32
}

func (c *countingWorker) Key() string       { return "test:" + c.path }
func (c *countingWorker) Path() string      { return c.path }
func (c *countingWorker) NeedsReload() bool { return true }
func (c *countingWorker) Sync(ctx context.Context) error {
	c.syncs.Add(1)
	return nil
}

func TestWatch_ResyncsWrittenFile(t *testing.T) {
	dir := t.TempDir()
	watched := &countingWorker{path: filepath.Join(dir, "watched.txt")}
	other := &countingWorker{path: filepath.Join(dir, "other.txt")}
	require.NoError(t, os.WriteFile(watched.path, []byte("a hissy fit"), 0644))
	require.NoError(t, os.WriteFile(other.path, []byte("much of a muchness"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Watch(ctx, 40*time.Millisecond, watched) }()

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(watched.path, []byte("a hissy fit. a hissy fit."), 0644))
	}
	require.NoError(t, os.WriteFile(other.path, []byte("changed"), 0644))

	assert.Eventually(t, func() bool { return watched.syncs.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, int32(1), watched.syncs.Load(), "burst of writes should coalesce")
	assert.Equal(t, int32(0), other.syncs.Load())
}

func TestWatch_MissingDirectory(t *testing.T) {
	missing := &countingWorker{path: filepath.Join(t.TempDir(), "gone", "corpus.txt")}
	err := worker.Watch(context.Background(), time.Millisecond, missing)
	assert.Error(t, err)
}
