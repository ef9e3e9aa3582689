package worker

import (
	"context"

	"github.com/trknhr/phraseguess/internal/corpus"
	"github.com/trknhr/phraseguess/internal/store"
)

// CorpusSyncWorker copies one corpus source into the phrase store.
type CorpusSyncWorker struct {
	store  store.PhraseStore
	loader corpus.Loader
	force  bool
}

func NewCorpusSyncWorker(store store.PhraseStore, loader corpus.Loader, force bool) *CorpusSyncWorker {
	return &CorpusSyncWorker{store: store, loader: loader, force: force}
}

func (c *CorpusSyncWorker) Key() string  { return c.loader.Key() }
func (c *CorpusSyncWorker) Path() string { return c.loader.Path() }

func (c *CorpusSyncWorker) NeedsReload() bool {
	if c.force {
		return true
	}
	last, err := c.store.GetLastProcessedMtime(c.Key(), c.Path())
	if err != nil {
		return true // conservative: try to reload if error
	}
	curr, err := c.loader.GetCurrentMtime()
	if err != nil {
		return true // let Sync surface the stat error
	}
	return curr > last
}

func (c *CorpusSyncWorker) Sync(ctx context.Context) error {
	curr, err := c.loader.GetCurrentMtime()
	if err != nil {
		return err
	}
	phrases, err := c.loader.Load(ctx)
	if err != nil {
		return err
	}
	if err := c.store.SavePhrases(c.Key(), phrases); err != nil {
		return err
	}
	return c.store.UpdateMetadata(c.Key(), c.Path(), curr)
}
