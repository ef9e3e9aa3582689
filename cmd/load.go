package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/trknhr/phraseguess/internal/corpus"
	"github.com/trknhr/phraseguess/internal/logger"
	"github.com/trknhr/phraseguess/internal/store"
	"github.com/trknhr/phraseguess/internal/worker"
)

func newLoadCmd(opts *rootOptions) *cobra.Command {
	var (
		force bool
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "load [file...]",
		Short: "Store corpus files in the phrase database",
		Long: `Splits each file into phrases and stores them for --source db.
Files that did not change since the last load are skipped unless --force is set.
Without arguments the corpus files from --corpus or the config are loaded.
With --watch the files are loaded again whenever they change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = opts.cfg.Corpus
			}
			if len(paths) == 0 {
				return fmt.Errorf("nothing to load: pass files or --corpus")
			}

			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()
			phraseStore := store.NewSQLPhraseStore(db)

			workers := make([]worker.SyncWorker, len(paths))
			for i, p := range paths {
				workers[i] = worker.NewCorpusSyncWorker(phraseStore, corpus.NewFileLoader(p), force)
			}
			results, syncErr := worker.RunSyncWorkers(cmd.Context(), workers...)

			out := cmd.OutOrStdout()
			for i, r := range results {
				switch {
				case r.Err != nil:
					fmt.Fprintf(out, "failed      %s\n", paths[i])
				case r.Skipped:
					fmt.Fprintf(out, "up to date  %s\n", paths[i])
				default:
					fmt.Fprintf(out, "loaded      %s\n", paths[i])
				}
			}

			st, err := phraseStore.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d phrases (%d occurrences) from %d sources\n", st.Phrases, st.Weight, st.Sources)
			if !watch {
				return syncErr
			}
			if syncErr != nil {
				logger.Warn("initial load: %v", syncErr)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			fmt.Fprintf(out, "watching %d files (Ctrl+C to stop)\n", len(workers))
			return worker.Watch(ctx, worker.DefaultDebounce, workers...)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "reload files even when unchanged")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep running and reload files when they change")
	return cmd
}
