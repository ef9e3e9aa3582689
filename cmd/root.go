package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/trknhr/phraseguess/internal/config"
	"github.com/trknhr/phraseguess/internal/corpus"
	"github.com/trknhr/phraseguess/internal/lexicon"
	"github.com/trknhr/phraseguess/internal/logger"
	"github.com/trknhr/phraseguess/internal/phrasefinder"
	"github.com/trknhr/phraseguess/internal/score"
	"github.com/trknhr/phraseguess/internal/store"
)

type rootOptions struct {
	configPath string
	source     string
	corpus     []string
	dbPath     string
	dictionary string
	lemmatize  bool
	before     bool
	span       int
	logLevel   string
	logFile    string

	cfg    *config.Config
	dir    score.Direction
	errOut io.Writer
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "phraseguess",
		Short:         "Guess the words that complete common phrases",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "config file (default: <user config dir>/phraseguess/config.yaml)")
	f.StringVar(&opts.source, "source", config.SourceFile, "phrase source: file, db or phrasefinder")
	f.StringArrayVar(&opts.corpus, "corpus", nil, "corpus text file (repeatable)")
	f.StringVar(&opts.dbPath, "db", "", "phrase database path (default: <user cache dir>/phraseguess/phraseguess.db)")
	f.StringVar(&opts.dictionary, "dictionary", "", "word list; answers with other words are dropped")
	f.BoolVar(&opts.lemmatize, "lemmatize", false, "merge plural forms in rankings")
	f.BoolVar(&opts.before, "before", false, "guess the word before the context instead of after it (overrides direction in the config)")
	f.IntVar(&opts.span, "span", 1, "number of words to guess (\"words in brackets\")")
	f.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn, error or none")
	f.StringVar(&opts.logFile, "log-file", "", "also write logs to this file")

	cmd.AddCommand(
		newPlayCmd(opts),
		newScoreCmd(opts),
		newTopCmd(opts),
		newLoadCmd(opts),
	)
	return cmd
}

func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// init loads the config file and lets explicitly set flags win over it.
func (o *rootOptions) init(cmd *cobra.Command) error {
	path := o.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Debug("no default config path: %v", err)
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = o.source
	}
	if flags.Changed("before") {
		cfg.Direction = score.After.String()
		if o.before {
			cfg.Direction = score.Before.String()
		}
	}
	if flags.Changed("corpus") {
		cfg.Corpus = o.corpus
	}
	if flags.Changed("db") {
		cfg.DBPath = o.dbPath
	}
	if flags.Changed("dictionary") {
		cfg.Dictionary = o.dictionary
	}
	if flags.Changed("lemmatize") {
		cfg.Lemmatize = o.lemmatize
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = o.logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	dir, err := score.ParseDirection(cfg.Direction)
	if err != nil {
		return err
	}
	if o.span < 1 {
		return score.ErrInvalidSpan
	}

	if err := logger.Init(cfg.LogFile, cfg.LogLevel, false); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	o.cfg = cfg
	o.dir = dir
	o.errOut = cmd.ErrOrStderr()
	return nil
}

func (o *rootOptions) direction() score.Direction {
	return o.dir
}

func (o *rootOptions) openDB() (*sql.DB, error) {
	path := o.cfg.DBPath
	if path == "" {
		p, err := store.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	logger.Debug("opening phrase database %s", path)
	return store.Open(path)
}

// loadCorpus reads the configured source once. pattern and span narrow what
// the db and phrasefinder sources fetch; a nil pattern means the whole corpus.
func (o *rootOptions) loadCorpus(ctx context.Context, pattern []string, span int) (*corpus.Corpus, error) {
	switch o.cfg.Source {
	case config.SourceDB:
		db, err := o.openDB()
		if err != nil {
			return nil, err
		}
		defer db.Close()

		s := store.NewSQLPhraseStore(db)
		var phrases []corpus.Phrase
		if pattern == nil {
			phrases, err = s.LoadPhrases(ctx)
		} else {
			phrases, err = s.LoadMatching(ctx, pattern)
		}
		if err != nil {
			return nil, err
		}
		return corpus.New(phrases), nil

	case config.SourcePhraseFinder:
		if pattern == nil {
			return nil, fmt.Errorf("the %s source needs a --context", config.SourcePhraseFinder)
		}
		fc := o.cfg.Finder
		client := phrasefinder.NewHTTPClient(fc.BaseURL, fc.Corpus, fc.Timeout)
		c, err := phrasefinder.NewSource(client, fc.MinScore, fc.TopK).Corpus(ctx, pattern, o.direction(), span)
		if err == nil {
			return c, nil
		}
		fellBack := len(o.cfg.Corpus) > 0
		logger.WarnOnce(o.errOut, err, fellBack)
		if !fellBack {
			return nil, err
		}
		logger.Warn("phrasefinder search failed, using local corpus: %v", err)
		return o.loadFiles(ctx)

	default:
		return o.loadFiles(ctx)
	}
}

func (o *rootOptions) loadFiles(ctx context.Context) (*corpus.Corpus, error) {
	if len(o.cfg.Corpus) == 0 {
		return nil, fmt.Errorf("no corpus files: pass --corpus or set corpus in the config file")
	}
	loaders := make([]corpus.Loader, len(o.cfg.Corpus))
	for i, path := range o.cfg.Corpus {
		loaders[i] = corpus.NewFileLoader(path)
	}
	c, err := corpus.LoadAll(ctx, loaders...)
	if err != nil {
		return nil, err
	}
	logger.Debug("corpus ready: %d phrases, weight %d", c.Len(), c.Weight())
	return c, nil
}

// rankOptions builds the distribution options from config and flags.
func (o *rootOptions) rankOptions(limit int) (score.Options, error) {
	opts := score.Options{
		Direction: o.direction(),
		Span:      o.span,
		Stopwords: lexicon.EnglishStopwords(),
		Limit:     limit,
	}
	var dict score.Dictionary
	if o.cfg.Dictionary != "" {
		words, err := lexicon.LoadDictionary(o.cfg.Dictionary)
		if err != nil {
			return score.Options{}, err
		}
		dict = words
		opts.Dictionary = words
	}
	if o.cfg.Lemmatize {
		opts.Lemmatizer = score.NewSuffixLemmatizer(dict)
	}
	return opts, nil
}
