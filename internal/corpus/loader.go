package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/trknhr/phraseguess/internal/logger"
	"golang.org/x/sync/errgroup"
)

// Loader reads phrases from one source and reports enough metadata for the
// sync worker to decide whether the source changed.
type Loader interface {
	Load(ctx context.Context) ([]Phrase, error)
	GetCurrentMtime() (int64, error)
	Path() string
	Key() string
}

// FileLoader reads a UTF-8 text file and splits it into sentences.
type FileLoader struct {
	path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

func (f *FileLoader) Load(ctx context.Context) ([]Phrase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("corpus file %s is not valid UTF-8", f.path)
	}
	phrases := PhrasesFromText(string(content))
	logger.Debug("loaded %d phrases from %s", len(phrases), f.path)
	return phrases, nil
}

func (f *FileLoader) GetCurrentMtime() (int64, error) {
	info, err := os.Stat(f.path)
	if err != nil {
		return 0, err
	}
	return info.ModTime().Unix(), nil
}

func (f *FileLoader) Path() string {
	return f.path
}

func (f *FileLoader) Key() string {
	abs, err := filepath.Abs(f.path)
	if err != nil {
		abs = f.path
	}
	return "corpus:" + abs
}

// LoadAll runs every loader concurrently and concatenates the results in
// loader order. The first failure cancels the rest.
func LoadAll(ctx context.Context, loaders ...Loader) (*Corpus, error) {
	results := make([][]Phrase, len(loaders))

	g, ctx := errgroup.WithContext(ctx)
	for i, l := range loaders {
		g.Go(func() error {
			phrases, err := l.Load(ctx)
			if err != nil {
				return fmt.Errorf("load %s: %w", l.Path(), err)
			}
			results[i] = phrases
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Phrase
	for _, r := range results {
		all = append(all, r...)
	}
	return New(all), nil
}
