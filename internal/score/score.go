// Package score computes how often a word follows (or precedes) a context
// pattern in a phrase corpus.
package score

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/trknhr/phraseguess/internal/corpus"
	"github.com/trknhr/phraseguess/internal/token"
)

var (
	ErrNoData       = errors.New("no data")
	ErrEmptyPattern = errors.New("context pattern is empty")
	ErrEmptyTarget  = errors.New("target word is empty")
	ErrInvalidSpan  = errors.New("span must be at least 1")
)

// NoDataError reports a pattern that was never seen with a neighbour of the
// requested length. It matches ErrNoData.
type NoDataError struct {
	Pattern   []string
	Direction Direction
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data for %q", token.Join(e.Pattern))
}

func (e *NoDataError) Unwrap() error { return ErrNoData }

// Direction says on which side of the pattern the target sits.
type Direction int

const (
	After Direction = iota
	Before
)

func (d Direction) String() string {
	if d == Before {
		return "before"
	}
	return "after"
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "after", "":
		return After, nil
	case "b", "before":
		return Before, nil
	}
	return After, fmt.Errorf("unknown direction %q (want before or after)", s)
}

// Dictionary limits which words may appear in a distribution.
type Dictionary interface {
	Contains(word string) bool
}

// StopwordSet flags function words in a distribution.
type StopwordSet interface {
	IsStopword(word string) bool
}

// Options tune Distribution. The zero value ranks single words after the
// pattern with no filtering.
type Options struct {
	Direction  Direction
	Span       int
	Lemmatizer Lemmatizer
	Dictionary Dictionary
	Stopwords  StopwordSet
	Limit      int
}

type Suggestion struct {
	Text     string
	Score    float64
	Count    int
	Stopword bool
}

// Scorer reads an immutable corpus. Every call rescans it; nothing is cached.
type Scorer struct {
	corpus *corpus.Corpus
}

func NewScorer(c *corpus.Corpus) *Scorer {
	return &Scorer{corpus: c}
}

func (s *Scorer) Corpus() *corpus.Corpus {
	return s.corpus
}

// Score returns the percentage of occurrences of pattern that are directly
// followed by target.
func (s *Scorer) Score(pattern []string, target string) (float64, error) {
	return s.ScoreIn(pattern, target, After)
}

// ScoreIn is Score with an explicit side. A multi-word target is compared
// against the span of the same length next to the pattern.
func (s *Scorer) ScoreIn(pattern []string, target string, dir Direction) (float64, error) {
	p := NormalizePattern(pattern)
	if len(p) == 0 {
		return 0, ErrEmptyPattern
	}
	t := token.Words(target)
	if len(t) == 0 {
		return 0, ErrEmptyTarget
	}

	var matched, total int
	s.scan(p, dir, len(t), func(neighbour []string, weight int) {
		total += weight
		if equalWords(neighbour, t) {
			matched += weight
		}
	})
	if total == 0 {
		return 0, &NoDataError{Pattern: p, Direction: dir}
	}
	return float64(matched) / float64(total) * 100, nil
}

// Occurrences is the weighted number of times pattern appears with a
// neighbour span of the given length on side dir.
func (s *Scorer) Occurrences(pattern []string, dir Direction, span int) (int, error) {
	p := NormalizePattern(pattern)
	if len(p) == 0 {
		return 0, ErrEmptyPattern
	}
	if span < 1 {
		return 0, ErrInvalidSpan
	}
	total := 0
	s.scan(p, dir, span, func(_ []string, weight int) { total += weight })
	return total, nil
}

// Distribution ranks every neighbour span seen next to pattern. Entries are
// ordered by score descending, then text ascending.
func (s *Scorer) Distribution(pattern []string, opts Options) ([]Suggestion, error) {
	p := NormalizePattern(pattern)
	if len(p) == 0 {
		return nil, ErrEmptyPattern
	}
	span := opts.Span
	if span == 0 {
		span = 1
	}
	if span < 1 {
		return nil, ErrInvalidSpan
	}

	counts := make(map[string]int)
	total := 0
	s.scan(p, opts.Direction, span, func(neighbour []string, weight int) {
		if opts.Dictionary != nil && !allContained(opts.Dictionary, neighbour) {
			return
		}
		key := neighbour
		if opts.Lemmatizer != nil {
			key = make([]string, len(neighbour))
			for i, w := range neighbour {
				key[i] = opts.Lemmatizer.Lemma(w)
			}
		}
		counts[token.Join(key)] += weight
		total += weight
	})
	if total == 0 {
		return nil, &NoDataError{Pattern: p, Direction: opts.Direction}
	}

	results := make([]Suggestion, 0, len(counts))
	for text, count := range counts {
		results = append(results, Suggestion{
			Text:     text,
			Score:    float64(count) / float64(total) * 100,
			Count:    count,
			Stopword: opts.Stopwords != nil && allStopwords(opts.Stopwords, text),
		})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Text < results[j].Text
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results, nil
}

// NormalizePattern normalizes pattern words. Elements holding several words
// ("much of a") are split.
func NormalizePattern(pattern []string) []string {
	return token.Words(strings.Join(pattern, " "))
}

func (s *Scorer) scan(p []string, dir Direction, span int, fn func(neighbour []string, weight int)) {
	s.corpus.Each(func(ph corpus.Phrase) {
		words := ph.Words
		for i := 0; i+len(p) <= len(words); i++ {
			if !equalWords(words[i:i+len(p)], p) {
				continue
			}
			switch dir {
			case Before:
				if i-span < 0 {
					continue
				}
				fn(words[i-span:i], ph.Count)
			default:
				end := i + len(p)
				if end+span > len(words) {
					continue
				}
				fn(words[end:end+span], ph.Count)
			}
		}
	})
}

func equalWords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func allContained(d Dictionary, words []string) bool {
	for _, w := range words {
		if !d.Contains(w) {
			return false
		}
	}
	return true
}

func allStopwords(s StopwordSet, text string) bool {
	for _, w := range strings.Fields(text) {
		if !s.IsStopword(w) {
			return false
		}
	}
	return true
}
