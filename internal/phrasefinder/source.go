package phrasefinder

import (
	"context"
	"strings"

	"github.com/trknhr/phraseguess/internal/corpus"
	"github.com/trknhr/phraseguess/internal/score"
	"github.com/trknhr/phraseguess/internal/token"
)

const DefaultMinScore = 0.001

// Source builds a pattern-specific corpus from search results.
type Source struct {
	client   Searcher
	minScore float64
	topK     int
}

func NewSource(client Searcher, minScore float64, topK int) *Source {
	return &Source{client: client, minScore: minScore, topK: topK}
}

// BuildQuery places span wildcards on the requested side of pattern.
func BuildQuery(pattern []string, dir score.Direction, span int) string {
	if span < 1 {
		span = 1
	}
	wildcards := strings.TrimSpace(strings.Repeat("? ", span))
	if dir == score.Before {
		return wildcards + " " + token.Join(pattern)
	}
	return token.Join(pattern) + " " + wildcards
}

// Corpus fetches the phrases around pattern, weighted by match count.
// Results scored at or below the minimum are dropped.
func (s *Source) Corpus(ctx context.Context, pattern []string, dir score.Direction, span int) (*corpus.Corpus, error) {
	p := score.NormalizePattern(pattern)
	if len(p) == 0 {
		return nil, score.ErrEmptyPattern
	}
	results, err := s.client.Search(ctx, Query{Text: BuildQuery(p, dir, span), TopK: s.topK})
	if err != nil {
		return nil, err
	}

	phrases := make([]corpus.Phrase, 0, len(results))
	for _, r := range results {
		if r.Score <= s.minScore {
			continue
		}
		var words []string
		for _, tk := range r.Tokens {
			words = append(words, token.Words(tk.Text)...)
		}
		phrases = append(phrases, corpus.Phrase{Words: words, Count: int(r.MatchCount)})
	}
	return corpus.New(phrases), nil
}
