// Package game runs guessing rounds on top of the frequency scorer.
package game

import (
	"errors"
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/trknhr/phraseguess/internal/corpus"
	"github.com/trknhr/phraseguess/internal/logger"
	"github.com/trknhr/phraseguess/internal/score"
	"github.com/trknhr/phraseguess/internal/token"
)

var (
	ErrNoPlayableContext = errors.New("no context in the corpus occurs often enough to play")
	ErrRoundOver         = errors.New("round is over")
	ErrAlreadyGuessed    = errors.New("word already guessed this round")
	ErrNotAWord          = errors.New("guess must be a single word")
)

const blank = "____"

type Settings struct {
	ContextLength  int
	Direction      score.Direction
	MinOccurrences int
	MaxGuesses     int
}

func (s Settings) withDefaults() Settings {
	if s.ContextLength < 1 {
		s.ContextLength = 2
	}
	if s.MinOccurrences < 1 {
		s.MinOccurrences = 1
	}
	if s.MaxGuesses < 1 {
		s.MaxGuesses = 3
	}
	return s
}

type Game struct {
	scorer   *score.Scorer
	settings Settings
	rng      *rand.Rand

	contexts [][]string
	points   int
	rounds   int
}

func New(scorer *score.Scorer, settings Settings, src rand.Source) *Game {
	return &Game{
		scorer:   scorer,
		settings: settings.withDefaults(),
		rng:      rand.New(src),
	}
}

func (g *Game) Points() int { return g.points }
func (g *Game) Rounds() int { return g.rounds }

// NewRound picks a random context that occurs at least MinOccurrences times.
func (g *Game) NewRound() (*Round, error) {
	if g.contexts == nil {
		g.contexts = playableContexts(g.scorer.Corpus(), g.settings)
		logger.Debug("found %d playable contexts", len(g.contexts))
	}
	if len(g.contexts) == 0 {
		return nil, ErrNoPlayableContext
	}

	pattern := g.contexts[g.rng.IntN(len(g.contexts))]
	answers, err := g.scorer.Distribution(pattern, score.Options{Direction: g.settings.Direction})
	if err != nil {
		return nil, err
	}
	g.rounds++
	return &Round{
		game:    g,
		Pattern: pattern,
		answers: answers,
	}, nil
}

// playableContexts lists every n-gram with enough neighbours, sorted so that
// a seeded game is reproducible.
func playableContexts(c *corpus.Corpus, s Settings) [][]string {
	n := s.ContextLength
	counts := make(map[string]int)
	c.Each(func(p corpus.Phrase) {
		for i := 0; i+n <= len(p.Words); i++ {
			if s.Direction == score.Before && i == 0 {
				continue
			}
			if s.Direction == score.After && i+n == len(p.Words) {
				continue
			}
			counts[token.Join(p.Words[i:i+n])] += p.Count
		}
	})

	keys := make([]string, 0, len(counts))
	for k, v := range counts {
		if v >= s.MinOccurrences {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([][]string, len(keys))
	for i, k := range keys {
		out[i] = strings.Fields(k)
	}
	return out
}

type Guess struct {
	Word   string
	Score  float64
	Rank   int // 1-based position among the answers, 0 if never seen
	Points int
}

type Round struct {
	game    *Game
	Pattern []string
	answers []score.Suggestion
	guesses []Guess
	over    bool
	points  int
}

// Prompt renders the context with a blank on the guessing side.
func (r *Round) Prompt() string {
	if r.game.settings.Direction == score.Before {
		return blank + " " + token.Join(r.Pattern)
	}
	return token.Join(r.Pattern) + " " + blank
}

func (r *Round) Guess(word string) (Guess, error) {
	if r.over {
		return Guess{}, ErrRoundOver
	}
	words := token.Words(word)
	if len(words) != 1 {
		return Guess{}, ErrNotAWord
	}
	w := words[0]
	for _, prev := range r.guesses {
		if prev.Word == w {
			return Guess{}, ErrAlreadyGuessed
		}
	}

	sc, err := r.game.scorer.ScoreIn(r.Pattern, w, r.game.settings.Direction)
	if err != nil {
		return Guess{}, err
	}
	g := Guess{Word: w, Score: sc, Points: int(math.Round(sc))}
	for i, a := range r.answers {
		if a.Text == w {
			g.Rank = i + 1
			break
		}
	}

	r.guesses = append(r.guesses, g)
	r.points += g.Points
	r.game.points += g.Points
	// answers tied with the first one are top answers too
	top := g.Rank > 0 && r.answers[g.Rank-1].Count == r.answers[0].Count
	if top || len(r.guesses) >= r.game.settings.MaxGuesses {
		r.over = true
	}
	return g, nil
}

func (r *Round) Over() bool       { return r.over }
func (r *Round) Points() int      { return r.points }
func (r *Round) GuessesLeft() int { return r.game.settings.MaxGuesses - len(r.guesses) }
func (r *Round) Guesses() []Guess {
	out := make([]Guess, len(r.guesses))
	copy(out, r.guesses)
	return out
}

// Answers returns the top n answers, or all of them when n <= 0.
func (r *Round) Answers(n int) []score.Suggestion {
	if n <= 0 || n > len(r.answers) {
		n = len(r.answers)
	}
	out := make([]score.Suggestion, n)
	copy(out, r.answers[:n])
	return out
}
