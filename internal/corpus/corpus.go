// Package corpus holds the phrase corpus the scorer reads from.
package corpus

import (
	"github.com/trknhr/phraseguess/internal/token"
)

// Phrase is one word sequence plus the number of times it was observed.
type Phrase struct {
	Words []string
	Count int
}

func (p Phrase) Text() string {
	return token.Join(p.Words)
}

// Corpus is an immutable, ordered list of phrases. It has no mutators; the
// slices handed to Each must not be modified by the caller.
type Corpus struct {
	phrases []Phrase
	weight  int
}

// New copies phrases into a corpus. Empty phrases are dropped and
// non-positive counts are treated as 1.
func New(phrases []Phrase) *Corpus {
	c := &Corpus{phrases: make([]Phrase, 0, len(phrases))}
	for _, p := range phrases {
		if len(p.Words) == 0 {
			continue
		}
		count := p.Count
		if count <= 0 {
			count = 1
		}
		words := make([]string, len(p.Words))
		copy(words, p.Words)
		c.phrases = append(c.phrases, Phrase{Words: words, Count: count})
		c.weight += count
	}
	return c
}

// FromText builds a corpus with one phrase per sentence of text.
func FromText(text string) *Corpus {
	return New(PhrasesFromText(text))
}

// PhrasesFromText splits text into weight-1 phrases.
func PhrasesFromText(text string) []Phrase {
	split := token.Phrases(text)
	phrases := make([]Phrase, len(split))
	for i, words := range split {
		phrases[i] = Phrase{Words: words, Count: 1}
	}
	return phrases
}

// Len is the number of distinct phrase entries.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.phrases)
}

// Weight is the sum of all phrase counts.
func (c *Corpus) Weight() int {
	if c == nil {
		return 0
	}
	return c.weight
}

// Each calls fn for every phrase in order.
func (c *Corpus) Each(fn func(Phrase)) {
	if c == nil {
		return
	}
	for _, p := range c.phrases {
		fn(p)
	}
}

// Phrases returns a deep copy of the corpus contents.
func (c *Corpus) Phrases() []Phrase {
	if c == nil {
		return nil
	}
	out := make([]Phrase, len(c.phrases))
	for i, p := range c.phrases {
		words := make([]string, len(p.Words))
		copy(words, p.Words)
		out[i] = Phrase{Words: words, Count: p.Count}
	}
	return out
}
