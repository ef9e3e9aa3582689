// Package lexicon provides the word lists used to filter and flag guesses.
package lexicon

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/trknhr/phraseguess/internal/token"
)

//go:embed stopwords.txt
var stopwordsTxt string

// WordSet is a set of normalized words.
type WordSet map[string]struct{}

func (w WordSet) Contains(word string) bool {
	if w == nil {
		return true
	}
	_, ok := w[token.Normalize(word)]
	return ok
}

func (w WordSet) Len() int { return len(w) }

// Stopwords are English function words.
type Stopwords struct {
	words WordSet
}

// EnglishStopwords returns the built-in English list.
func EnglishStopwords() *Stopwords {
	words, _ := readWords(strings.NewReader(stopwordsTxt))
	return &Stopwords{words: words}
}

func (s *Stopwords) IsStopword(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[token.Normalize(word)]
	return ok
}

// LoadDictionary reads a one-word-per-line file. Blank lines and lines
// starting with # are ignored.
func LoadDictionary(path string) (WordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	words, err := readWords(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	return words, nil
}

func readWords(r io.Reader) (WordSet, error) {
	words := make(WordSet)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if w := token.Normalize(line); w != "" {
			words[w] = struct{}{}
		}
	}
	return words, scanner.Err()
}
