// Package token turns raw text into the normalized words and phrases the
// scorer works on.
package token

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// maxNormalizePasses bounds the search for a fixed point. Real input settles
// after one or two passes.
const maxNormalizePasses = 8

// Normalize folds case, applies NFKC and strips punctuation from a single
// word. Apostrophes and hyphens survive only between two letters or digits.
// Normalize is idempotent: its output is a fixed point of normalizeOnce.
func Normalize(word string) string {
	out := normalizeOnce(word)
	for i := 1; i < maxNormalizePasses; i++ {
		next := normalizeOnce(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}

func normalizeOnce(word string) string {
	// cases.Caser is stateful, so one per call. Folding can decompose
	// (ß plus a combining mark), hence the second NFKC.
	folded := norm.NFKC.String(cases.Fold().String(norm.NFKC.String(word)))
	runes := []rune(folded)

	var b strings.Builder
	b.Grow(len(folded))
	prevAlnum := false
	for i, r := range runes {
		switch {
		case isAlnum(r):
			b.WriteRune(canonicalCase(r))
			prevAlnum = true
		case isJoiner(r):
			if prevAlnum && i+1 < len(runes) && isAlnum(runes[i+1]) {
				b.WriteRune(canonicalJoiner(r))
			}
			prevAlnum = false
		default:
			prevAlnum = false
		}
	}
	// dropped runes can leave a combining mark next to a new base letter
	return norm.NFKC.String(b.String())
}

// canonicalCase pins Cherokee to its uppercase letters. Case folding maps
// between the two Cherokee blocks in both directions, so it never settles.
func canonicalCase(r rune) rune {
	if unicode.Is(unicode.Cherokee, r) {
		return unicode.ToUpper(r)
	}
	return r
}

// Words splits text into normalized words. Any rune that is neither
// alphanumeric nor a joiner separates words.
func Words(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !isAlnum(r) && !isJoiner(r)
	})
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if w := Normalize(f); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Phrases splits text at sentence punctuation and line breaks and returns
// every non-empty run of words.
func Phrases(text string) [][]string {
	chunks := strings.FieldsFunc(text, isBoundary)
	var phrases [][]string
	for _, c := range chunks {
		if words := Words(c); len(words) > 0 {
			phrases = append(phrases, words)
		}
	}
	return phrases
}

// Join renders a word sequence the way it is displayed and stored.
func Join(words []string) string {
	return strings.Join(words, " ")
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func isJoiner(r rune) bool {
	switch r {
	case '\'', '‘', '’', '-', '‐', '‑':
		return true
	}
	return false
}

func canonicalJoiner(r rune) rune {
	switch r {
	case '‘', '’':
		return '\''
	case '‐', '‑':
		return '-'
	}
	return r
}

func isBoundary(r rune) bool {
	switch r {
	case '.', '!', '?', ';', ':', '\n', '\r', '…':
		return true
	}
	return false
}
