package score

import "strings"

// Lemmatizer maps an inflected word to the form it is ranked under.
type Lemmatizer interface {
	Lemma(word string) string
}

var irregularPlurals = map[string]string{
	"children": "child",
	"feet":     "foot",
	"geese":    "goose",
	"men":      "man",
	"mice":     "mouse",
	"people":   "person",
	"teeth":    "tooth",
	"women":    "woman",
}

// SuffixLemmatizer reduces English noun plurals to the singular. When known
// is set, a stripped form is only used if known contains it.
type SuffixLemmatizer struct {
	known Dictionary
}

func NewSuffixLemmatizer(known Dictionary) *SuffixLemmatizer {
	return &SuffixLemmatizer{known: known}
}

func (l *SuffixLemmatizer) Lemma(word string) string {
	if lemma, ok := irregularPlurals[word]; ok {
		return lemma
	}
	if len(word) <= 3 {
		return word
	}
	for _, candidate := range singularCandidates(word) {
		if l.known == nil || l.known.Contains(candidate) {
			return candidate
		}
	}
	return word
}

func singularCandidates(word string) []string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return []string{word[:len(word)-3] + "y"}
	case strings.HasSuffix(word, "sses"),
		strings.HasSuffix(word, "ches"),
		strings.HasSuffix(word, "shes"),
		strings.HasSuffix(word, "xes"),
		strings.HasSuffix(word, "zes"):
		return []string{word[:len(word)-2], word[:len(word)-1]}
	case strings.HasSuffix(word, "ss"),
		strings.HasSuffix(word, "us"),
		strings.HasSuffix(word, "is"),
		strings.HasSuffix(word, "'s"):
		return nil
	case strings.HasSuffix(word, "s"):
		return []string{word[:len(word)-1]}
	}
	return nil
}
