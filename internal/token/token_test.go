package token

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hissy", "hissy"},
		{"FIT!", "fit"},
		{"\"muchness,\"", "muchness"},
		{"don't", "don't"},
		{"Don’t", "don't"},
		{"well-known", "well-known"},
		{"-dash-", "dash"},
		{"'quoted'", "quoted"},
		{"Straße", "strasse"},
		{"ＡＢＣ", "abc"},
		{"...", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []string{
		"Don’t", "Well-Known", "Straße", "a--b", "x''y",
		"ꭰꭰ-", "Ꭰꭰ", "áẞ́", "ß\u0301", "ǅ", "ﬃ\u0301",
	} {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize not idempotent for %q", in)
	}
}

func TestNormalize_CherokeeIsSingleForm(t *testing.T) {
	assert.Equal(t, Normalize("ꭰ"), Normalize("Ꭰ"))
	assert.Equal(t, []string{Normalize("ꭰ"), "go"}, Words("ꭰ go"))
}

// tricky runes: case folding that decomposes, toggling scripts, joiners,
// combining marks and compatibility forms
var trickyRunes = []rune("ßẞꭰᏸᎠ\u0301\u0308\u0327\u093f'’-‐.ﬁﬃǅİıΣς½Ⅻ \t")

func randomText(r *rand.Rand) string {
	var b strings.Builder
	for n := r.IntN(8); n >= 0; n-- {
		if r.IntN(2) == 0 {
			b.WriteRune(trickyRunes[r.IntN(len(trickyRunes))])
			continue
		}
		c := rune(r.IntN(0x2FFFF))
		if !utf8.ValidRune(c) {
			c = 'a'
		}
		b.WriteRune(c)
	}
	return b.String()
}

func TestWords_RoundTripIsStable(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 42))
	for i := 0; i < 20000; i++ {
		in := randomText(r)
		words := Words(in)
		again := Words(Join(words))
		if !assert.Equal(t, words, again, "Words(Join(Words(%q)))", in) {
			return
		}
	}
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"much", "of", "a", "muchness"}, Words("Much of a... MUCHNESS"))
	assert.Equal(t, []string{"rock'n", "roll"}, Words("rock'n' roll"))
	assert.Equal(t, []string{"a", "b"}, Words("a,b"))
	assert.Empty(t, Words("  -- !! "))
}

func TestPhrases(t *testing.T) {
	text := "She threw a hissy fit. Then: it was much of a muchness!\nDone"
	got := Phrases(text)
	want := [][]string{
		{"she", "threw", "a", "hissy", "fit"},
		{"then"},
		{"it", "was", "much", "of", "a", "muchness"},
		{"done"},
	}
	assert.Equal(t, want, got)
}

func TestPhrases_Empty(t *testing.T) {
	assert.Nil(t, Phrases(" ... \n\n ?! "))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "much of a", Join([]string{"much", "of", "a"}))
}
