package corpus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DropsEmptyAndFixesCounts(t *testing.T) {
	c := New([]Phrase{
		{Words: []string{"a", "hissy", "fit"}, Count: 2},
		{Words: nil, Count: 5},
		{Words: []string{"much"}, Count: 0},
	})
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.Weight())

	phrases := c.Phrases()
	assert.Equal(t, "a hissy fit", phrases[0].Text())
	assert.Equal(t, 1, phrases[1].Count)
}

func TestNew_IsolatedFromInput(t *testing.T) {
	words := []string{"a", "hissy", "fit"}
	c := New([]Phrase{{Words: words, Count: 1}})
	words[2] = "tantrum"

	out := c.Phrases()
	assert.Equal(t, "fit", out[0].Words[2])

	out[0].Words[0] = "the"
	assert.Equal(t, "a", c.Phrases()[0].Words[0])
}

func TestFromText(t *testing.T) {
	c := FromText("It was much of a muchness. A hissy fit!")
	var got []string
	c.Each(func(p Phrase) { got = append(got, p.Text()) })
	assert.Equal(t, []string{"it was much of a muchness", "a hissy fit"}, got)
}

func TestNilCorpus(t *testing.T) {
	var c *Corpus
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Weight())
	assert.Nil(t, c.Phrases())
	c.Each(func(Phrase) { t.Fatal("unexpected phrase") })
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileLoader(t *testing.T) {
	path := writeFile(t, "corpus.txt", "A hissy fit.\nMuch of a muchness")
	l := NewFileLoader(path)

	phrases, err := l.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, phrases, 2)
	assert.Equal(t, []string{"much", "of", "a", "muchness"}, phrases[1].Words)

	mtime, err := l.GetCurrentMtime()
	require.NoError(t, err)
	stat, _ := os.Stat(path)
	assert.Equal(t, stat.ModTime().Unix(), mtime)
	assert.Equal(t, path, l.Path())
	assert.Contains(t, l.Key(), "corpus:")
}

func TestFileLoader_InvalidUTF8(t *testing.T) {
	path := writeFile(t, "bad.txt", string([]byte{0xff, 0xfe, 'a'}))
	_, err := NewFileLoader(path).Load(context.Background())
	assert.Error(t, err)
}

func TestFileLoader_Missing(t *testing.T) {
	_, err := NewFileLoader(filepath.Join(t.TempDir(), "nope.txt")).Load(context.Background())
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadAll_KeepsOrder(t *testing.T) {
	first := writeFile(t, "1.txt", "one two")
	second := writeFile(t, "2.txt", "three four. five")

	c, err := LoadAll(context.Background(), NewFileLoader(first), NewFileLoader(second))
	require.NoError(t, err)

	var got []string
	c.Each(func(p Phrase) { got = append(got, p.Text()) })
	assert.Equal(t, []string{"one two", "three four", "five"}, got)
}

func TestLoadAll_Error(t *testing.T) {
	ok := writeFile(t, "ok.txt", "fine")
	_, err := LoadAll(context.Background(), NewFileLoader(ok), NewFileLoader(filepath.Join(t.TempDir(), "missing.txt")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}
