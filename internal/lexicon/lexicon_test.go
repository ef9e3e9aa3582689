package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnglishStopwords(t *testing.T) {
	s := EnglishStopwords()
	for _, w := range []string{"the", "The", "of", "don't", "wouldn’t"} {
		assert.True(t, s.IsStopword(w), w)
	}
	for _, w := range []string{"muchness", "hissy", "fit", ""} {
		assert.False(t, s.IsStopword(w), w)
	}

	var none *Stopwords
	assert.False(t, none.IsStopword("the"))
}

func TestLoadDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# english\nMuchness\n\nhissy\n fit \n"), 0644))

	dict, err := LoadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, 3, dict.Len())
	assert.True(t, dict.Contains("muchness"))
	assert.True(t, dict.Contains("FIT"))
	assert.False(t, dict.Contains("english"))
}

func TestLoadDictionary_Missing(t *testing.T) {
	_, err := LoadDictionary(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNilWordSetAcceptsAll(t *testing.T) {
	var w WordSet
	assert.True(t, w.Contains("anything"))
}
