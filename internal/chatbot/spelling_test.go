package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrector_Correct(t *testing.T) {
	c := NewCorrector(Vocabulary)

	corrected, suggestion := c.Correct("libary")
	assert.Equal(t, "library", corrected)
	assert.Equal(t, "🤔 Did you mean: 'libary' → 'library'?", suggestion)

	corrected, suggestion = c.Correct("xyz123")
	assert.Equal(t, "xyz123", corrected)
	assert.Empty(t, suggestion)
}

func TestCorrector_KeepsKnownWordsAndListsEverySubstitution(t *testing.T) {
	c := NewCorrector(Vocabulary)

	corrected, suggestion := c.Correct("hostle and libary")
	assert.Equal(t, "hostel and library", corrected)
	assert.Contains(t, suggestion, "'hostle' → 'hostel'")
	assert.Contains(t, suggestion, "'libary' → 'library'")

	corrected, suggestion = c.Correct("bca ba pgdca")
	assert.Equal(t, "bca ba pgdca", corrected)
	assert.Empty(t, suggestion)
}

func TestCorrector_Closest(t *testing.T) {
	c := NewCorrector([]string{"hostel", "library"})

	best, ok := c.Closest("hostl")
	assert.True(t, ok)
	assert.Equal(t, "hostel", best)

	_, ok = c.Closest("zzz")
	assert.False(t, ok)
}

func TestCorrector_VocabularyIsDomainKeywordsOnly(t *testing.T) {
	assert.Len(t, Vocabulary, 36)

	c := NewCorrector(Vocabulary)

	corrected, suggestion := c.Correct("mba")
	assert.Equal(t, "ba", corrected)
	assert.Equal(t, "🤔 Did you mean: 'mba' → 'ba'?", suggestion)

	corrected, suggestion = c.Correct("mca")
	assert.Equal(t, "mca", corrected)
	assert.Empty(t, suggestion)
}

func TestCorrector_CorrectKeeping(t *testing.T) {
	c := NewCorrector(Vocabulary)

	corrected, suggestion := c.Correct("bsc cs")
	assert.Equal(t, "bsc bsc", corrected, "without a keep set short codes are corrected")
	assert.NotEmpty(t, suggestion)

	keep := make(WordSet)
	keep.Add("BSc CS", "M.Lib. (ISc)")

	corrected, suggestion = c.CorrectKeeping("bsc cs", keep)
	assert.Equal(t, "bsc cs", corrected)
	assert.Empty(t, suggestion)

	corrected, suggestion = c.CorrectKeeping("m.lib libary", keep)
	assert.Equal(t, "m.lib library", corrected)
	assert.Equal(t, "🤔 Did you mean: 'libary' → 'library'?", suggestion)
}
