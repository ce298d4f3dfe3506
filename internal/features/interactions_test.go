package features

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"ReviewLabeler/internal/domain"
)

func TestAddInteractionFeatures(t *testing.T) {
	t.Parallel()

	review := AddInteractionFeatures(domain.Review{
		SentenceCount:       3,
		WordCount:           30,
		AvgWordsPerSentence: 10,
		LexicalDiversity:    0.5,
	})

	assert.Equal(t, 90, review.SentenceWordInteraction)
	assert.InDelta(t, 30.0, review.SentenceAvgWordInteraction, 1e-9)
	assert.InDelta(t, 1.5, review.LexicalSentenceInteraction, 1e-9)
	assert.InDelta(t, 30.0/(3.0+1e-5), review.WordsPerSentenceRatio, 1e-9)
	assert.InDelta(t, (0.5*30.0)/(3.0+1e-5), review.UniqueWordsPerSentence, 1e-9)
}

func TestRatioFeaturesFiniteWithoutSentences(t *testing.T) {
	t.Parallel()

	review := AddInteractionFeatures(domain.Review{SentenceCount: 0, WordCount: 0})

	assert.False(t, math.IsNaN(review.WordsPerSentenceRatio))
	assert.False(t, math.IsInf(review.WordsPerSentenceRatio, 0))
	assert.Zero(t, review.WordsPerSentenceRatio)
	assert.Zero(t, review.UniqueWordsPerSentence)

	// Even with stray words and no sentences, the epsilon keeps it finite.
	odd := AddInteractionFeatures(domain.Review{SentenceCount: 0, WordCount: 7})
	assert.False(t, math.IsInf(odd.WordsPerSentenceRatio, 0))
	assert.False(t, math.IsNaN(odd.UniqueWordsPerSentence))
}
