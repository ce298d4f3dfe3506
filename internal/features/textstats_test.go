package features

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ReviewLabeler/internal/domain"
)

// stubAnalyzer splits sentences on terminal punctuation and words on
// non-alphanumeric runes; persons are any token equal to "John".
type stubAnalyzer struct{}

func (stubAnalyzer) SegmentSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	var sentences []string
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			sentences = append(sentences, strings.TrimSpace(part))
		}
	}
	return sentences
}

func (stubAnalyzer) TokenizeWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func (s stubAnalyzer) FindPersonEntities(text string) []string {
	var persons []string
	for _, token := range s.TokenizeWords(text) {
		if token == "John" {
			persons = append(persons, token)
		}
	}
	return persons
}

func TestSentenceAndWordCounts(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor(stubAnalyzer{})

	assert.Equal(t, 2, extractor.SentenceCount("Great book. I loved it."))
	assert.Equal(t, 5, extractor.WordCount("Great book. I loved it."))
	assert.Equal(t, 0, extractor.SentenceCount(""))
	assert.Equal(t, 0, extractor.WordCount(""))
}

func TestAvgWordsPerSentenceNeverDividesByZero(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor(stubAnalyzer{})

	assert.InDelta(t, 2.5, extractor.AvgWordsPerSentence("Great book. I loved it."), 1e-9)
	assert.Zero(t, extractor.AvgWordsPerSentence(""))
}

func TestLexicalDiversityBounds(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor(stubAnalyzer{})

	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "all distinct", text: "Great book I loved it.", want: 1.0},
		{name: "repeated words", text: "the cat the cat", want: 0.5},
		{name: "case insensitive", text: "The the THE", want: 1.0 / 3.0},
		{name: "no alphabetic tokens", text: "123 456", want: 0.0},
		{name: "empty", text: "", want: 0.0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := extractor.LexicalDiversity(tt.text)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestMentionsPerson(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor(stubAnalyzer{})

	assert.Equal(t, 1, extractor.MentionsPerson("John wrote a moving memoir."))
	assert.Equal(t, 0, extractor.MentionsPerson("a moving memoir"))
	assert.Equal(t, 0, extractor.MentionsPerson("   "))
}

func TestAnnotateBatchFillsAllStatistics(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor(stubAnalyzer{})

	batch := []domain.Review{{ReviewID: "a", ReviewText: "John writes well. I agree."}}
	annotated := extractor.AnnotateBatch(batch)
	require.Len(t, annotated, 1)

	got := annotated[0]
	assert.Equal(t, 2, got.SentenceCount)
	assert.Equal(t, 5, got.WordCount)
	assert.InDelta(t, 2.5, got.AvgWordsPerSentence, 1e-9)
	assert.InDelta(t, 1.0, got.LexicalDiversity, 1e-9)
	assert.Equal(t, 1, got.MentionsPerson)
}
