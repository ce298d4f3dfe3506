package features

import (
	"strings"
	"unicode"

	"ReviewLabeler/internal/domain"
	"ReviewLabeler/internal/ports"
)

// Extractor computes per-review scalar text statistics through an injected
// analyzer. Every method is pure and total: malformed or empty input maps to
// a defined default, never an error.
type Extractor struct {
	analyzer ports.TextAnalyzer
}

// NewExtractor wires the shared read-only analyzer.
func NewExtractor(analyzer ports.TextAnalyzer) *Extractor {
	return &Extractor{analyzer: analyzer}
}

// SentenceCount returns the number of sentence segments in text.
func (e *Extractor) SentenceCount(text string) int {
	if text == "" {
		return 0
	}
	return len(e.analyzer.SegmentSentences(text))
}

// WordCount returns the number of word-level tokens in text, including
// punctuation tokens as produced by the tokenizer.
func (e *Extractor) WordCount(text string) int {
	if text == "" {
		return 0
	}
	return len(e.analyzer.TokenizeWords(text))
}

// AvgWordsPerSentence returns word count over sentence count, or 0 when the
// text has no sentences.
func (e *Extractor) AvgWordsPerSentence(text string) float64 {
	sentences := e.SentenceCount(text)
	if sentences == 0 {
		return 0.0
	}
	return float64(e.WordCount(text)) / float64(sentences)
}

// LexicalDiversity returns distinct over total lowercased alphabetic tokens,
// in [0, 1]. Numbers and punctuation count toward neither side; text without
// alphabetic tokens yields 0.
func (e *Extractor) LexicalDiversity(text string) float64 {
	if text == "" {
		return 0.0
	}

	total := 0
	distinct := map[string]struct{}{}
	for _, token := range e.analyzer.TokenizeWords(text) {
		if !isAlphabetic(token) {
			continue
		}
		total++
		distinct[strings.ToLower(token)] = struct{}{}
	}

	if total == 0 {
		return 0.0
	}
	return float64(len(distinct)) / float64(total)
}

// MentionsPerson returns 1 if the analyzer finds at least one PERSON entity.
func (e *Extractor) MentionsPerson(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	if len(e.analyzer.FindPersonEntities(text)) > 0 {
		return 1
	}
	return 0
}

// Annotate returns the review with all tier-2 statistics filled in.
func (e *Extractor) Annotate(review domain.Review) domain.Review {
	review.SentenceCount = e.SentenceCount(review.ReviewText)
	review.WordCount = e.WordCount(review.ReviewText)
	review.AvgWordsPerSentence = e.AvgWordsPerSentence(review.ReviewText)
	review.LexicalDiversity = e.LexicalDiversity(review.ReviewText)
	review.MentionsPerson = e.MentionsPerson(review.ReviewText)
	return review
}

// AnnotateBatch maps Annotate over the batch, preserving order.
func (e *Extractor) AnnotateBatch(reviews []domain.Review) []domain.Review {
	annotated := make([]domain.Review, len(reviews))
	for i, review := range reviews {
		annotated[i] = e.Annotate(review)
	}
	return annotated
}

func isAlphabetic(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
