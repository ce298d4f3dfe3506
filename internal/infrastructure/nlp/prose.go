package nlp

import (
	"log/slog"

	prose "github.com/jdkato/prose/v2"

	"ReviewLabeler/internal/ports"
)

const personLabel = "PERSON"

// ProseAnalyzer implements ports.TextAnalyzer on top of prose's tokenizer,
// sentence segmenter, and named-entity recognizer. The underlying English
// model is embedded in the library and shared across calls; the analyzer
// itself holds no per-call state and is safe to reuse for every row.
type ProseAnalyzer struct {
	logger *slog.Logger
}

var _ ports.TextAnalyzer = (*ProseAnalyzer)(nil)

// NewProseAnalyzer builds the shared analyzer instance.
func NewProseAnalyzer(logger *slog.Logger) *ProseAnalyzer {
	return &ProseAnalyzer{logger: logger}
}

// SegmentSentences returns the sentence segments of text. Pathological input
// the segmenter rejects maps to no sentences, never an error.
func (a *ProseAnalyzer) SegmentSentences(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		a.debug("sentence segmentation failed", err)
		return nil
	}

	sentences := doc.Sentences()
	segments := make([]string, len(sentences))
	for i, sentence := range sentences {
		segments[i] = sentence.Text
	}
	return segments
}

// TokenizeWords returns word-level tokens, punctuation tokens included, as
// produced by the tokenizer.
func (a *ProseAnalyzer) TokenizeWords(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		a.debug("tokenization failed", err)
		return nil
	}

	tokens := doc.Tokens()
	words := make([]string, len(tokens))
	for i, token := range tokens {
		words[i] = token.Text
	}
	return words
}

// FindPersonEntities returns the PERSON-typed entity spans found in text.
func (a *ProseAnalyzer) FindPersonEntities(text string) []string {
	doc, err := prose.NewDocument(text)
	if err != nil {
		a.debug("entity extraction failed", err)
		return nil
	}

	var persons []string
	for _, entity := range doc.Entities() {
		if entity.Label == personLabel {
			persons = append(persons, entity.Text)
		}
	}
	return persons
}

func (a *ProseAnalyzer) debug(msg string, err error) {
	if a.logger != nil {
		a.logger.Debug(msg, "error", err)
	}
}
