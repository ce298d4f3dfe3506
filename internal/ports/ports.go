package ports

import (
	"context"

	"ReviewLabeler/internal/domain"
)

// ReviewSource produces the initial batch of reviews from a configured input.
type ReviewSource interface {
	Load(ctx context.Context) ([]domain.Review, error)
}

// TextAnalyzer is the injected NLP capability shared read-only across all
// row-level computations. Implementations load their models exactly once.
type TextAnalyzer interface {
	SegmentSentences(text string) []string
	TokenizeWords(text string) []string
	FindPersonEntities(text string) []string
}

// LanguageDetector classifies the dominant language of a text fragment,
// returning an ISO 639-3 code. An error means the detector could not produce
// a reliable classification; callers decide the fail-closed policy.
type LanguageDetector interface {
	Detect(text string) (string, error)
}

// TableStore persists review batches as flat tabular files at pipeline
// boundaries and reads the terminal labeled table back for training.
type TableStore interface {
	WriteTable(path string, columns []string, reviews []domain.Review) error
	ReadLabeled(path string) ([]domain.Review, error)
}
