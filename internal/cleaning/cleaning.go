package cleaning

import (
	"log/slog"
	"strings"

	"ReviewLabeler/internal/domain"
	"ReviewLabeler/internal/ports"
)

// englishCode is the ISO 639-3 code the detector must report for a review to
// survive the language filter.
const englishCode = "eng"

// languageSampleLength caps how much text the detector sees. Detection on the
// first 200 characters is faster and avoids detector instability on very long
// mixed-language reviews.
const languageSampleLength = 200

// FilterValid drops records whose review_text is empty after trimming or
// whose user_id, review_id, or date_added is missing. A missing key, an
// explicit null, and an empty string are equivalent here.
func FilterValid(reviews []domain.Review) []domain.Review {
	valid := make([]domain.Review, 0, len(reviews))
	for _, review := range reviews {
		if strings.TrimSpace(review.ReviewText) == "" {
			continue
		}
		if review.UserID == "" || review.ReviewID == "" || review.DateAdded == "" {
			continue
		}
		valid = append(valid, review)
	}
	return valid
}

// DropDuplicates removes records sharing the same (user_id, review_id,
// review_text) triple, keeping the first occurrence in batch order.
func DropDuplicates(reviews []domain.Review) []domain.Review {
	type key struct {
		userID   string
		reviewID string
		text     string
	}

	seen := map[key]struct{}{}
	unique := make([]domain.Review, 0, len(reviews))
	for _, review := range reviews {
		k := key{userID: review.UserID, reviewID: review.ReviewID, text: review.ReviewText}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, review)
	}
	return unique
}

// LanguageFilter selects English-language reviews. Detection is deterministic
// (the detector has no sampled state), so repeated runs over identical input
// are reproducible bit-for-bit.
type LanguageFilter struct {
	detector ports.LanguageDetector
	logger   *slog.Logger
}

// NewLanguageFilter wires the detector instance shared across all rows.
func NewLanguageFilter(detector ports.LanguageDetector, logger *slog.Logger) *LanguageFilter {
	return &LanguageFilter{detector: detector, logger: logger}
}

// IsEnglish classifies the first languageSampleLength characters of text.
// Blank text is treated as English: such records were supposed to be removed
// upstream, so this is a defensive default rather than a classification
// claim. Detector failure maps to not-English, logged, never fatal.
func (f *LanguageFilter) IsEnglish(text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}

	sample := text
	if runes := []rune(sample); len(runes) > languageSampleLength {
		sample = string(runes[:languageSampleLength])
	}

	lang, err := f.detector.Detect(sample)
	if err != nil {
		if f.logger != nil {
			f.logger.Debug("language detection failed, treating as non-English", "error", err)
		}
		return false
	}

	return lang == englishCode
}

// Apply filters the batch to English reviews, preserving order. No record is
// mutated, only selected.
func (f *LanguageFilter) Apply(reviews []domain.Review) []domain.Review {
	english := make([]domain.Review, 0, len(reviews))
	for _, review := range reviews {
		if f.IsEnglish(review.ReviewText) {
			english = append(english, review)
		}
	}
	return english
}
