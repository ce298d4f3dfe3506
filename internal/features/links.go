package features

import (
	"regexp"

	"ReviewLabeler/internal/domain"
)

// Reviews containing links are disproportionately promotional and would bias
// the lexical features, so they are flagged here and excluded by the consumer
// right before labeling. Flagging instead of dropping keeps the exclusions
// auditable in the tier-one snapshot.
var linkPattern = regexp.MustCompile(`(?i)` +
	`http[s]?://[^\s]+` + // http:// or https://
	`|www\.[^\s]+` + // www.something
	`|\b[^\s]+\.com\b` + // something.com as a whole word
	`|\b[^\s]+\.org\b` + // something.org as a whole word
	`|\b[^\s]+\.net\b`) // something.net as a whole word

// HasLink reports whether text contains a URL-like pattern. Empty input
// yields false; this never fails.
func HasLink(text string) bool {
	if text == "" {
		return false
	}
	return linkPattern.MatchString(text)
}

// FlagLinks returns a new batch with the contains_link column populated.
// No record is dropped here.
func FlagLinks(reviews []domain.Review) []domain.Review {
	flagged := make([]domain.Review, len(reviews))
	for i, review := range reviews {
		review.ContainsLink = HasLink(review.ReviewText)
		flagged[i] = review
	}
	return flagged
}

// CountFlagged returns how many records carry the link flag.
func CountFlagged(reviews []domain.Review) int {
	count := 0
	for _, review := range reviews {
		if review.ContainsLink {
			count++
		}
	}
	return count
}
