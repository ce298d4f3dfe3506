package features

import "ReviewLabeler/internal/domain"

// denominatorEpsilon guards the ratio features against division by zero for
// reviews with no detected sentences.
const denominatorEpsilon = 1e-5

// AddInteractionFeatures derives the composite features from the tier-2
// statistics. Pure arithmetic, no I/O.
func AddInteractionFeatures(review domain.Review) domain.Review {
	sentences := float64(review.SentenceCount)
	words := float64(review.WordCount)

	review.SentenceWordInteraction = review.SentenceCount * review.WordCount
	review.SentenceAvgWordInteraction = sentences * review.AvgWordsPerSentence
	review.LexicalSentenceInteraction = review.LexicalDiversity * sentences

	review.WordsPerSentenceRatio = words / (sentences + denominatorEpsilon)
	review.UniqueWordsPerSentence = (review.LexicalDiversity * words) / (sentences + denominatorEpsilon)

	return review
}

// AddInteractionFeaturesBatch maps AddInteractionFeatures over the batch,
// preserving order.
func AddInteractionFeaturesBatch(reviews []domain.Review) []domain.Review {
	derived := make([]domain.Review, len(reviews))
	for i, review := range reviews {
		derived[i] = AddInteractionFeatures(review)
	}
	return derived
}
