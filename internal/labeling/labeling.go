package labeling

import "ReviewLabeler/internal/domain"

// AssignLabel scores a review's substantiveness on an ordinal 1-5 scale via
// an ordered, short-circuiting cascade of threshold rules, most stringent
// first. The thresholds were tuned empirically to roughly balance class
// frequencies; the mix of strict and inclusive comparisons is part of the
// rubric and must not be normalized. Votes is compared as a float because
// rule four bounds it at -0.05 while the others require >= 0.
func AssignLabel(sentenceCount, wordCount int, avgWordsPerSentence, lexicalDiversity, votes float64) int {
	sc := sentenceCount
	wc := wordCount
	awps := avgWordsPerSentence
	ld := lexicalDiversity
	nv := votes

	if sc > 3 && wc > 60 && awps > 13 && ld > 0.675 && nv >= 0 {
		return 5
	}
	if sc > 3 && wc > 40 && awps > 11 && ld > 0.6 && nv >= 0 {
		return 4
	}
	if sc >= 2 && wc >= 35 && awps >= 9 && ld > 0.575 && nv >= 0 {
		return 3
	}
	if sc >= 2 && wc >= 17 && awps >= 7 && ld > 0.50 && nv > -0.05 {
		return 2
	}
	return 1
}

// Label returns the review with its substantiveness label assigned.
func Label(review domain.Review) domain.Review {
	review.SubstantivenessLabel = AssignLabel(
		review.SentenceCount,
		review.WordCount,
		review.AvgWordsPerSentence,
		review.LexicalDiversity,
		float64(review.NVotes),
	)
	return review
}

// LabelBatch maps Label over the batch, preserving order. Rows are labeled
// independently; there is no cross-row state.
func LabelBatch(reviews []domain.Review) []domain.Review {
	labeled := make([]domain.Review, len(reviews))
	for i, review := range reviews {
		labeled[i] = Label(review)
	}
	return labeled
}

// Distribution counts labels per class for the post-labeling summary log.
func Distribution(reviews []domain.Review) map[int]int {
	counts := map[int]int{}
	for _, review := range reviews {
		counts[review.SubstantivenessLabel]++
	}
	return counts
}
