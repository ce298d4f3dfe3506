package labeling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ReviewLabeler/internal/domain"
)

func TestAssignLabelCascade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		sc    int
		wc    int
		awps  float64
		ld    float64
		votes float64
		want  int
	}{
		{name: "top rule", sc: 4, wc: 61, awps: 14, ld: 0.68, votes: 0, want: 5},
		{name: "word count boundary is exclusive", sc: 4, wc: 60, awps: 14, ld: 0.68, votes: 0, want: 4},
		{name: "rule three inclusive bounds", sc: 2, wc: 35, awps: 9, ld: 0.58, votes: 0, want: 3},
		{name: "rule four inclusive bounds", sc: 2, wc: 17, awps: 7, ld: 0.51, votes: 0, want: 2},
		{name: "no rule matches", sc: 1, wc: 5, awps: 5, ld: 0.2, votes: 0, want: 1},
		{name: "diversity at threshold fails strict bound", sc: 4, wc: 61, awps: 14, ld: 0.675, votes: 0, want: 4},
		{name: "negative votes fall through to rule four", sc: 2, wc: 35, awps: 9, ld: 0.58, votes: -0.01, want: 2},
		{name: "votes below rule four bound", sc: 4, wc: 61, awps: 14, ld: 0.68, votes: -1, want: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := AssignLabel(tt.sc, tt.wc, tt.awps, tt.ld, tt.votes)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLabelBatchPreservesOrderAndAssignsOnce(t *testing.T) {
	t.Parallel()

	batch := []domain.Review{
		{ReviewID: "a", SentenceCount: 4, WordCount: 61, AvgWordsPerSentence: 14, LexicalDiversity: 0.68},
		{ReviewID: "b", SentenceCount: 1, WordCount: 5, AvgWordsPerSentence: 5, LexicalDiversity: 0.2},
	}

	labeled := LabelBatch(batch)
	require.Len(t, labeled, 2)

	assert.Equal(t, "a", labeled[0].ReviewID)
	assert.Equal(t, 5, labeled[0].SubstantivenessLabel)
	assert.Equal(t, "b", labeled[1].ReviewID)
	assert.Equal(t, 1, labeled[1].SubstantivenessLabel)

	// Input batch is untouched.
	assert.Zero(t, batch[0].SubstantivenessLabel)
}

func TestDistribution(t *testing.T) {
	t.Parallel()

	reviews := []domain.Review{
		{SubstantivenessLabel: 1},
		{SubstantivenessLabel: 1},
		{SubstantivenessLabel: 5},
	}

	counts := Distribution(reviews)
	assert.Equal(t, map[int]int{1: 2, 5: 1}, counts)
}
