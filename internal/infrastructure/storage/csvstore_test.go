package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ReviewLabeler/internal/domain"
)

func TestWriteThenReadLabeledRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewCSVStore(nil)
	path := filepath.Join(t.TempDir(), "nested", "labeled.csv")

	reviews := []domain.Review{
		{
			UserID:                     "u1",
			ReviewID:                   "r1",
			ReviewText:                 "A dense, careful review.",
			Rating:                     4,
			DateAdded:                  "Wed Jan 24 00:00:00 -0800 2018",
			NVotes:                     3,
			Genre:                      "poetry",
			ContainsLink:               false,
			SentenceCount:              4,
			WordCount:                  61,
			AvgWordsPerSentence:        15.25,
			LexicalDiversity:           0.7,
			MentionsPerson:             1,
			SentenceWordInteraction:    244,
			SentenceAvgWordInteraction: 61,
			LexicalSentenceInteraction: 2.8,
			WordsPerSentenceRatio:      15.2499,
			UniqueWordsPerSentence:     10.67,
			SubstantivenessLabel:       5,
		},
		{
			UserID:               "u2",
			ReviewID:             "r2",
			ReviewText:           "meh",
			DateAdded:            "2018-01-25",
			Genre:                "poetry",
			ContainsLink:         true,
			SentenceCount:        1,
			WordCount:            1,
			SubstantivenessLabel: 1,
		},
	}

	require.NoError(t, store.WriteTable(path, domain.LabeledColumns, reviews))

	loaded, err := store.ReadLabeled(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, reviews[0], loaded[0])
	assert.True(t, loaded[1].ContainsLink)
	assert.Equal(t, 1, loaded[1].SubstantivenessLabel)
}

func TestReadLabeledMissingColumnIsSchemaError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.csv")
	require.NoError(t, os.WriteFile(path, []byte("user_id,review_text\nu1,hello\n"), 0o600))

	store := NewCSVStore(nil)
	_, err := store.ReadLabeled(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestReadLabeledMalformedCellsDefaultToZero(t *testing.T) {
	t.Parallel()

	header := "user_id,review_id,review_text,rating,date_added,n_votes,genre,contains_link," +
		"sentence_count,word_count,avg_words_per_sentence,lexical_diversity,mentions_person," +
		"sentence_word_interaction,sentence_avgword_interaction,lexical_sentence_interaction," +
		"words_per_sentence_ratio,unique_words_per_sentence,substantiveness_label"
	row := "u1,r1,text,oops,2018,notanumber,poetry,false,2,17,8.5,0.51,0,34,17,1.02,8.49,8.6,2"

	path := filepath.Join(t.TempDir(), "dirty.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+"\n"+row+"\n"), 0o600))

	store := NewCSVStore(nil)
	loaded, err := store.ReadLabeled(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	// One malformed cell never halts the batch; it keeps the zero default.
	assert.Zero(t, loaded[0].Rating)
	assert.Zero(t, loaded[0].NVotes)
	assert.Equal(t, 2, loaded[0].SubstantivenessLabel)
}

func TestWriteTableCreatesHeaderOnlyFileForEmptyBatch(t *testing.T) {
	t.Parallel()

	store := NewCSVStore(nil)
	path := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, store.WriteTable(path, domain.BaseColumns, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "user_id,review_id,review_text,rating,date_added,n_votes,genre\n", string(raw))
}
