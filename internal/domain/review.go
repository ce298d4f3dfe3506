package domain

import "time"

// Review is a core entity describing one free-text book review as it moves
// through the pipeline. Derived columns are filled in progressively and are
// never removed once set.
type Review struct {
	UserID     string
	ReviewID   string
	ReviewText string
	Rating     int
	DateAdded  string
	NVotes     int

	// Genre is pass-through metadata extracted from the source filename.
	Genre string

	// AddedAt is DateAdded parsed into a timestamp when possible; zero
	// otherwise. Observability only, never used to filter.
	AddedAt time.Time

	// Tier-1 flag.
	ContainsLink bool

	// Tier-2 text statistics.
	SentenceCount       int
	WordCount           int
	AvgWordsPerSentence float64
	LexicalDiversity    float64
	MentionsPerson      int

	// Interaction and ratio features derived from tier-2 statistics.
	SentenceWordInteraction    int
	SentenceAvgWordInteraction float64
	LexicalSentenceInteraction float64
	WordsPerSentenceRatio      float64
	UniqueWordsPerSentence     float64

	// SubstantivenessLabel is assigned exactly once by the labeling cascade;
	// zero means not yet labeled.
	SubstantivenessLabel int
}

// Column names as they appear in the persisted tables.
const (
	ColUserID               = "user_id"
	ColReviewID             = "review_id"
	ColReviewText           = "review_text"
	ColRating               = "rating"
	ColDateAdded            = "date_added"
	ColNVotes               = "n_votes"
	ColGenre                = "genre"
	ColContainsLink         = "contains_link"
	ColSentenceCount        = "sentence_count"
	ColWordCount            = "word_count"
	ColAvgWordsPerSentence  = "avg_words_per_sentence"
	ColLexicalDiversity     = "lexical_diversity"
	ColMentionsPerson       = "mentions_person"
	ColSentenceWordInter    = "sentence_word_interaction"
	ColSentenceAvgWordInter = "sentence_avgword_interaction"
	ColLexicalSentenceInter = "lexical_sentence_interaction"
	ColWordsPerSentence     = "words_per_sentence_ratio"
	ColUniqueWordsPerSent   = "unique_words_per_sentence"
	ColSubstantiveness      = "substantiveness_label"
)

// BaseColumns is the minimum schema required from ingestion.
var BaseColumns = []string{
	ColUserID, ColReviewID, ColReviewText, ColRating, ColDateAdded, ColNVotes, ColGenre,
}

// TierOneColumns adds the link flag.
var TierOneColumns = appendColumns(BaseColumns, ColContainsLink)

// TierTwoColumns adds the NLP-derived text statistics.
var TierTwoColumns = appendColumns(TierOneColumns,
	ColSentenceCount, ColWordCount, ColAvgWordsPerSentence, ColLexicalDiversity, ColMentionsPerson)

// LabeledColumns is the terminal schema consumed by model training.
var LabeledColumns = appendColumns(TierTwoColumns,
	ColSentenceWordInter, ColSentenceAvgWordInter, ColLexicalSentenceInter,
	ColWordsPerSentence, ColUniqueWordsPerSent, ColSubstantiveness)

// FeatureColumns lists the model inputs in training order.
var FeatureColumns = []string{
	ColNVotes,
	ColSentenceCount,
	ColWordCount,
	ColAvgWordsPerSentence,
	ColLexicalDiversity,
	ColSentenceWordInter,
	ColSentenceAvgWordInter,
	ColLexicalSentenceInter,
	ColWordsPerSentence,
	ColUniqueWordsPerSent,
}

// FeatureVector returns the model inputs in FeatureColumns order.
func (r Review) FeatureVector() []float64 {
	return []float64{
		float64(r.NVotes),
		float64(r.SentenceCount),
		float64(r.WordCount),
		r.AvgWordsPerSentence,
		r.LexicalDiversity,
		float64(r.SentenceWordInteraction),
		r.SentenceAvgWordInteraction,
		r.LexicalSentenceInteraction,
		r.WordsPerSentenceRatio,
		r.UniqueWordsPerSentence,
	}
}

func appendColumns(base []string, extra ...string) []string {
	columns := make([]string, 0, len(base)+len(extra))
	columns = append(columns, base...)
	columns = append(columns, extra...)
	return columns
}
