package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"ReviewLabeler/internal/domain"
	"ReviewLabeler/internal/ports"
)

// ErrMissingColumn marks a schema mismatch: a required column is absent from
// an input table. Fatal, never retried.
var ErrMissingColumn = errors.New("required column missing")

const outputDirPerm = 0o755

// CSVStore persists review batches as flat CSV tables with a header row.
type CSVStore struct {
	logger *slog.Logger
}

var _ ports.TableStore = (*CSVStore)(nil)

// NewCSVStore builds the store.
func NewCSVStore(logger *slog.Logger) *CSVStore {
	return &CSVStore{logger: logger}
}

// WriteTable writes the batch under the given column set, creating parent
// directories as needed. Row order is preserved.
func (s *CSVStore) WriteTable(path string, columns []string, reviews []domain.Review) error {
	if err := os.MkdirAll(filepath.Dir(path), outputDirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create table %s: %w", path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		_ = file.Close()
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(columns))
	for _, review := range reviews {
		for i, column := range columns {
			row[i] = encodeValue(review, column)
		}
		if err := writer.Write(row); err != nil {
			_ = file.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return fmt.Errorf("flush table %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close table %s: %w", path, err)
	}

	s.debug("table written", "path", path, "rows", len(reviews), "columns", len(columns))
	return nil
}

// ReadLabeled loads the terminal labeled table back for model training. The
// feature, label, and link-flag columns are required; their absence is a
// schema error.
func (s *CSVStore) ReadLabeled(path string) ([]domain.Review, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("table %s has no header row", path)
	}

	index := map[string]int{}
	for i, name := range records[0] {
		index[name] = i
	}

	required := make([]string, 0, len(domain.FeatureColumns)+2)
	required = append(required, domain.FeatureColumns...)
	required = append(required, domain.ColSubstantiveness, domain.ColContainsLink)
	for _, column := range required {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("%w: %s in %s", ErrMissingColumn, column, path)
		}
	}

	reviews := make([]domain.Review, 0, len(records)-1)
	for _, record := range records[1:] {
		review := domain.Review{}
		for column, i := range index {
			if i < len(record) {
				decodeValue(&review, column, record[i])
			}
		}
		reviews = append(reviews, review)
	}

	s.debug("table read", "path", path, "rows", len(reviews))
	return reviews, nil
}

func encodeValue(r domain.Review, column string) string {
	switch column {
	case domain.ColUserID:
		return r.UserID
	case domain.ColReviewID:
		return r.ReviewID
	case domain.ColReviewText:
		return r.ReviewText
	case domain.ColRating:
		return strconv.Itoa(r.Rating)
	case domain.ColDateAdded:
		return r.DateAdded
	case domain.ColNVotes:
		return strconv.Itoa(r.NVotes)
	case domain.ColGenre:
		return r.Genre
	case domain.ColContainsLink:
		return strconv.FormatBool(r.ContainsLink)
	case domain.ColSentenceCount:
		return strconv.Itoa(r.SentenceCount)
	case domain.ColWordCount:
		return strconv.Itoa(r.WordCount)
	case domain.ColAvgWordsPerSentence:
		return formatFloat(r.AvgWordsPerSentence)
	case domain.ColLexicalDiversity:
		return formatFloat(r.LexicalDiversity)
	case domain.ColMentionsPerson:
		return strconv.Itoa(r.MentionsPerson)
	case domain.ColSentenceWordInter:
		return strconv.Itoa(r.SentenceWordInteraction)
	case domain.ColSentenceAvgWordInter:
		return formatFloat(r.SentenceAvgWordInteraction)
	case domain.ColLexicalSentenceInter:
		return formatFloat(r.LexicalSentenceInteraction)
	case domain.ColWordsPerSentence:
		return formatFloat(r.WordsPerSentenceRatio)
	case domain.ColUniqueWordsPerSent:
		return formatFloat(r.UniqueWordsPerSentence)
	case domain.ColSubstantiveness:
		return strconv.Itoa(r.SubstantivenessLabel)
	default:
		return ""
	}
}

// decodeValue fills one field from its cell. Malformed numerics keep the
// zero default; one bad cell never fails the batch.
func decodeValue(r *domain.Review, column, value string) {
	switch column {
	case domain.ColUserID:
		r.UserID = value
	case domain.ColReviewID:
		r.ReviewID = value
	case domain.ColReviewText:
		r.ReviewText = value
	case domain.ColRating:
		r.Rating = parseInt(value)
	case domain.ColDateAdded:
		r.DateAdded = value
	case domain.ColNVotes:
		r.NVotes = parseInt(value)
	case domain.ColGenre:
		r.Genre = value
	case domain.ColContainsLink:
		if parsed, err := strconv.ParseBool(value); err == nil {
			r.ContainsLink = parsed
		}
	case domain.ColSentenceCount:
		r.SentenceCount = parseInt(value)
	case domain.ColWordCount:
		r.WordCount = parseInt(value)
	case domain.ColAvgWordsPerSentence:
		r.AvgWordsPerSentence = parseFloat(value)
	case domain.ColLexicalDiversity:
		r.LexicalDiversity = parseFloat(value)
	case domain.ColMentionsPerson:
		r.MentionsPerson = parseInt(value)
	case domain.ColSentenceWordInter:
		r.SentenceWordInteraction = parseInt(value)
	case domain.ColSentenceAvgWordInter:
		r.SentenceAvgWordInteraction = parseFloat(value)
	case domain.ColLexicalSentenceInter:
		r.LexicalSentenceInteraction = parseFloat(value)
	case domain.ColWordsPerSentence:
		r.WordsPerSentenceRatio = parseFloat(value)
	case domain.ColUniqueWordsPerSent:
		r.UniqueWordsPerSentence = parseFloat(value)
	case domain.ColSubstantiveness:
		r.SubstantivenessLabel = parseInt(value)
	}
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func parseInt(value string) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}

func parseFloat(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func (s *CSVStore) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
