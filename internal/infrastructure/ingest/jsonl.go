package ingest

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/araddon/dateparse"

	"ReviewLabeler/internal/domain"
	"ReviewLabeler/internal/source"
)

const (
	// Reviews can run long; give the line scanner room.
	scannerInitialBuffer = 64 * 1024
	scannerMaxBuffer     = 4 * 1024 * 1024

	genreFilePrefix = "goodreads_reviews_"
)

// JSONLSource loads raw reviews from a JSON Lines file, keeping only the
// required columns. One malformed line never halts the batch: it is skipped
// and counted.
type JSONLSource struct {
	logger *slog.Logger
}

var _ source.Source = (*JSONLSource)(nil)

// NewJSONLSource builds the JSON Lines loader.
func NewJSONLSource(logger *slog.Logger) *JSONLSource {
	return &JSONLSource{logger: logger}
}

// Name identifies the format inside the registry.
func (s *JSONLSource) Name() string {
	return "jsonl"
}

// rawReview mirrors one line of the dump. Pointer fields distinguish missing
// keys and explicit nulls from zero values; both collapse to the same default.
type rawReview struct {
	UserID     *string `json:"user_id"`
	ReviewID   *string `json:"review_id"`
	ReviewText *string `json:"review_text"`
	Rating     *int    `json:"rating"`
	DateAdded  *string `json:"date_added"`
	NVotes     *int    `json:"n_votes"`
}

// Load reads every line of the configured file into the working batch.
func (s *JSONLSource) Load(ctx context.Context, req source.Request) ([]domain.Review, error) {
	file, err := os.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	genre := req.Genre
	if genre == "" {
		genre = ExtractGenre(req.Path)
	}

	var (
		reviews   []domain.Review
		malformed int
	)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, scannerInitialBuffer), scannerMaxBuffer)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("load cancelled: %w", err)
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var raw rawReview
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			malformed++
			s.debug("skip malformed line", "error", err)
			continue
		}

		reviews = append(reviews, s.toReview(raw, genre))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	if malformed > 0 && s.logger != nil {
		s.logger.Warn("skipped malformed lines", "count", malformed, "path", req.Path)
	}

	return reviews, nil
}

func (s *JSONLSource) toReview(raw rawReview, genre string) domain.Review {
	review := domain.Review{
		UserID:     deref(raw.UserID),
		ReviewID:   deref(raw.ReviewID),
		ReviewText: deref(raw.ReviewText),
		DateAdded:  deref(raw.DateAdded),
		Genre:      genre,
	}

	if raw.Rating != nil {
		review.Rating = *raw.Rating
	}
	if raw.NVotes != nil {
		review.NVotes = *raw.NVotes
	}

	// Parsed timestamp feeds observability only; an unparseable date keeps
	// its raw string and a zero time.
	if review.DateAdded != "" {
		if t, err := dateparse.ParseAny(review.DateAdded); err == nil {
			review.AddedAt = t
		}
	}

	return review
}

// ExtractGenre derives the genre tag from a dump filename, e.g.
// "goodreads_reviews_mystery_thriller_crime.json" -> "mystery_thriller_crime".
func ExtractGenre(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimPrefix(base, genreFilePrefix)
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func (s *JSONLSource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
