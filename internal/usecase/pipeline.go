package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"ReviewLabeler/internal/cleaning"
	"ReviewLabeler/internal/domain"
	"ReviewLabeler/internal/features"
	"ReviewLabeler/internal/labeling"
	"ReviewLabeler/internal/ports"
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source    ports.ReviewSource
	Store     ports.TableStore
	Extractor *features.Extractor
	Languages *cleaning.LanguageFilter
	Logger    *slog.Logger
	OutputDir string
}

// Pipeline implements the review labeling workflow: filter, featurize, label,
// with a snapshot table written at every stage boundary. Stage order is
// fixed: dedup before language filtering before link flagging before feature
// extraction before labeling.
type Pipeline struct {
	source    ports.ReviewSource
	store     ports.TableStore
	extractor *features.Extractor
	languages *cleaning.LanguageFilter
	logger    *slog.Logger
	outputDir string
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:    deps.Source,
		store:     deps.Store,
		extractor: deps.Extractor,
		languages: deps.Languages,
		logger:    deps.Logger,
		outputDir: deps.OutputDir,
	}
}

// StagePaths names the snapshot tables for one genre under the dataset root.
type StagePaths struct {
	Loaded  string
	Cleaned string
	TierOne string
	TierTwo string
	Labeled string
}

// NewStagePaths mirrors the dataset layout of the upstream dumps.
func NewStagePaths(root, genre string) StagePaths {
	name := func(suffix string) string {
		return fmt.Sprintf("goodreads_reviews_%s_%s.csv", genre, suffix)
	}
	return StagePaths{
		Loaded:  filepath.Join(root, "loaded_and_cleaned", name("loaded")),
		Cleaned: filepath.Join(root, "cleaned", name("clean")),
		TierOne: filepath.Join(root, "feature_engineered", name("tier_one")),
		TierTwo: filepath.Join(root, "feature_engineered", name("tier_two")),
		Labeled: filepath.Join(root, "processed_and_labeled_for_training", name("substantiveness")),
	}
}

// Run executes the full batch: load, clean, featurize, label, persist.
func (p *Pipeline) Run(ctx context.Context) error {
	if p.source == nil {
		return fmt.Errorf("review source is not configured")
	}

	logger := p.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("run_id", uuid.NewString())

	reviews, err := p.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load reviews: %w", err)
	}
	logger.Info("loaded raw reviews", "rows", len(reviews))

	paths := NewStagePaths(p.outputDir, genreOf(reviews))

	if err := p.store.WriteTable(paths.Loaded, domain.BaseColumns, reviews); err != nil {
		return fmt.Errorf("persist loaded table: %w", err)
	}

	valid := cleaning.FilterValid(reviews)
	logger.Info("filtered empty or invalid reviews", "before", len(reviews), "after", len(valid))

	unique := cleaning.DropDuplicates(valid)
	logger.Info("dropped duplicate reviews", "before", len(valid), "after", len(unique))

	english := p.languages.Apply(unique)
	logger.Info("filtered to English reviews", "before", len(unique), "after", len(english))

	if err := p.store.WriteTable(paths.Cleaned, domain.BaseColumns, english); err != nil {
		return fmt.Errorf("persist cleaned table: %w", err)
	}

	flagged := features.FlagLinks(english)
	logger.Info("flagged link-containing reviews", "rows", len(flagged), "with_links", features.CountFlagged(flagged))

	if err := p.store.WriteTable(paths.TierOne, domain.TierOneColumns, flagged); err != nil {
		return fmt.Errorf("persist tier-one table: %w", err)
	}

	annotated := p.extractor.AnnotateBatch(flagged)
	logger.Info("computed text statistics", "rows", len(annotated))

	if err := p.store.WriteTable(paths.TierTwo, domain.TierTwoColumns, annotated); err != nil {
		return fmt.Errorf("persist tier-two table: %w", err)
	}

	// Link-flagged rows carry promotional noise and are excluded before any
	// label is assigned; the tier-one/tier-two snapshots keep them auditable.
	linkFree := excludeLinked(annotated)
	logger.Info("removed link-containing reviews", "before", len(annotated), "after", len(linkFree))

	derived := features.AddInteractionFeaturesBatch(linkFree)
	labeled := labeling.LabelBatch(derived)
	logLabelDistribution(logger, labeled)

	if err := p.store.WriteTable(paths.Labeled, domain.LabeledColumns, labeled); err != nil {
		return fmt.Errorf("persist labeled table: %w", err)
	}

	logger.Info("pipeline finished", "labeled_rows", len(labeled), "output", paths.Labeled)
	return nil
}

func excludeLinked(reviews []domain.Review) []domain.Review {
	kept := make([]domain.Review, 0, len(reviews))
	for _, review := range reviews {
		if review.ContainsLink {
			continue
		}
		kept = append(kept, review)
	}
	return kept
}

func genreOf(reviews []domain.Review) string {
	for _, review := range reviews {
		if review.Genre != "" {
			return review.Genre
		}
	}
	return "unknown"
}

func logLabelDistribution(logger *slog.Logger, reviews []domain.Review) {
	distribution := labeling.Distribution(reviews)

	classes := make([]int, 0, len(distribution))
	for class := range distribution {
		classes = append(classes, class)
	}
	sort.Ints(classes)

	args := []interface{}{"rows", len(reviews)}
	for _, class := range classes {
		args = append(args, fmt.Sprintf("label_%d", class), distribution[class])
	}
	logger.Info("assigned substantiveness labels", args...)
}
