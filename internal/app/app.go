package app

import (
	"context"
	"log/slog"

	"ReviewLabeler/internal/cleaning"
	"ReviewLabeler/internal/config"
	"ReviewLabeler/internal/features"
	"ReviewLabeler/internal/infrastructure/ingest"
	"ReviewLabeler/internal/infrastructure/langdetect"
	"ReviewLabeler/internal/infrastructure/nlp"
	"ReviewLabeler/internal/infrastructure/storage"
	"ReviewLabeler/internal/logging"
	"ReviewLabeler/internal/source"
	"ReviewLabeler/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance. The NLP analyzer and language
// detector are constructed once here and shared read-only by every row
// computation.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := source.NewRegistry()
	registry.Register(ingest.NewJSONLSource(baseLogger.With("component", "source.jsonl")))

	reviewSource := ingest.NewFormatSource(registry, cfg.Input, baseLogger.With("component", "source"))

	analyzer := nlp.NewProseAnalyzer(baseLogger.With("component", "nlp"))
	languages := cleaning.NewLanguageFilter(langdetect.New(), baseLogger.With("component", "language-filter"))
	store := storage.NewCSVStore(baseLogger.With("component", "storage"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:    reviewSource,
		Store:     store,
		Extractor: features.NewExtractor(analyzer),
		Languages: languages,
		Logger:    baseLogger.With("component", "pipeline"),
		OutputDir: cfg.Output.Dir,
	})
	return &Application{cfg: cfg, pipeline: pipeline}
}

// Run performs a single batch execution.
func (a *Application) Run(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}
	return a.pipeline.Run(ctx)
}
