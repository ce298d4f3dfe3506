package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"ReviewLabeler/internal/config"
	"ReviewLabeler/internal/domain"
	"ReviewLabeler/internal/ports"
	"ReviewLabeler/internal/source"
)

// FormatSource implements ReviewSource via registered format strategies.
type FormatSource struct {
	registry *source.Registry
	input    config.InputConfig
	logger   *slog.Logger
}

var _ ports.ReviewSource = (*FormatSource)(nil)

// NewFormatSource wires the source registry with the configured input.
func NewFormatSource(reg *source.Registry, input config.InputConfig, log *slog.Logger) *FormatSource {
	return &FormatSource{
		registry: reg,
		input:    input,
		logger:   log,
	}
}

// Load resolves the configured format and executes its loader.
func (s *FormatSource) Load(ctx context.Context) ([]domain.Review, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("source registry is not configured")
	}

	strategy, err := s.registry.Resolve(s.input.Format)
	if err != nil {
		return nil, fmt.Errorf("input %s: %w", s.input.Path, err)
	}

	reviews, err := strategy.Load(ctx, source.Request{
		Path:  s.input.Path,
		Genre: s.input.Genre,
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.input.Path, err)
	}

	s.debug("source produced reviews", "path", s.input.Path, "count", len(reviews))
	return reviews, nil
}

func (s *FormatSource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
