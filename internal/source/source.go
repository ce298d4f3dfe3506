package source

import (
	"context"
	"fmt"

	"ReviewLabeler/internal/domain"
)

// Request carries all parameters required to load a raw review batch.
type Request struct {
	Path string
	// Genre overrides the tag derived from the filename; empty means derive.
	Genre string
}

// Source captures a single input-format implementation (JSON Lines, etc.).
type Source interface {
	Name() string
	Load(ctx context.Context, req Request) ([]domain.Review, error)
}

// Registry keeps a mapping from format names to their implementations.
type Registry struct {
	sources map[string]Source
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: map[string]Source{}}
}

// Register adds or replaces a source implementation.
func (r *Registry) Register(src Source) {
	if r.sources == nil {
		r.sources = map[string]Source{}
	}
	r.sources[src.Name()] = src
}

// Resolve returns a source by format name or an error if it is absent.
func (r *Registry) Resolve(name string) (Source, error) {
	if src, ok := r.sources[name]; ok {
		return src, nil
	}
	return nil, fmt.Errorf("source format %s is not registered", name)
}
