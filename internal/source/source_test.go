package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ReviewLabeler/internal/domain"
)

type fakeSource struct {
	name string
}

func (s fakeSource) Name() string { return s.name }

func (s fakeSource) Load(context.Context, Request) ([]domain.Review, error) {
	return nil, nil
}

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(fakeSource{name: "jsonl"})

	src, err := registry.Resolve("jsonl")
	require.NoError(t, err)
	assert.Equal(t, "jsonl", src.Name())

	_, err = registry.Resolve("parquet")
	assert.Error(t, err)
}

func TestRegistryRegisterReplaces(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(fakeSource{name: "jsonl"})
	registry.Register(fakeSource{name: "jsonl"})

	src, err := registry.Resolve("jsonl")
	require.NoError(t, err)
	assert.NotNil(t, src)
}
