package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestDependencyGraph_TopologicalOrder(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.AddRoot("A-1")
	g.SetChildren("A-1", []domain.ResolvedRef{"B-1", "C-1"})
	g.SetChildren("B-1", []domain.ResolvedRef{"D-1"})
	g.SetChildren("C-1", []domain.ResolvedRef{"D-1"})
	g.SetChildren("D-1", nil)

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []domain.ResolvedRef{"D-1", "B-1", "C-1", "A-1"}, order)

	assert.Equal(t, []domain.ResolvedRef{"A-1", "B-1", "C-1", "D-1"}, g.Nodes())
	assert.Equal(t, []domain.ResolvedRef{}, g.Children("D-1"))
	assert.Equal(t, 4, g.Len())
}

func TestDependencyGraph_Cycle(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.SetChildren("A-1", []domain.ResolvedRef{"B-1"})
	g.SetChildren("B-1", []domain.ResolvedRef{"A-1"})

	_, err := g.TopologicalOrder()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCycleDetected))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "A-1 -> B-1 -> A-1", zErr.Metadata()["cycle"])
}

func TestDependencyGraph_All(t *testing.T) {
	g := domain.NewDependencyGraph()
	g.SetChildren("A-1", []domain.ResolvedRef{"B-1"})
	g.SetChildren("B-1", nil)

	var keys []domain.ResolvedRef
	for ref := range g.All() {
		keys = append(keys, ref)
	}
	assert.Equal(t, []domain.ResolvedRef{"A-1", "B-1"}, keys)
}
