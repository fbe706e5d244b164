package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports/mocks"
	"go.trai.ch/nexon/internal/engine/registry"
	"go.trai.ch/nexon/internal/engine/resolver"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func spec(t *testing.T, name, version string, requires ...string) *domain.PackageSpec {
	t.Helper()
	v, err := domain.ParseVersion(version)
	require.NoError(t, err)
	return &domain.PackageSpec{Name: name, Version: v, Requires: requires}
}

func newResolver(t *testing.T, specs []*domain.PackageSpec, opts ...resolver.Option) *resolver.Resolver {
	t.Helper()
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockPackageCatalog(ctrl)
	catalog.EXPECT().List(gomock.Any()).Return(specs, nil).AnyTimes()
	return resolver.New(registry.New(catalog, mocks.NewMockLogger(ctrl)), opts...)
}

func diamond(t *testing.T) []*domain.PackageSpec {
	t.Helper()
	return []*domain.PackageSpec{
		spec(t, "A", "1.0.0", "B", "C"),
		spec(t, "B", "1.0.0", "D>=1.0"),
		spec(t, "C", "2.0.0", "D"),
		spec(t, "D", "1.2.0"),
		spec(t, "D", "0.9.0"),
	}
}

func TestResolve_HighestSatisfying(t *testing.T) {
	r := newResolver(t, []*domain.PackageSpec{
		spec(t, "A", "1.0.0"),
		spec(t, "A", "1.5.0"),
		spec(t, "A", "2.0.0"),
	})

	tests := []struct {
		requirement string
		want        domain.ResolvedRef
	}{
		{"A>=1.0,<2.0", "A-1.5.0"},
		{"A", "A-2.0.0"},
		{"A-1.0.0", "A-1.0.0"},
		{"A==1.0.0", "A-1.0.0"},
		{"A!=2.0.0", "A-1.5.0"},
		{"A~=1.0", "A-1.5.0"},
		{"A<1.5", "A-1.0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.requirement, func(t *testing.T) {
			got, err := r.Resolve(context.Background(), tt.requirement)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	r := newResolver(t, []*domain.PackageSpec{spec(t, "A", "1.0.0")})

	_, err := r.Resolve(context.Background(), "Z")
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)

	_, err = r.Resolve(context.Background(), "A>=2.0")
	require.ErrorIs(t, err, domain.ErrNoMatchingVersion)
	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "A>=2.0", zErr.Metadata()["requirement"])

	_, err = r.Resolve(context.Background(), "A>>1")
	assert.ErrorIs(t, err, domain.ErrInvalidSpecifier)
}

func TestResolveAll_Diamond(t *testing.T) {
	r := newResolver(t, diamond(t))

	refs, err := r.ResolveAll(context.Background(), []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, []domain.ResolvedRef{"A-1.0.0", "B-1.0.0", "C-2.0.0", "D-1.2.0"}, refs)
}

func TestResolveAll_FailureIsAtomic(t *testing.T) {
	r := newResolver(t, []*domain.PackageSpec{
		spec(t, "A", "1.0.0", "B"),
		spec(t, "B", "1.0.0", "missing>=1"),
	})

	refs, err := r.ResolveAll(context.Background(), []string{"A"})
	require.ErrorIs(t, err, domain.ErrPackageNotFound)
	assert.Nil(t, refs)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "B-1.0.0", zErr.Metadata()["required_by"])
}

func TestBuildGraph_DirectChildren(t *testing.T) {
	r := newResolver(t, diamond(t))

	graph, err := r.BuildGraph(context.Background(), []string{"A"})
	require.NoError(t, err)

	assert.Equal(t, map[domain.ResolvedRef][]domain.ResolvedRef{
		"A-1.0.0": {"B-1.0.0", "C-2.0.0"},
		"B-1.0.0": {"D-1.2.0"},
		"C-2.0.0": {"D-1.2.0"},
		"D-1.2.0": {},
	}, graph.Adjacency())
	assert.Equal(t, []domain.ResolvedRef{"A-1.0.0"}, graph.Roots())
}

func TestBuildGraph_CycleTerminates(t *testing.T) {
	r := newResolver(t, []*domain.PackageSpec{
		spec(t, "A", "1.0.0", "B"),
		spec(t, "B", "1.0.0", "A"),
	})

	graph, err := r.BuildGraph(context.Background(), []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, 2, graph.Len())

	_, err = graph.TopologicalOrder()
	assert.ErrorIs(t, err, domain.ErrCycleDetected)
}

func TestResolveAll_CrossBranchVersions(t *testing.T) {
	specs := []*domain.PackageSpec{
		spec(t, "A", "1.0.0", "X==1.0.0"),
		spec(t, "B", "1.0.0", "X==2.0.0"),
		spec(t, "X", "1.0.0"),
		spec(t, "X", "2.0.0"),
	}

	refs, err := newResolver(t, specs).ResolveAll(context.Background(), []string{"A", "B"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.ResolvedRef{"A-1.0.0", "B-1.0.0", "X-1.0.0", "X-2.0.0"}, refs)

	_, err = newResolver(t, specs, resolver.WithStrict(true)).ResolveAll(context.Background(), []string{"A", "B"})
	require.ErrorIs(t, err, domain.ErrVersionConflict)
	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "X", zErr.Metadata()["package"])
}
