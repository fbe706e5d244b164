package registry_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports/mocks"
	"go.trai.ch/nexon/internal/engine/registry"
	"go.uber.org/mock/gomock"
)

func spec(t *testing.T, name, version string, requires ...string) *domain.PackageSpec {
	t.Helper()
	v, err := domain.ParseVersion(version)
	require.NoError(t, err)
	return &domain.PackageSpec{Name: name, Version: v, Requires: requires}
}

func TestRegistry_ListVersions(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockPackageCatalog(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	catalog.EXPECT().List(gomock.Any()).Return([]*domain.PackageSpec{
		spec(t, "A", "1.0.0"),
		spec(t, "A", "2.0.0"),
		spec(t, "A", "1.5.0"),
		spec(t, "B", "0.1.0"),
	}, nil).Times(1)

	reg := registry.New(catalog, logger)

	versions, err := reg.ListVersions(context.Background(), "A")
	require.NoError(t, err)
	got := make([]string, len(versions))
	for i, v := range versions {
		got[i] = v.String()
	}
	assert.Equal(t, []string{"2.0.0", "1.5.0", "1.0.0"}, got)

	_, err = reg.ListVersions(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)

	idx, err := reg.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, idx.Names())
	assert.Equal(t, 4, idx.Len())
}

func TestRegistry_LoadOnceConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockPackageCatalog(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	catalog.EXPECT().List(gomock.Any()).Return([]*domain.PackageSpec{spec(t, "A", "1.0.0")}, nil).Times(1)

	reg := registry.New(catalog, logger)

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			idx, err := reg.Load(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, 1, idx.Len())
		})
	}
	wg.Wait()
}

func TestRegistry_FailedLoadIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockPackageCatalog(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	boom := errors.New("disk on fire")
	gomock.InOrder(
		catalog.EXPECT().List(gomock.Any()).Return(nil, boom),
		catalog.EXPECT().List(gomock.Any()).Return([]*domain.PackageSpec{spec(t, "A", "1.0.0")}, nil),
	)

	reg := registry.New(catalog, logger)

	_, err := reg.Load(context.Background())
	require.ErrorIs(t, err, boom)

	idx, err := reg.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, idx.Len())
}

func TestRegistry_SkipsDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockPackageCatalog(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	first := spec(t, "A", "1.0.0")
	catalog.EXPECT().List(gomock.Any()).Return([]*domain.PackageSpec{
		first,
		spec(t, "A", "1.0.0"),
		{Name: "broken"},
	}, nil)
	logger.EXPECT().Warn(gomock.Any()).Times(2)

	reg := registry.New(catalog, logger)

	got, err := reg.Spec(context.Background(), "A-1.0.0")
	require.NoError(t, err)
	assert.Same(t, first, got)

	_, err = reg.Spec(context.Background(), "broken")
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
	_, err = reg.Spec(context.Background(), "A-9.9.9")
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestRegistry_SkipsEquivalentVersions(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockPackageCatalog(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	short := spec(t, "A", "1.0")
	catalog.EXPECT().List(gomock.Any()).Return([]*domain.PackageSpec{
		short,
		spec(t, "A", "1.0.0"),
		spec(t, "A", "2.0.0"),
	}, nil)
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	reg := registry.New(catalog, logger)

	versions, err := reg.ListVersions(context.Background(), "A")
	require.NoError(t, err)
	got := make([]string, len(versions))
	for i, v := range versions {
		got[i] = v.String()
	}
	assert.Equal(t, []string{"2.0.0", "1.0"}, got)

	_, err = reg.Spec(context.Background(), "A-1.0.0")
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
	kept, err := reg.Spec(context.Background(), "A-1.0")
	require.NoError(t, err)
	assert.Same(t, short, kept)
}

func TestRegistry_SharedLoadSurvivesCancelledCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockPackageCatalog(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	catalog.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]*domain.PackageSpec, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []*domain.PackageSpec{spec(t, "A", "1.0.0")}, nil
	}).Times(1)

	reg := registry.New(catalog, logger)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	var firstErr error
	wg.Go(func() {
		_, firstErr = reg.Load(ctx)
	})
	<-started

	var secondErr error
	var secondLen int
	wg.Go(func() {
		idx, err := reg.Load(context.Background())
		secondErr = err
		if idx != nil {
			secondLen = idx.Len()
		}
	})

	cancel()
	close(release)
	wg.Wait()

	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.Equal(t, 1, secondLen)
}
