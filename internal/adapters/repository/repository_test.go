package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nexon/internal/adapters/repository"
	"go.trai.ch/nexon/internal/adapters/store"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newFileStore(t *testing.T) (*store.FileStore, string) {
	t.Helper()
	root := t.TempDir()
	s, err := store.NewFileStore(root)
	require.NoError(t, err)
	return s, root
}

func TestCatalog_SaveListGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	s, root := newFileStore(t)
	catalog := repository.NewCatalog(s, mockLogger, root)
	ctx := context.Background()

	v, err := domain.ParseVersion("1.5.0")
	require.NoError(t, err)
	spec := &domain.PackageSpec{
		Name:     "A",
		Version:  v,
		Requires: []string{"B>=1.0"},
		Env:      map[string]string{"PATH": "{root}/bin:{PATH}"},
		Build:    &domain.BuildSpec{Commands: []string{"make -C {root}"}},
		Tags:     []string{"dcc", "dcc"},
	}
	require.NoError(t, catalog.Save(ctx, spec))

	specs, err := catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, domain.ResolvedRef("A-1.5.0"), specs[0].Ref())
	assert.Equal(t, []string{"B>=1.0"}, specs[0].Requires)
	assert.Equal(t, []string{"dcc"}, specs[0].Tags)
	require.NotNil(t, specs[0].Build)
	assert.Equal(t, []string{"make -C {root}"}, specs[0].Build.Commands)

	got, err := catalog.Get(ctx, "A", "1.5.0")
	require.NoError(t, err)
	assert.Equal(t, "{root}/bin:{PATH}", got.Env["PATH"])

	_, err = catalog.Get(ctx, "A", "9.9.9")
	assert.True(t, errors.Is(err, domain.ErrPackageNotFound))

	ok, err := catalog.Exists(ctx, "A", "1.5.0")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, filepath.Join(root, "packages", "A", "1.5.0"), catalog.Root("A", "1.5.0"))
}

func TestCatalog_ListSkipsInvalidDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	s, root := newFileStore(t)
	catalog := repository.NewCatalog(s, mockLogger, root)

	require.NoError(t, s.Put("packages/A/1.0.0/package.yaml", []byte("name: A\nversion: 1.0.0\n")))
	require.NoError(t, s.Put("packages/B/1.0.0/package.yaml", []byte("name: B\nversion: not-a-version\n")))
	require.NoError(t, s.Put("packages/C/1.0.0/package.yaml", []byte("name: Other\nversion: 1.0.0\n")))
	require.NoError(t, s.Put("packages/D/1.0.0/package.yaml", []byte("name: [unclosed\n")))
	require.NoError(t, s.Put("packages/A/1.0.0/README.md", []byte("docs")))

	mockLogger.EXPECT().Warn(gomock.Any()).Times(3)

	specs, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "A", specs[0].Name)
}

func TestEnvironments_RoundTripAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	s, _ := newFileStore(t)
	repo := repository.NewEnvironments(s, mockLogger)
	ctx := context.Background()

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	env := domain.NewEnvironment("shot01", "comp", created)
	env.Add("A-1.0.0", "B-2.0.0")
	require.NoError(t, repo.Save(ctx, env))
	require.NoError(t, repo.SaveLockfile(ctx, env))
	require.NoError(t, repo.Save(ctx, domain.NewEnvironment("anim", "", created)))

	loaded, err := repo.Load(ctx, "shot01")
	require.NoError(t, err)
	assert.Equal(t, env, loaded)

	envs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, envs, 2)
	assert.Equal(t, "anim", envs[0].Name)
	assert.Equal(t, "shot01", envs[1].Name)

	lock, err := repo.LoadLockfile(ctx, "shot01")
	require.NoError(t, err)
	assert.Equal(t, env.Packages, lock.Packages)

	_, err = repo.Load(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrEnvironmentNotFound))

	_, err = repo.LoadLockfile(ctx, "anim")
	assert.True(t, errors.Is(err, domain.ErrLockfileNotFound))
}

func TestEnvironments_AcceptsNaiveTimestamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _ := newFileStore(t)
	repo := repository.NewEnvironments(s, mocks.NewMockLogger(ctrl))

	doc := "name: legacy\ncreated_at: '2023-11-02T09:30:00.123456'\nrole: lighting\npackages:\n  - A-1.0.0\n  - A-1.0.0\n"
	require.NoError(t, s.Put("environments/legacy.yaml", []byte(doc)))

	env, err := repo.Load(context.Background(), "legacy")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 11, 2, 9, 30, 0, 123456000, time.UTC), env.CreatedAt)
	assert.Equal(t, []domain.ResolvedRef{"A-1.0.0"}, env.Packages)
}

func TestEnvironments_CreatedAtSurvivesRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _ := newFileStore(t)
	repo := repository.NewEnvironments(s, mocks.NewMockLogger(ctrl))
	ctx := context.Background()

	env := domain.NewEnvironment("shot01", "fx", time.Date(2024, 5, 1, 12, 0, 0, 123456789, time.UTC))
	require.NoError(t, repo.Save(ctx, env))

	loaded, err := repo.Load(ctx, "shot01")
	require.NoError(t, err)
	assert.Equal(t, env.CreatedAt, loaded.CreatedAt)
}

func TestEnvironments_RejectsAliasedNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _ := newFileStore(t)
	repo := repository.NewEnvironments(s, mocks.NewMockLogger(ctrl))
	ctx := context.Background()

	env := domain.NewEnvironment("shot01", "", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(ctx, env))
	require.NoError(t, repo.SaveLockfile(ctx, env))

	for _, name := range []string{"shot01.lock", "../recipes/r1", "", ".."} {
		_, err := repo.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrInvalidEnvironmentName, name)
		_, err = repo.LoadLockfile(ctx, name)
		assert.ErrorIs(t, err, domain.ErrInvalidEnvironmentName, name)
		_, err = repo.Exists(ctx, name)
		assert.ErrorIs(t, err, domain.ErrInvalidEnvironmentName, name)
	}

	bad := env.Clone()
	bad.Name = "shot01.lock"
	assert.ErrorIs(t, repo.Save(ctx, bad), domain.ErrInvalidEnvironmentName)
	assert.ErrorIs(t, repo.SaveLockfile(ctx, bad), domain.ErrInvalidEnvironmentName)
}

func TestEnvironments_RejectsMismatchedDocumentName(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)
	s, _ := newFileStore(t)
	repo := repository.NewEnvironments(s, mockLogger)

	require.NoError(t, s.Put("environments/shot02.yaml", []byte("name: shot01\nrole: fx\npackages: []\n")))

	_, err := repo.Load(context.Background(), "shot02")
	require.ErrorIs(t, err, domain.ErrInvalidDocument)
	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "shot01", zErr.Metadata()["document_name"])

	envs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, envs)
}

func TestLayers_SaveLoadList(t *testing.T) {
	s, _ := newFileStore(t)
	repo := repository.NewLayers(s)
	ctx := context.Background()

	_, ok, err := repo.Load(ctx, domain.LevelTeam, "fx")
	require.NoError(t, err)
	assert.False(t, ok)

	fx := domain.Fragment{Role: "fx", Packages: []domain.ResolvedRef{"P2-2.0.0"}}
	require.NoError(t, repo.Save(ctx, domain.LevelTeam, "fx", fx))
	require.NoError(t, repo.Save(ctx, domain.LevelTeam, "anim", domain.Fragment{Role: "anim"}))
	require.NoError(t, repo.Save(ctx, domain.LevelGlobal, "", domain.Fragment{Env: map[string]string{"STUDIO": "nx"}}))

	got, ok, err := repo.Load(ctx, domain.LevelTeam, "fx")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, fx, got)

	layers, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.LayerLevel][]string{
		domain.LevelGlobal:  {"global"},
		domain.LevelTeam:    {"anim", "fx"},
		domain.LevelProject: {},
		domain.LevelUser:    {},
	}, layers)
}

func TestRecipes_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _ := newFileStore(t)
	repo := repository.NewRecipes(s, mocks.NewMockLogger(ctrl))
	ctx := context.Background()

	recipe := &domain.Recipe{
		Name:      "fx-heavy",
		Base:      "shot01",
		Overrides: []domain.ResolvedRef{"houdini-20.5.0"},
		Env:       map[string]string{"HOUDINI_MAXTHREADS": "32"},
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, recipe))

	got, err := repo.Load(ctx, "fx-heavy")
	require.NoError(t, err)
	assert.Equal(t, recipe, got)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	_, err = repo.Load(ctx, "nope")
	assert.True(t, errors.Is(err, domain.ErrRecipeNotFound))
}
