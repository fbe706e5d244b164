package ports

import (
	"context"

	"go.trai.ch/nexon/internal/core/domain"
)

// PackageCatalog reads and writes package specs.
//
//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type PackageCatalog interface {
	// List decodes every stored package spec. Specs that fail to decode are skipped and logged.
	List(ctx context.Context) ([]*domain.PackageSpec, error)

	// Get returns one spec, or domain.ErrPackageNotFound.
	Get(ctx context.Context, name, version string) (*domain.PackageSpec, error)

	// Save writes the package spec, overwriting any previous version of the same identity.
	Save(ctx context.Context, spec *domain.PackageSpec) error

	// Exists reports whether a spec with this identity is stored.
	Exists(ctx context.Context, name, version string) (bool, error)

	// Root returns the on-disk root directory of the package version.
	Root(name, version string) string
}

// EnvironmentStore persists environments and their lockfiles.
type EnvironmentStore interface {
	// Load returns the environment, or domain.ErrEnvironmentNotFound.
	Load(ctx context.Context, name string) (*domain.Environment, error)

	// Save writes the environment document.
	Save(ctx context.Context, env *domain.Environment) error

	// Exists reports whether the environment is stored.
	Exists(ctx context.Context, name string) (bool, error)

	// List returns every environment, excluding lockfiles, sorted by name.
	List(ctx context.Context) ([]*domain.Environment, error)

	// SaveLockfile writes env under its lockfile identity.
	SaveLockfile(ctx context.Context, env *domain.Environment) error

	// LoadLockfile returns the lockfile, or domain.ErrLockfileNotFound.
	LoadLockfile(ctx context.Context, name string) (*domain.Environment, error)
}

// LayerStore persists configuration layers.
type LayerStore interface {
	// Load returns the fragment and whether it exists. Missing layers are not an error.
	Load(ctx context.Context, level domain.LayerLevel, name string) (domain.Fragment, bool, error)

	// Save overwrites the layer wholesale.
	Save(ctx context.Context, level domain.LayerLevel, name string, fragment domain.Fragment) error

	// List returns the stored layer names per level.
	List(ctx context.Context) (map[domain.LayerLevel][]string, error)
}

// RecipeStore persists recipes.
type RecipeStore interface {
	// Load returns the recipe, or domain.ErrRecipeNotFound.
	Load(ctx context.Context, name string) (*domain.Recipe, error)

	// Save overwrites the recipe.
	Save(ctx context.Context, recipe *domain.Recipe) error

	// List returns every recipe sorted by name.
	List(ctx context.Context) ([]*domain.Recipe, error)
}
