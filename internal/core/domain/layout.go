package domain

import (
	"os"
	"path"
	"path/filepath"
)

const (
	// DirPerm is the default permission for directories created in the store.
	DirPerm = 0o750
	// FilePerm is the default permission for documents written to the store.
	FilePerm = 0o644

	// DefaultBaseDirName is the directory under the user's home used when no base dir is configured.
	DefaultBaseDirName = ".nexon"

	// PackagesPrefix is the key prefix for package specs.
	PackagesPrefix = "packages"
	// EnvironmentsPrefix is the key prefix for environments and their lockfiles.
	EnvironmentsPrefix = "environments"
	// LayersPrefix is the key prefix for configuration layers.
	LayersPrefix = "layers"
	// RecipesPrefix is the key prefix for recipes.
	RecipesPrefix = "recipes"
	// StorePrefix is the directory holding the embedded key-value store.
	StorePrefix = "store"

	// PackageFile is the document name of a package spec inside its version directory.
	PackageFile = "package.yaml"
	// DocumentExt is the extension of every stored document.
	DocumentExt = ".yaml"
	// LockSuffix marks lockfile documents.
	LockSuffix = ".lock"
	// ConfigFileName is the settings file read from the base dir.
	ConfigFileName = "config.yaml"
)

// PackageKey returns the storage key of a package spec.
func PackageKey(name, version string) string {
	return path.Join(PackagesPrefix, name, version, PackageFile)
}

// PackageDir returns the storage key of a package's version directory.
func PackageDir(name, version string) string {
	return path.Join(PackagesPrefix, name, version)
}

// EnvironmentKey returns the storage key of an environment document.
func EnvironmentKey(name string) string {
	return path.Join(EnvironmentsPrefix, name+DocumentExt)
}

// LockfileKey returns the storage key of an environment's lockfile.
func LockfileKey(name string) string {
	return path.Join(EnvironmentsPrefix, name+LockSuffix+DocumentExt)
}

// LayerKey returns the storage key of a layer. The name is ignored for the global level.
func LayerKey(level LayerLevel, name string) string {
	if level == LevelGlobal {
		return path.Join(LayersPrefix, string(LevelGlobal)+DocumentExt)
	}
	return path.Join(LayersPrefix, string(level), name+DocumentExt)
}

// RecipeKey returns the storage key of a recipe.
func RecipeKey(name string) string {
	return path.Join(RecipesPrefix, name+DocumentExt)
}

// DefaultBaseDir returns ~/.nexon, falling back to a relative .nexon when home is unknown.
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultBaseDirName
	}
	return filepath.Join(home, DefaultBaseDirName)
}

// PackageRoot returns the on-disk root of a package version under baseDir.
func PackageRoot(baseDir, name, version string) string {
	return filepath.Join(baseDir, PackagesPrefix, name, version)
}
