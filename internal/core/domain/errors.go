package domain

import "go.trai.ch/zerr"

var (
	// ErrPackageNotFound is returned when no package with the requested name exists in the registry.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrNoMatchingVersion is returned when a package exists but none of its versions satisfy a constraint.
	ErrNoMatchingVersion = zerr.New("no matching version")

	// ErrInvalidRequirement is returned when a requirement string or its version cannot be parsed.
	ErrInvalidRequirement = zerr.New("invalid requirement")

	// ErrInvalidSpecifier is returned when an operator clause of a requirement is malformed.
	ErrInvalidSpecifier = zerr.New("invalid version specifier")

	// ErrInvalidVersion is returned when a version string is not a valid semantic version.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidRef is returned when a resolved reference cannot be split into name and version.
	ErrInvalidRef = zerr.New("invalid package reference")

	// ErrVersionConflict is returned in strict mode when one package name resolves to two versions.
	ErrVersionConflict = zerr.New("conflicting versions resolved for package")

	// ErrEnvironmentNotFound is returned when the named environment does not exist.
	ErrEnvironmentNotFound = zerr.New("environment not found")

	// ErrInvalidEnvironmentName is returned when an environment name is empty or not a single path segment.
	ErrInvalidEnvironmentName = zerr.New("invalid environment name")

	// ErrLockfileNotFound is returned when an environment has never been locked.
	ErrLockfileNotFound = zerr.New("lockfile not found")

	// ErrLayerLevelInvalid is returned when a layer level is not one of global, team, project or user.
	ErrLayerLevelInvalid = zerr.New("invalid layer level")

	// ErrLayerNameRequired is returned when a non-global layer is created without a name.
	ErrLayerNameRequired = zerr.New("layer name is required")

	// ErrRecipeNotFound is returned when the named recipe does not exist.
	ErrRecipeNotFound = zerr.New("recipe not found")

	// ErrPackageAlreadyExists is returned when scaffolding a package identity that is already stored.
	ErrPackageAlreadyExists = zerr.New("package already exists")

	// ErrInvalidPackageSpec is returned when a stored package document fails validation.
	ErrInvalidPackageSpec = zerr.New("invalid package spec")

	// ErrInvalidDocument is returned when a stored document cannot be decoded.
	ErrInvalidDocument = zerr.New("invalid document")

	// ErrCycleDetected is returned when a cycle is detected in the package dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrBuildFailed is returned when a package build command exits unsuccessfully.
	ErrBuildFailed = zerr.New("package build failed")

	// ErrDocumentNotFound is returned by document stores when a key does not exist.
	ErrDocumentNotFound = zerr.New("document not found")

	// ErrInvalidKey is returned when a storage key escapes the store root or is empty.
	ErrInvalidKey = zerr.New("invalid storage key")

	// ErrStoreReadFailed is returned when reading from the document store fails.
	ErrStoreReadFailed = zerr.New("failed to read from store")

	// ErrStoreWriteFailed is returned when writing to the document store fails.
	ErrStoreWriteFailed = zerr.New("failed to write to store")

	// ErrStoreOpenFailed is returned when the document store cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open store")

	// ErrStoreMarshalFailed is returned when encoding a document fails.
	ErrStoreMarshalFailed = zerr.New("failed to marshal document")

	// ErrConfigLoadFailed is returned when the settings cannot be loaded.
	ErrConfigLoadFailed = zerr.New("failed to load settings")

	// ErrInvalidConfig is returned when the loaded settings fail validation.
	ErrInvalidConfig = zerr.New("invalid settings")

	// ErrUnknownStoreBackend is returned when the configured store backend is not supported.
	ErrUnknownStoreBackend = zerr.New("unknown store backend")

	// ErrUnknownPlugin is returned when an unknown built-in plugin is enabled.
	ErrUnknownPlugin = zerr.New("unknown plugin")
)
