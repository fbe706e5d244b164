package config

// Store backends.
const (
	StoreFile   = "file"
	StoreBadger = "badger"
)

// Settings is the process-wide configuration of nexon.
type Settings struct {
	// BaseDir is the root of the package, environment and layer documents.
	BaseDir string `mapstructure:"base_dir" validate:"required"`

	// Store selects the document store backend.
	Store string `mapstructure:"store" validate:"oneof=file badger"`

	// User is the default user layer name.
	User string `mapstructure:"user" validate:"required"`

	Log      LogSettings      `mapstructure:"log"`
	Resolver ResolverSettings `mapstructure:"resolver"`

	// Plugins lists the built-in hook plugins to enable.
	Plugins []string `mapstructure:"plugins" validate:"dive,required"`
}

// LogSettings configures the logger.
type LogSettings struct {
	JSON bool `mapstructure:"json"`
}

// ResolverSettings configures dependency resolution.
type ResolverSettings struct {
	// Strict fails resolution when one package name resolves to two versions.
	Strict bool `mapstructure:"strict"`
}
