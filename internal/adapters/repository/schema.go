package repository

// PackageDTO is the YAML layout of packages/<name>/<version>/package.yaml.
type PackageDTO struct {
	Name        string            `yaml:"name" validate:"required"`
	Version     string            `yaml:"version" validate:"required"`
	Description string            `yaml:"description"`
	Requires    []string          `yaml:"requires" validate:"dive,required"`
	Env         map[string]string `yaml:"env"`
	Commands    map[string]string `yaml:"commands"`
	Build       *BuildDTO         `yaml:"build,omitempty"`
	Tags        []string          `yaml:"tags"`
	Platforms   []string          `yaml:"platforms"`
}

// BuildDTO is the build block of a package document.
type BuildDTO struct {
	Env      map[string]string `yaml:"env,omitempty"`
	Commands []string          `yaml:"commands,omitempty" validate:"dive,required"`
}

// EnvironmentDTO is the YAML layout of environments/<name>.yaml and its lockfile.
type EnvironmentDTO struct {
	Name        string            `yaml:"name" validate:"required"`
	CreatedAt   string            `yaml:"created_at"`
	Description string            `yaml:"description"`
	Role        string            `yaml:"role"`
	Packages    []string          `yaml:"packages" validate:"dive,required"`
	Env         map[string]string `yaml:"env,omitempty"`
}

// LayerDTO is the YAML layout of a layer fragment. Every field is optional.
type LayerDTO struct {
	Role     string            `yaml:"role,omitempty"`
	Packages []string          `yaml:"packages,omitempty" validate:"dive,required"`
	Env      map[string]string `yaml:"env,omitempty"`
}

// RecipeDTO is the YAML layout of recipes/<name>.yaml.
type RecipeDTO struct {
	Name      string            `yaml:"name" validate:"required"`
	Base      string            `yaml:"base" validate:"required"`
	Overrides []string          `yaml:"overrides" validate:"dive,required"`
	Env       map[string]string `yaml:"env,omitempty"`
	CreatedAt string            `yaml:"created_at"`
}
