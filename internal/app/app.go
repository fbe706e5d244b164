// Package app implements the application layer for nexon.
package app

import (
	"time"

	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/nexon/internal/engine/builder"
	"go.trai.ch/nexon/internal/engine/envvars"
	"go.trai.ch/nexon/internal/engine/layers"
	"go.trai.ch/nexon/internal/engine/registry"
	"go.trai.ch/nexon/internal/engine/resolver"
)

// Deps holds the collaborators of App.
type Deps struct {
	Catalog      ports.PackageCatalog
	Environments ports.EnvironmentStore
	Recipes      ports.RecipeStore
	Registry     *registry.Registry
	Resolver     *resolver.Resolver
	EnvVars      *envvars.Composer
	Layers       *layers.Composer
	Builder      *builder.Builder
	Hooks        ports.HookDispatcher
	Logger       ports.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// App represents the main application logic.
type App struct {
	catalog  ports.PackageCatalog
	envs     ports.EnvironmentStore
	recipes  ports.RecipeStore
	registry *registry.Registry
	resolver *resolver.Resolver
	envvars  *envvars.Composer
	layers   *layers.Composer
	builder  *builder.Builder
	hooks    ports.HookDispatcher
	logger   ports.Logger
	now      func() time.Time

	locks *envLocks
}

// New creates a new App instance.
func New(deps Deps) *App {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &App{
		catalog:  deps.Catalog,
		envs:     deps.Environments,
		recipes:  deps.Recipes,
		registry: deps.Registry,
		resolver: deps.Resolver,
		envvars:  deps.EnvVars,
		layers:   deps.Layers,
		builder:  deps.Builder,
		hooks:    deps.Hooks,
		logger:   deps.Logger,
		now:      now,
		locks:    newEnvLocks(),
	}
}
