package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nexon/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nexon/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nexon/internal/adapters/repository"         //nolint:depguard // Wired in app layer
	"go.trai.ch/nexon/internal/adapters/store"              //nolint:depguard // Wired in app layer
	"go.trai.ch/nexon/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/nexon/internal/engine/builder"
	"go.trai.ch/nexon/internal/engine/envvars"
	"go.trai.ch/nexon/internal/engine/hooks"
	"go.trai.ch/nexon/internal/engine/layers"
	"go.trai.ch/nexon/internal/engine/registry"
	"go.trai.ch/nexon/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			repository.CatalogNodeID,
			repository.EnvironmentsNodeID,
			repository.RecipesNodeID,
			registry.NodeID,
			resolver.NodeID,
			envvars.NodeID,
			layers.NodeID,
			builder.NodeID,
			hooks.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			store.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	var (
		deps Deps
		err  error
	)

	if deps.Catalog, err = graft.Dep[ports.PackageCatalog](ctx); err != nil {
		return nil, err
	}
	if deps.Environments, err = graft.Dep[ports.EnvironmentStore](ctx); err != nil {
		return nil, err
	}
	if deps.Recipes, err = graft.Dep[ports.RecipeStore](ctx); err != nil {
		return nil, err
	}
	if deps.Registry, err = graft.Dep[*registry.Registry](ctx); err != nil {
		return nil, err
	}
	if deps.Resolver, err = graft.Dep[*resolver.Resolver](ctx); err != nil {
		return nil, err
	}
	if deps.EnvVars, err = graft.Dep[*envvars.Composer](ctx); err != nil {
		return nil, err
	}
	if deps.Layers, err = graft.Dep[*layers.Composer](ctx); err != nil {
		return nil, err
	}
	if deps.Builder, err = graft.Dep[*builder.Builder](ctx); err != nil {
		return nil, err
	}
	if deps.Hooks, err = graft.Dep[ports.HookDispatcher](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}

	return New(deps), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*config.Settings](ctx)
	if err != nil {
		return nil, err
	}

	docs, err := graft.Dep[ports.DocumentStore](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Settings:  settings,
		Store:     docs,
		Telemetry: telemetry,
	}, nil
}
