package repository

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nexon/internal/adapters/config"
	"go.trai.ch/nexon/internal/adapters/logger"
	"go.trai.ch/nexon/internal/adapters/store"
	"go.trai.ch/nexon/internal/core/ports"
)

const (
	// CatalogNodeID is the unique identifier for the package catalog Graft node.
	CatalogNodeID graft.ID = "adapter.package_catalog"
	// EnvironmentsNodeID is the unique identifier for the environment store Graft node.
	EnvironmentsNodeID graft.ID = "adapter.environment_store"
	// LayersNodeID is the unique identifier for the layer store Graft node.
	LayersNodeID graft.ID = "adapter.layer_store"
	// RecipesNodeID is the unique identifier for the recipe store Graft node.
	RecipesNodeID graft.ID = "adapter.recipe_store"
)

func init() {
	graft.Register(graft.Node[ports.PackageCatalog]{
		ID:        CatalogNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{store.NodeID, logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.PackageCatalog, error) {
			s, log, err := deps(ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewCatalog(s, log, settings.BaseDir), nil
		},
	})

	graft.Register(graft.Node[ports.EnvironmentStore]{
		ID:        EnvironmentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{store.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentStore, error) {
			s, log, err := deps(ctx)
			if err != nil {
				return nil, err
			}
			return NewEnvironments(s, log), nil
		},
	})

	graft.Register(graft.Node[ports.LayerStore]{
		ID:        LayersNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{store.NodeID},
		Run: func(ctx context.Context) (ports.LayerStore, error) {
			s, err := graft.Dep[ports.DocumentStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewLayers(s), nil
		},
	})

	graft.Register(graft.Node[ports.RecipeStore]{
		ID:        RecipesNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{store.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RecipeStore, error) {
			s, log, err := deps(ctx)
			if err != nil {
				return nil, err
			}
			return NewRecipes(s, log), nil
		},
	})
}

func deps(ctx context.Context) (ports.DocumentStore, ports.Logger, error) {
	s, err := graft.Dep[ports.DocumentStore](ctx)
	if err != nil {
		return nil, nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, nil, err
	}
	return s, log, nil
}
