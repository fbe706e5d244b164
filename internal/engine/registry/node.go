package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nexon/internal/adapters/logger"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nexon/internal/adapters/repository" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nexon/internal/core/ports"
)

// NodeID is the unique identifier for the registry Graft node.
const NodeID graft.ID = "engine.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{repository.CatalogNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			catalog, err := graft.Dep[ports.PackageCatalog](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(catalog, log), nil
		},
	})
}
