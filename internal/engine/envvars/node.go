package envvars

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nexon/internal/adapters/repository" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nexon/internal/core/ports"
)

// NodeID is the unique identifier for the env var composer Graft node.
const NodeID graft.ID = "engine.envvars"

func init() {
	graft.Register(graft.Node[*Composer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{repository.CatalogNodeID},
		Run: func(ctx context.Context) (*Composer, error) {
			catalog, err := graft.Dep[ports.PackageCatalog](ctx)
			if err != nil {
				return nil, err
			}
			return NewComposer(catalog, OSEnviron{}), nil
		},
	})
}
