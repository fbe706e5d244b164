package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nexon/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nexon/internal/engine/registry"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{registry.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			reg, err := graft.Dep[*registry.Registry](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(reg, WithStrict(settings.Resolver.Strict)), nil
		},
	})
}
