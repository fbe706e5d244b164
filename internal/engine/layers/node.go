package layers

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nexon/internal/adapters/config"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nexon/internal/adapters/repository" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nexon/internal/core/ports"
)

// NodeID is the unique identifier for the layer composer Graft node.
const NodeID graft.ID = "engine.layers"

func init() {
	graft.Register(graft.Node[*Composer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{repository.EnvironmentsNodeID, repository.LayersNodeID, config.NodeID},
		Run: func(ctx context.Context) (*Composer, error) {
			envs, err := graft.Dep[ports.EnvironmentStore](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.LayerStore](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewComposer(envs, store, settings.User), nil
		},
	})
}
