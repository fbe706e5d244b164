package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nexon/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nexon/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nexon/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/nexon/internal/engine/envvars"
	"go.trai.ch/nexon/internal/engine/hooks"
	"go.trai.ch/nexon/internal/engine/registry"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			envvars.NodeID,
			shell.NodeID,
			progrock.NodeID,
			hooks.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			reg, err := graft.Dep[*registry.Registry](ctx)
			if err != nil {
				return nil, err
			}

			composer, err := graft.Dep[*envvars.Composer](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.BuildExecutor](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			dispatcher, err := graft.Dep[ports.HookDispatcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(reg, composer, executor, telemetry, dispatcher, log), nil
		},
	})
}
