package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nexon/internal/adapters/logger"
	"go.trai.ch/nexon/internal/core/ports"
)

// NodeID is the unique identifier for the build executor Graft node.
const NodeID graft.ID = "adapter.executor"

func init() {
	graft.Register(graft.Node[ports.BuildExecutor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildExecutor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})
}
