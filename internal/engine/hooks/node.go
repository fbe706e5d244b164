package hooks

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/nexon/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nexon/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nexon/internal/core/ports"
)

// NodeID is the unique identifier for the hook dispatcher Graft node.
const NodeID graft.ID = "engine.hooks"

func init() {
	graft.Register(graft.Node[ports.HookDispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.HookDispatcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			d := NewDispatcher(log)
			if err := d.Enable(settings.Plugins, time.Now); err != nil {
				return nil, err
			}
			return d, nil
		},
	})
}
