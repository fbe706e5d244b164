package store

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/nexon/internal/adapters/config"
	"go.trai.ch/nexon/internal/adapters/logger"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the document store Graft node.
const NodeID graft.ID = "adapter.document_store"

func init() {
	graft.Register(graft.Node[ports.DocumentStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DocumentStore, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return Open(settings, log)
		},
	})
}

// Open returns the backend selected by the settings.
func Open(settings *config.Settings, log ports.Logger) (ports.DocumentStore, error) {
	switch settings.Store {
	case config.StoreFile:
		return NewFileStore(settings.BaseDir)
	case config.StoreBadger:
		return OpenBadger(BadgerConfig{
			Path:   filepath.Join(settings.BaseDir, domain.StorePrefix),
			Logger: log,
		})
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownStoreBackend, "expected file or badger"), "store", settings.Store)
	}
}
