package manager

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mru/internal/adapters/config"
	"go.trai.ch/mru/internal/adapters/fs"
	"go.trai.ch/mru/internal/adapters/lock"
	"go.trai.ch/mru/internal/adapters/logger"
	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/mru/internal/core/ports"
)

// NodeID is the unique identifier for the manager Graft node.
const NodeID graft.ID = "engine.manager"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			lock.NodeID,
			fs.SnapshotStoreNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (*Manager, error) {
			locker, err := graft.Dep[ports.Locker](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.SnapshotStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			return New(locker, store, log, settings), nil
		},
	})
}
