package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mru/internal/adapters/config"
	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/mru/internal/core/ports"
)

// SnapshotStoreNodeID is the unique identifier for the snapshot store Graft node.
const SnapshotStoreNodeID graft.ID = "adapter.fs.snapshot_store"

func init() {
	graft.Register(graft.Node[ports.SnapshotStore]{
		ID:        SnapshotStoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.SnapshotStore, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewSnapshotStore(settings.Root), nil
		},
	})
}
