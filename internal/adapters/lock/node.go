package lock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mru/internal/adapters/config"
	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/mru/internal/core/ports"
)

// NodeID is the unique identifier for the locker Graft node.
const NodeID graft.ID = "adapter.locker"

func init() {
	graft.Register(graft.Node[ports.Locker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Locker, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings.LockRetry), nil
		},
	})
}
