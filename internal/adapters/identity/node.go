package identity

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/mru/internal/core/ports"
)

const (
	// NormalizersNodeID is the unique identifier for the normalizers Graft node.
	NormalizersNodeID graft.ID = "adapter.identity.normalizers"
	// LivenessNodeID is the unique identifier for the liveness checker Graft node.
	LivenessNodeID graft.ID = "adapter.identity.liveness"
)

func init() {
	graft.Register(graft.Node[ports.Normalizers]{
		ID:        NormalizersNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Normalizers, error) {
			return ports.Normalizers{
				domain.StorageFiles:    NewPathNormalizer(),
				domain.StorageCommands: NewCommandNormalizer(),
			}, nil
		},
	})

	graft.Register(graft.Node[ports.LivenessChecker]{
		ID:        LivenessNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LivenessChecker, error) {
			return NewPathChecker(), nil
		},
	})
}
