package ports

import (
	"context"

	"go.trai.ch/mru/internal/core/domain"
)

//go:generate mockgen -source=identity.go -destination=mocks/mock_identity.go -package=mocks

// IdentityNormalizer turns raw user input into a canonical identity.
type IdentityNormalizer interface {
	// Normalize returns domain.ErrInvalidIdentity for input that cannot name an item.
	Normalize(raw string) (domain.Identity, error)
}

// LivenessChecker reports tracked items that no longer exist.
type LivenessChecker interface {
	// Missing returns the subset of ids that are gone, in input order.
	Missing(ctx context.Context, ids []domain.Identity) ([]domain.Identity, error)
}

// Normalizers maps each storage type to its normalization strategy.
type Normalizers map[domain.StorageType]IdentityNormalizer
