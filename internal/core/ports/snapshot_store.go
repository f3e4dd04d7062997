// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/mru/internal/core/domain"

// SnapshotStore reads and replaces the persisted history of a storage type.
//
//go:generate mockgen -source=snapshot_store.go -destination=mocks/mock_snapshot_store.go -package=mocks
type SnapshotStore interface {
	// Path returns the location of the history file.
	Path(st domain.StorageType) string

	// LockPath returns the location of the lock file guarding the history.
	LockPath(st domain.StorageType) string

	// Read returns the persisted bytes.
	// Returns nil, false, nil if nothing has been persisted yet.
	Read(st domain.StorageType) ([]byte, bool, error)

	// Replace atomically swaps the persisted bytes for data.
	// Readers observe either the previous content or data, never a mix.
	Replace(st domain.StorageType, data []byte) error
}
