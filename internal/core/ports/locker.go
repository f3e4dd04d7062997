package ports

import (
	"context"
	"time"
)

//go:generate mockgen -source=locker.go -destination=mocks/mock_locker.go -package=mocks

// Lease is a held exclusive lock.
type Lease interface {
	// Release gives the lock up. It is safe to call more than once.
	Release() error
}

// Locker provides exclusive locks shared between processes.
type Locker interface {
	// Acquire blocks until the lock at path is held, timeout elapses or ctx is done.
	// It returns domain.ErrLockTimeout when the wait expires.
	Acquire(ctx context.Context, path string, timeout time.Duration) (Lease, error)
}
