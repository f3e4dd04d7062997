// Package lock provides exclusive locks shared between processes, backed by
// advisory file locks.
package lock

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/mru/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileLocker implements ports.Locker with flock(2) style locks on a lock file.
// The lock file is never removed: a process waiting on it would otherwise lock
// an unlinked inode.
type FileLocker struct {
	retry time.Duration
}

// New creates a FileLocker that polls every retry interval while contended.
func New(retry time.Duration) *FileLocker {
	if retry <= 0 {
		retry = domain.DefaultLockRetry
	}
	return &FileLocker{retry: retry}
}

// Acquire takes the exclusive lock at path.
func (l *FileLocker) Acquire(ctx context.Context, path string, timeout time.Duration) (ports.Lease, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, errors.Join(domain.ErrStoreCreateFailed, zerr.With(zerr.Wrap(err, "cannot create lock directory"), "path", filepath.Dir(path)))
	}

	waitCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	fl := flock.New(path, flock.SetPermissions(domain.FilePerm))
	locked, err := fl.TryLockContext(waitCtx, l.retry)
	if locked {
		return &lease{fl: fl}, nil
	}

	// A deadline on ctx shorter than timeout is still a lock timeout.
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return nil, zerr.With(zerr.Wrap(domain.ErrLockTimeout, "history is locked by another invocation"), "timeout", timeout.String())
	case ctx.Err() != nil:
		return nil, ctx.Err()
	case err != nil:
		return nil, errors.Join(domain.ErrLockFailed, zerr.With(zerr.Wrap(err, "cannot lock history"), "path", path))
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrLockFailed, "lock not taken"), "path", path)
	}
}

type lease struct {
	once sync.Once
	fl   *flock.Flock
	err  error
}

func (l *lease) Release() error {
	l.once.Do(func() {
		if err := l.fl.Unlock(); err != nil {
			l.err = errors.Join(domain.ErrUnlockFailed, zerr.With(zerr.Wrap(err, "cannot unlock history"), "path", l.fl.Path()))
		}
	})
	return l.err
}
