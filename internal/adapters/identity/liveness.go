package identity

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/mru/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// statConcurrency bounds the number of concurrent stat calls.
const statConcurrency = 16

// PathChecker reports file identities whose paths no longer exist.
type PathChecker struct {
	lstat func(string) (fs.FileInfo, error)
}

// NewPathChecker creates a PathChecker backed by the local file system.
func NewPathChecker() *PathChecker {
	return &PathChecker{lstat: os.Lstat}
}

// Missing returns the ids whose paths do not exist. Paths that cannot be
// inspected for another reason, such as permissions, count as present.
func (c *PathChecker) Missing(ctx context.Context, ids []domain.Identity) ([]domain.Identity, error) {
	gone := make([]bool, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(statConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := c.lstat(id.String())
			gone[i] = errors.Is(err, fs.ErrNotExist)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var missing []domain.Identity
	for i, id := range ids {
		if gone[i] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
