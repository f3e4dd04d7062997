// Package app implements the application layer for mru.
package app

import (
	"context"

	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/mru/internal/core/ports"
	"go.trai.ch/mru/internal/engine/manager"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	manager     *manager.Manager
	normalizers ports.Normalizers
	liveness    ports.LivenessChecker
	snapshots   ports.SnapshotStore
	logger      ports.Logger
}

// ListOptions controls List.
type ListOptions struct {
	// Limit caps the number of returned entries. Zero or less means no limit.
	Limit int
}

// New creates a new App instance.
func New(
	m *manager.Manager,
	normalizers ports.Normalizers,
	liveness ports.LivenessChecker,
	snapshots ports.SnapshotStore,
	log ports.Logger,
) *App {
	return &App{
		manager:     m,
		normalizers: normalizers,
		liveness:    liveness,
		snapshots:   snapshots,
		logger:      log,
	}
}

// Add normalizes raw and records a use of it in the history of st.
func (a *App) Add(ctx context.Context, st domain.StorageType, raw string) (manager.Entry, error) {
	id, err := a.normalize(st, raw)
	if err != nil {
		return manager.Entry{}, err
	}

	e, err := a.manager.Add(ctx, st, id)
	if err != nil {
		return manager.Entry{}, zerr.Wrap(err, "failed to record use")
	}

	a.logger.Debug("recorded use", "storage", st.String(), "identity", id.String(), "count", e.UseCount)
	return e, nil
}

// List returns the history of st, most recent first.
func (a *App) List(ctx context.Context, st domain.StorageType, opts ListOptions) ([]manager.Entry, error) {
	entries, err := a.manager.List(ctx, st)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list history")
	}

	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}
	return entries, nil
}

// Remove normalizes raw and drops it from the history of st.
func (a *App) Remove(ctx context.Context, st domain.StorageType, raw string) (bool, error) {
	id, err := a.normalize(st, raw)
	if err != nil {
		return false, err
	}

	removed, err := a.manager.Remove(ctx, st, id)
	if err != nil {
		return false, zerr.Wrap(err, "failed to remove entry")
	}
	if !removed {
		a.logger.Debug("entry not in history", "storage", st.String(), "identity", id.String())
	}
	return removed, nil
}

// Clear empties the history of st.
func (a *App) Clear(ctx context.Context, st domain.StorageType) (int, error) {
	n, err := a.manager.Clear(ctx, st)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to clear history")
	}
	return n, nil
}

// Prune drops entries whose files no longer exist. Only the files storage
// type has a liveness check.
func (a *App) Prune(ctx context.Context, st domain.StorageType) ([]domain.Identity, error) {
	if st != domain.StorageFiles {
		return nil, zerr.With(zerr.Wrap(domain.ErrPruneUnsupported, "only file histories can be pruned"), "storage", st.String())
	}

	pruned, err := a.manager.Prune(ctx, st, a.liveness)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to prune history")
	}
	return pruned, nil
}

// Path returns the location of the persisted history of st.
func (a *App) Path(st domain.StorageType) (string, error) {
	if !st.Valid() {
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownStorageType, "no such history"), "storage", st.String())
	}
	return a.snapshots.Path(st), nil
}

func (a *App) normalize(st domain.StorageType, raw string) (domain.Identity, error) {
	n, ok := a.normalizers[st]
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownStorageType, "no normalizer for storage type"), "storage", st.String())
	}
	return n.Normalize(raw)
}
