// Package manager runs one history operation per invocation: it locks the
// persisted history of a storage type, loads it, applies a single mutation,
// persists the result and releases the lock.
package manager

import (
	"context"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/mru/internal/adapters/codec"
	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/mru/internal/core/ports"
	"go.trai.ch/mru/internal/engine/history"
	"go.trai.ch/zerr"
)

// State is a step of the invocation lifecycle.
type State string

const (
	// StateIdle is the state before the lock is requested.
	StateIdle State = "Idle"
	// StateLocked means the exclusive lock for the storage type is held.
	StateLocked State = "Locked"
	// StateLoaded means the history is in memory.
	StateLoaded State = "Loaded"
	// StateMutated means the single mutation of the invocation was applied.
	StateMutated State = "Mutated"
	// StatePersisted means the mutated history replaced the persisted one.
	StatePersisted State = "Persisted"
	// StateReleased means the lock was given up. It is always the final state.
	StateReleased State = "Released"
	// StateFailed means the invocation hit an error before persisting.
	StateFailed State = "Failed"
)

// Observer is notified of every state transition.
type Observer func(st domain.StorageType, s State)

// Entry is a history entry keyed by identity.
type Entry = history.Entry[domain.Identity]

// Manager coordinates the history lifecycle for every storage type.
// It holds no history between calls; each call is one full cycle.
type Manager struct {
	locker   ports.Locker
	store    ports.SnapshotStore
	logger   ports.Logger
	settings domain.Settings
	clock    clockwork.Clock
	observer Observer
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the clock used to stamp new entries.
func WithClock(c clockwork.Clock) Option {
	return func(m *Manager) {
		m.clock = c
	}
}

// WithObserver registers fn to receive state transitions.
func WithObserver(fn Observer) Option {
	return func(m *Manager) {
		m.observer = fn
	}
}

// New creates a Manager with the given dependencies.
func New(
	locker ports.Locker,
	store ports.SnapshotStore,
	logger ports.Logger,
	settings domain.Settings,
	opts ...Option,
) *Manager {
	m := &Manager{
		locker:   locker,
		store:    store,
		logger:   logger,
		settings: settings,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add records a use of id, moving it to the front of the history of st.
func (m *Manager) Add(ctx context.Context, st domain.StorageType, id domain.Identity) (Entry, error) {
	if id == "" {
		return Entry{}, zerr.Wrap(domain.ErrInvalidIdentity, "identity is empty")
	}

	var added Entry
	err := m.mutate(ctx, st, func(h *history.Store[domain.Identity]) error {
		added = h.RecordUse(id)
		return nil
	})
	if err != nil {
		return Entry{}, err
	}
	return added, nil
}

// List returns the history of st, most recent first. It never writes.
func (m *Manager) List(ctx context.Context, st domain.StorageType) ([]Entry, error) {
	var entries []Entry
	err := m.cycle(ctx, st, false, func(h *history.Store[domain.Identity]) error {
		entries = h.Entries()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Remove deletes id from the history of st and reports whether it was present.
func (m *Manager) Remove(ctx context.Context, st domain.StorageType, id domain.Identity) (bool, error) {
	var removed bool
	err := m.mutate(ctx, st, func(h *history.Store[domain.Identity]) error {
		removed = h.Remove(id)
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// Clear empties the history of st and returns the number of removed entries.
func (m *Manager) Clear(ctx context.Context, st domain.StorageType) (int, error) {
	var n int
	err := m.mutate(ctx, st, func(h *history.Store[domain.Identity]) error {
		n = h.Len()
		h.Clear()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Prune removes the entries of st that checker reports as missing and returns them.
func (m *Manager) Prune(ctx context.Context, st domain.StorageType, checker ports.LivenessChecker) ([]domain.Identity, error) {
	var pruned []domain.Identity
	err := m.mutate(ctx, st, func(h *history.Store[domain.Identity]) error {
		ids := make([]domain.Identity, 0, h.Len())
		for e := range h.All() {
			ids = append(ids, e.Identity)
		}

		missing, err := checker.Missing(ctx, ids)
		if err != nil {
			return err
		}
		for _, id := range missing {
			if h.Remove(id) {
				pruned = append(pruned, id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pruned, nil
}

func (m *Manager) mutate(ctx context.Context, st domain.StorageType, fn func(*history.Store[domain.Identity]) error) error {
	return m.cycle(ctx, st, true, fn)
}

// cycle runs Idle → Locked → Loaded → [Mutated → Persisted] → Released.
// A failed acquisition goes Idle → Failed → Released without reaching Locked.
// The lease is released on every path.
func (m *Manager) cycle(
	ctx context.Context,
	st domain.StorageType,
	persist bool,
	fn func(*history.Store[domain.Identity]) error,
) (err error) {
	if !st.Valid() {
		return zerr.With(zerr.Wrap(domain.ErrUnknownStorageType, "no such history"), "storage", st.String())
	}

	s := &session{m: m, st: st, state: StateIdle}
	defer func() {
		err = s.finish(err)
	}()

	if err := s.lock(ctx); err != nil {
		return err
	}

	h, err := s.load()
	if err != nil {
		return err
	}

	if err := fn(h); err != nil {
		return err
	}

	if !persist {
		return nil
	}
	s.transition(StateMutated)

	return s.persist(h)
}

// session tracks one pass through the lifecycle.
type session struct {
	m     *Manager
	st    domain.StorageType
	state State
	lease ports.Lease
}

func (s *session) transition(to State) {
	s.m.logger.Debug("history state", "storage", s.st.String(), "from", string(s.state), "to", string(to))
	s.state = to
	if s.m.observer != nil {
		s.m.observer(s.st, to)
	}
}

func (s *session) lock(ctx context.Context) error {
	lease, err := s.m.locker.Acquire(ctx, s.m.store.LockPath(s.st), s.m.settings.LockTimeout)
	if err != nil {
		return err
	}
	s.lease = lease
	s.transition(StateLocked)
	return nil
}

func (s *session) load() (*history.Store[domain.Identity], error) {
	capacity := s.m.settings.CapacityFor(s.st)

	data, ok, err := s.m.store.Read(s.st)
	if err != nil {
		return nil, err
	}

	var h *history.Store[domain.Identity]
	if ok {
		h, err = codec.Decode(s.st, data, history.WithClock(s.m.clock))
		if err != nil {
			if s.m.settings.OnCorruption == domain.CorruptionFail {
				return nil, err
			}
			s.m.logger.Warn("discarding corrupt history",
				"storage", s.st.String(),
				"path", s.m.store.Path(s.st),
				"error", err.Error(),
			)
			h = nil
		}
	}
	if h == nil {
		h = history.New[domain.Identity](capacity, history.WithClock(s.m.clock))
	}

	h.SetCapacity(capacity)
	s.transition(StateLoaded)
	return h, nil
}

func (s *session) persist(h *history.Store[domain.Identity]) error {
	data, err := codec.Encode(s.st, h)
	if err != nil {
		return err
	}
	if err := s.m.store.Replace(s.st, data); err != nil {
		return err
	}
	s.transition(StatePersisted)
	return nil
}

// finish releases the lease and records the final states. A release error is
// returned only when the operation itself succeeded.
func (s *session) finish(err error) error {
	if err != nil {
		s.transition(StateFailed)
	}

	if s.lease != nil {
		if relErr := s.lease.Release(); relErr != nil {
			if err == nil {
				err = relErr
			} else {
				s.m.logger.Warn("failed to release history lock", "storage", s.st.String(), "error", relErr.Error())
			}
		}
	}
	s.transition(StateReleased)

	return err
}
