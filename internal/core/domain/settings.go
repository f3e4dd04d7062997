package domain

import (
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultCapacity is the number of entries a history keeps unless configured otherwise.
	DefaultCapacity = 100

	// DefaultLockTimeout bounds how long an invocation waits for the history lock.
	DefaultLockTimeout = 5 * time.Second

	// DefaultLockRetry is the interval between lock acquisition attempts.
	DefaultLockRetry = 10 * time.Millisecond
)

// CorruptionPolicy decides what happens when a persisted history fails decoding.
type CorruptionPolicy string

const (
	// CorruptionReset discards the corrupt history, logs a warning and continues with an empty store.
	CorruptionReset CorruptionPolicy = "reset"

	// CorruptionFail aborts the invocation with ErrCorruptHistory.
	CorruptionFail CorruptionPolicy = "fail"
)

// ParseCorruptionPolicy validates a policy name.
func ParseCorruptionPolicy(name string) (CorruptionPolicy, error) {
	switch p := CorruptionPolicy(name); p {
	case CorruptionReset, CorruptionFail:
		return p, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrConfigInvalid, "unknown corruption policy"), "on_corruption", name)
	}
}

// Settings holds the resolved configuration of one invocation.
type Settings struct {
	// Root is the directory holding history and lock files.
	Root string
	// DefaultCapacity applies to storage types without an explicit capacity.
	DefaultCapacity int
	// Capacities overrides the capacity per storage type.
	Capacities map[StorageType]int
	// LockTimeout bounds the wait for the history lock.
	LockTimeout time.Duration
	// LockRetry is the polling interval while waiting for the lock.
	LockRetry time.Duration
	// OnCorruption selects the corruption recovery policy.
	OnCorruption CorruptionPolicy
	// LogLevel is one of debug, info, warn or error.
	LogLevel string
	// LogJSON switches the logger to JSON output.
	LogJSON bool
}

// DefaultSettings returns settings populated with defaults for the given root.
func DefaultSettings(root string) Settings {
	return Settings{
		Root:            root,
		DefaultCapacity: DefaultCapacity,
		Capacities:      make(map[StorageType]int),
		LockTimeout:     DefaultLockTimeout,
		LockRetry:       DefaultLockRetry,
		OnCorruption:    CorruptionReset,
		LogLevel:        "info",
	}
}

// CapacityFor returns the capacity configured for st.
func (s Settings) CapacityFor(st StorageType) int {
	if c, ok := s.Capacities[st]; ok && c > 0 {
		return c
	}
	if s.DefaultCapacity > 0 {
		return s.DefaultCapacity
	}
	return DefaultCapacity
}
