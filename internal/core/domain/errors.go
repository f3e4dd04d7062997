package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidIdentity is returned when an identity cannot be normalized (empty, malformed or unresolvable).
	ErrInvalidIdentity = zerr.New("invalid identity")

	// ErrUnknownStorageType is returned when a storage type name is not registered.
	ErrUnknownStorageType = zerr.New("unknown storage type")

	// ErrLockTimeout is returned when the history lock is not acquired within the configured wait.
	ErrLockTimeout = zerr.New("timed out waiting for history lock")

	// ErrLockFailed is returned when the history lock cannot be acquired for a reason other than contention.
	ErrLockFailed = zerr.New("failed to acquire history lock")

	// ErrUnlockFailed is returned when the history lock cannot be released.
	ErrUnlockFailed = zerr.New("failed to release history lock")

	// ErrCorruptHistory is returned when persisted history bytes fail decoding.
	ErrCorruptHistory = zerr.New("history file is corrupt")

	// ErrUnsupportedVersion is returned when a persisted history requires a newer reader.
	ErrUnsupportedVersion = zerr.New("unsupported history format version")

	// ErrDuplicateIdentity is returned when a history contains the same identity twice.
	ErrDuplicateIdentity = zerr.New("duplicate identity in history")

	// ErrCapacityExceeded is returned when a history holds more entries than its capacity.
	ErrCapacityExceeded = zerr.New("history exceeds its capacity")

	// ErrChecksumMismatch is returned when the embedded history checksum does not match its entries.
	ErrChecksumMismatch = zerr.New("history checksum mismatch")

	// ErrStoreCreateFailed is returned when the history directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create history directory")

	// ErrStoreReadFailed is returned when the history file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read history")

	// ErrStoreWriteFailed is returned when the history file cannot be written or replaced.
	ErrStoreWriteFailed = zerr.New("failed to write history")

	// ErrStoreMarshalFailed is returned when the history cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to encode history")

	// ErrPruneUnsupported is returned when prune is requested for a storage type without a liveness check.
	ErrPruneUnsupported = zerr.New("prune is not supported for this storage type")

	// ErrInvalidLimit is returned when a list limit is negative.
	ErrInvalidLimit = zerr.New("list limit must not be negative")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when a configuration value is out of range or malformed.
	ErrConfigInvalid = zerr.New("invalid configuration value")

	// ErrNoHomeDir is returned when no per-user directory can be determined for the history root.
	ErrNoHomeDir = zerr.New("could not determine user config directory")
)
