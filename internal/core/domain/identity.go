// Package domain contains the core domain types of the MRU history tracker.
package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Identity is the normalized key of a tracked item.
// Two entries with the same Identity are the same logical item.
type Identity string

// String returns the identity as a plain string.
func (i Identity) String() string {
	return string(i)
}

// StorageType selects a history namespace: its persisted location, its
// capacity and the normalization strategy applied to incoming identities.
type StorageType string

const (
	// StorageFiles tracks file paths.
	StorageFiles StorageType = "files"

	// StorageCommands tracks shell command lines.
	StorageCommands StorageType = "commands"
)

// StorageTypes lists every registered storage type in display order.
func StorageTypes() []StorageType {
	return []StorageType{StorageFiles, StorageCommands}
}

// String returns the storage type name.
func (s StorageType) String() string {
	return string(s)
}

// Valid reports whether s is a registered storage type.
func (s StorageType) Valid() bool {
	return slices.Contains(StorageTypes(), s)
}

// ParseStorageType converts a name into a registered StorageType.
func ParseStorageType(name string) (StorageType, error) {
	st := StorageType(name)
	if !st.Valid() {
		return "", zerr.With(zerr.Wrap(ErrUnknownStorageType, "no such history"), "storage", name)
	}
	return st, nil
}
