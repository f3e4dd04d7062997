package domain

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	// AppDirName is the name of the per-user directory holding every history.
	AppDirName = "mru"

	// HistoryFileExt is the extension of persisted history files.
	HistoryFileExt = ".json"

	// LockFileExt is appended to a history file name to form its lock file name.
	LockFileExt = ".lock"

	// ConfigFileName is the name of the optional config file inside the root.
	ConfigFileName = "config.yaml"

	// TempFilePattern is the os.CreateTemp pattern used for atomic replacement.
	TempFilePattern = ".history-*.tmp"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for history files (rw-------).
	FilePerm = 0o600
)

// DefaultRoot returns the default history root: <user config dir>/mru.
func DefaultRoot() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Join(ErrNoHomeDir, err)
	}
	return filepath.Join(dir, AppDirName), nil
}

// HistoryFileName returns the deterministic file name for a storage type.
func HistoryFileName(st StorageType) string {
	return string(st) + HistoryFileExt
}

// HistoryPath returns the persisted history location of st under root.
func HistoryPath(root string, st StorageType) string {
	return filepath.Join(root, HistoryFileName(st))
}

// LockPath returns the lock file guarding the history of st under root.
func LockPath(root string, st StorageType) string {
	return HistoryPath(root, st) + LockFileExt
}
