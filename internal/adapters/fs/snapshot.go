// Package fs persists history snapshots on the local file system.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/zerr"
)

// SnapshotStore implements ports.SnapshotStore with one file per storage type
// under a root directory. Writes go through a temp file in the same directory
// followed by a rename, so the history file is always either the old or the
// new snapshot.
type SnapshotStore struct {
	root   string
	rename func(oldpath, newpath string) error
}

// NewSnapshotStore creates a store rooted at root. The directory is created on
// the first write.
func NewSnapshotStore(root string) *SnapshotStore {
	return &SnapshotStore{
		root:   root,
		rename: os.Rename,
	}
}

// Root returns the directory holding the history files.
func (s *SnapshotStore) Root() string {
	return s.root
}

// Path returns the history file of st.
func (s *SnapshotStore) Path(st domain.StorageType) string {
	return domain.HistoryPath(s.root, st)
}

// LockPath returns the lock file guarding the history file of st.
func (s *SnapshotStore) LockPath(st domain.StorageType) string {
	return domain.LockPath(s.root, st)
}

// Read returns the persisted history of st. A missing file is not an error.
func (s *SnapshotStore) Read(st domain.StorageType) ([]byte, bool, error) {
	path := s.Path(st)
	//nolint:gosec // Path is built from the configured root and a registered storage type
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, errors.Join(domain.ErrStoreReadFailed, zerr.With(zerr.Wrap(err, "cannot read history file"), "path", path))
	}
	return data, true, nil
}

// Replace atomically swaps the history file of st for data.
func (s *SnapshotStore) Replace(st domain.StorageType, data []byte) error {
	path := s.Path(st)
	if err := os.MkdirAll(s.root, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrStoreCreateFailed, zerr.With(zerr.Wrap(err, "cannot create history directory"), "path", s.root))
	}
	if err := s.atomicWriteFile(path, data); err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(zerr.Wrap(err, "cannot replace history file"), "path", path))
	}
	return nil
}

// atomicWriteFile writes data to a temp file next to path, flushes it and
// renames it over path.
func (s *SnapshotStore) atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, domain.TempFilePattern)
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	if err := s.rename(tmpName, path); err != nil {
		return err
	}
	renamed = true

	syncDir(dir)
	return nil
}

// syncDir flushes the directory entry of a rename. Not every platform
// supports it, so failures are ignored.
func syncDir(dir string) {
	//nolint:gosec // dir is the configured root
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
