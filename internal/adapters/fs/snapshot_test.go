package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mru/internal/adapters/fs"
	"go.trai.ch/mru/internal/core/domain"
)

func TestSnapshotStore_ReadMissing(t *testing.T) {
	t.Parallel()

	store := fs.NewSnapshotStore(filepath.Join(t.TempDir(), "mru"))

	data, ok, err := store.Read(domain.StorageFiles)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestSnapshotStore_ReplaceAndRead(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "nested", "mru")
	store := fs.NewSnapshotStore(root)

	require.NoError(t, store.Replace(domain.StorageFiles, []byte("first")))
	require.NoError(t, store.Replace(domain.StorageFiles, []byte("second")))

	data, ok, err := store.Read(domain.StorageFiles)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(store.Path(domain.StorageFiles))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "files.json", entries[0].Name())
}

func TestSnapshotStore_StorageTypesAreSeparate(t *testing.T) {
	t.Parallel()

	store := fs.NewSnapshotStore(t.TempDir())
	require.NoError(t, store.Replace(domain.StorageFiles, []byte("files")))
	require.NoError(t, store.Replace(domain.StorageCommands, []byte("commands")))

	data, _, err := store.Read(domain.StorageFiles)
	require.NoError(t, err)
	assert.Equal(t, "files", string(data))

	assert.NotEqual(t, store.LockPath(domain.StorageFiles), store.LockPath(domain.StorageCommands))
	assert.Equal(t, store.Path(domain.StorageFiles)+".lock", store.LockPath(domain.StorageFiles))
}

func TestSnapshotStore_CrashBeforeRename(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := fs.NewSnapshotStore(root)
	require.NoError(t, store.Replace(domain.StorageFiles, []byte("committed")))

	var staged string
	store.SetRename(func(oldpath, _ string) error {
		// The new snapshot is fully on disk but not yet visible.
		b, err := os.ReadFile(oldpath)
		require.NoError(t, err)
		staged = string(b)

		current, err := os.ReadFile(store.Path(domain.StorageFiles))
		require.NoError(t, err)
		assert.Equal(t, "committed", string(current))

		return errors.New("simulated crash")
	})

	err := store.Replace(domain.StorageFiles, []byte("uncommitted"))
	require.ErrorIs(t, err, domain.ErrStoreWriteFailed)
	assert.Equal(t, "uncommitted", staged)

	data, ok, err := store.Read(domain.StorageFiles)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "committed", string(data))

	leftovers, err := filepath.Glob(filepath.Join(root, domain.TempFilePattern))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestSnapshotStore_IgnoresStrayTempFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := fs.NewSnapshotStore(root)
	require.NoError(t, store.Replace(domain.StorageFiles, []byte("committed")))

	// A process killed between write and rename leaves its temp file behind.
	stray := filepath.Join(root, ".history-12345.tmp")
	require.NoError(t, os.WriteFile(stray, []byte("half"), domain.FilePerm))

	data, _, err := store.Read(domain.StorageFiles)
	require.NoError(t, err)
	assert.Equal(t, "committed", string(data))

	require.NoError(t, store.Replace(domain.StorageFiles, []byte("next")))
	data, _, err = store.Read(domain.StorageFiles)
	require.NoError(t, err)
	assert.Equal(t, "next", string(data))
}

func TestSnapshotStore_ReadError(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := fs.NewSnapshotStore(root)

	// A directory where the file should be cannot be read as a file.
	require.NoError(t, os.Mkdir(store.Path(domain.StorageFiles), domain.DirPerm))

	_, _, err := store.Read(domain.StorageFiles)
	require.ErrorIs(t, err, domain.ErrStoreReadFailed)
}

func TestSnapshotStore_CreateError(t *testing.T) {
	t.Parallel()

	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, os.WriteFile(blocker, nil, domain.FilePerm))

	store := fs.NewSnapshotStore(filepath.Join(blocker, "mru"))
	err := store.Replace(domain.StorageFiles, []byte("x"))
	require.ErrorIs(t, err, domain.ErrStoreCreateFailed)
}
