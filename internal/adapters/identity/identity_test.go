package identity_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mru/internal/adapters/identity"
	"go.trai.ch/mru/internal/core/domain"
)

func realDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func TestPathNormalizer(t *testing.T) {
	t.Parallel()

	dir := realDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), nil, domain.FilePerm))

	n := identity.NewPathNormalizer()
	n.SetGetwd(func() (string, error) { return dir, nil })
	n.SetHomeDir(func() (string, error) { return dir, nil })

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "absolute", raw: filepath.Join(dir, "notes.md"), want: filepath.Join(dir, "notes.md")},
		{name: "relative", raw: "notes.md", want: filepath.Join(dir, "notes.md")},
		{name: "dot segments", raw: "./sub/../notes.md", want: filepath.Join(dir, "notes.md")},
		{name: "trailing separator", raw: dir + string(filepath.Separator), want: dir},
		{name: "home", raw: filepath.Join("~", "notes.md"), want: filepath.Join(dir, "notes.md")},
		{name: "missing file", raw: "draft.md", want: filepath.Join(dir, "draft.md")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := n.Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, domain.Identity(tt.want), got)
		})
	}
}

func TestPathNormalizer_ResolvesSymlinks(t *testing.T) {
	t.Parallel()

	dir := realDir(t)
	target := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(target, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(target, "a.txt"), nil, domain.FilePerm))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	n := identity.NewPathNormalizer()

	viaLink, err := n.Normalize(filepath.Join(link, "a.txt"))
	require.NoError(t, err)
	direct, err := n.Normalize(filepath.Join(target, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, direct, viaLink)

	// A missing file below an existing symlinked directory resolves its parent.
	missing, err := n.Normalize(filepath.Join(link, "new.txt"))
	require.NoError(t, err)
	assert.Equal(t, domain.Identity(filepath.Join(target, "new.txt")), missing)
}

func TestPathNormalizer_Invalid(t *testing.T) {
	t.Parallel()

	n := identity.NewPathNormalizer()
	for _, raw := range []string{"", "   ", "a\x00b"} {
		_, err := n.Normalize(raw)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidIdentity), "input %q", raw)
	}

	n.SetGetwd(func() (string, error) { return "", errors.New("cwd removed") })
	_, err := n.Normalize("relative.txt")
	assert.True(t, errors.Is(err, domain.ErrInvalidIdentity))
}

func TestCommandNormalizer(t *testing.T) {
	t.Parallel()

	n := identity.NewCommandNormalizer()

	got, err := n.Normalize("  git   commit\t-m  wip \n")
	require.NoError(t, err)
	assert.Equal(t, domain.Identity("git commit -m wip"), got)

	same, err := n.Normalize("git commit -m wip")
	require.NoError(t, err)
	assert.Equal(t, got, same)

	for _, raw := range []string{"", " \t\n", "ls\x00"} {
		_, err := n.Normalize(raw)
		assert.True(t, errors.Is(err, domain.ErrInvalidIdentity), "input %q", raw)
	}
}

func TestPathChecker_Missing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	present := filepath.Join(dir, "present")
	require.NoError(t, os.WriteFile(present, nil, domain.FilePerm))

	ids := []domain.Identity{
		domain.Identity(filepath.Join(dir, "gone-1")),
		domain.Identity(present),
		domain.Identity(filepath.Join(dir, "gone-2")),
	}

	missing, err := identity.NewPathChecker().Missing(context.Background(), ids)
	require.NoError(t, err)
	assert.Equal(t, []domain.Identity{ids[0], ids[2]}, missing)
}

func TestPathChecker_UnreadableCountsAsPresent(t *testing.T) {
	t.Parallel()

	c := identity.NewPathChecker()
	c.SetLstat(func(string) (fs.FileInfo, error) { return nil, fs.ErrPermission })

	missing, err := c.Missing(context.Background(), []domain.Identity{"/root/secret"})
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestPathChecker_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := identity.NewPathChecker().Missing(ctx, []domain.Identity{"/a", "/b"})
	require.ErrorIs(t, err, context.Canceled)
}
