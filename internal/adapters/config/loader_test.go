package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mru/internal/adapters/config"
	"go.trai.ch/mru/internal/core/domain"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s, err := config.NewLoader(env(map[string]string{config.EnvHome: root})).Load()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(root), s)
}

func TestLoad_DefaultRoot(t *testing.T) {
	t.Parallel()

	loader := config.NewLoader(env(nil))
	loader.SetDefaultRoot(func() (string, error) {
		return "/home/me/.config/mru", nil
	})

	s, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/home/me/.config/mru"), s.Root)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeConfig(t, root, `
capacity: 20
lock_timeout: 250ms
lock_retry: 5ms
on_corruption: fail
log:
  level: debug
  format: json
storage:
  commands:
    capacity: 500
`)

	s, err := config.NewLoader(env(map[string]string{config.EnvHome: root})).Load()
	require.NoError(t, err)

	assert.Equal(t, 20, s.CapacityFor(domain.StorageFiles))
	assert.Equal(t, 500, s.CapacityFor(domain.StorageCommands))
	assert.Equal(t, 250*time.Millisecond, s.LockTimeout)
	assert.Equal(t, 5*time.Millisecond, s.LockRetry)
	assert.Equal(t, domain.CorruptionFail, s.OnCorruption)
	assert.Equal(t, "debug", s.LogLevel)
	assert.True(t, s.LogJSON)
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeConfig(t, root, "")

	s, err := config.NewLoader(env(map[string]string{config.EnvHome: root})).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(root), s)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeConfig(t, root, "capacity: 20\non_corruption: fail\nlog:\n  format: json\n")

	s, err := config.NewLoader(env(map[string]string{
		config.EnvHome:         root,
		config.EnvCapacity:     "3",
		config.EnvLockTimeout:  "1s",
		config.EnvOnCorruption: "reset",
		config.EnvLogLevel:     "warn",
		config.EnvLogFormat:    "pretty",
	})).Load()
	require.NoError(t, err)

	assert.Equal(t, 3, s.CapacityFor(domain.StorageFiles))
	assert.Equal(t, time.Second, s.LockTimeout)
	assert.Equal(t, domain.CorruptionReset, s.OnCorruption)
	assert.Equal(t, "warn", s.LogLevel)
	assert.False(t, s.LogJSON)
}

func TestLoad_ExplicitConfigPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "capacity: 9\n")

	s, err := config.NewLoader(env(map[string]string{
		config.EnvHome:   t.TempDir(),
		config.EnvConfig: path,
	})).Load()
	require.NoError(t, err)
	assert.Equal(t, 9, s.DefaultCapacity)

	_, err = config.NewLoader(env(map[string]string{
		config.EnvHome:   t.TempDir(),
		config.EnvConfig: filepath.Join(dir, "missing.yaml"),
	})).Load()
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr error
	}{
		{name: "malformed yaml", file: "capacity: [", wantErr: domain.ErrConfigParseFailed},
		{name: "unknown key", file: "capasity: 3\n", wantErr: domain.ErrConfigParseFailed},
		{name: "zero capacity", file: "capacity: 0\n", wantErr: domain.ErrConfigInvalid},
		{name: "bad duration", file: "lock_timeout: soon\n", wantErr: domain.ErrConfigInvalid},
		{name: "negative duration", file: "lock_retry: -1s\n", wantErr: domain.ErrConfigInvalid},
		{name: "bad policy", file: "on_corruption: ignore\n", wantErr: domain.ErrConfigInvalid},
		{name: "bad level", file: "log:\n  level: trace\n", wantErr: domain.ErrConfigInvalid},
		{name: "unknown storage", file: "storage:\n  bookmarks:\n    capacity: 3\n", wantErr: domain.ErrUnknownStorageType},
		{name: "storage capacity", file: "storage:\n  files:\n    capacity: -1\n", wantErr: domain.ErrConfigInvalid},
		{name: "env zero capacity", env: map[string]string{config.EnvCapacity: "0"}, wantErr: domain.ErrConfigInvalid},
		{name: "env capacity", env: map[string]string{config.EnvCapacity: "many"}, wantErr: domain.ErrConfigInvalid},
		{name: "env format", env: map[string]string{config.EnvLogFormat: "xml"}, wantErr: domain.ErrConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			if tt.file != "" {
				writeConfig(t, root, tt.file)
			}
			vars := map[string]string{config.EnvHome: root}
			for k, v := range tt.env {
				vars[k] = v
			}

			_, err := config.NewLoader(env(vars)).Load()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
