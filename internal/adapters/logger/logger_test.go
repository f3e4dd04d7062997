package logger_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mru/internal/adapters/logger"
	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(lg *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(lg *logger.Logger) { lg.Info("some message") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(lg *logger.Logger) { lg.Warn("some warning") },
			goldenName: "warn_basic",
		},
		{
			name:       "warn with attributes",
			log:        func(lg *logger.Logger) { lg.Warn("history reset", "storage", "files") },
			goldenName: "warn_attrs",
		},
		{
			name:       "debug filtered at info",
			log:        func(lg *logger.Logger) { lg.Debug("state", "to", "locked") },
			goldenName: "debug_filtered",
		},
		{
			name: "debug enabled",
			log: func(lg *logger.Logger) {
				lg.SetLevel(slog.LevelDebug)
				lg.Debug("state", "storage", "files", "to", "locked")
			},
			goldenName: "debug_enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				errors.New("underlying cause"),
				"wrapped message",
			),
			goldenName: "error_chain_zerr",
		},
		{
			name: "classified error",
			err: errors.Join(
				domain.ErrCorruptHistory,
				zerr.Wrap(errors.New("unexpected end of JSON input"), "malformed history document"),
			),
			goldenName: "error_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String(), "Expected no output for nil error")
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(zerr.Wrap(errors.New("disk full"), "failed to write history"))

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"error"`)
	assert.Contains(t, out, "failed to write history")
	assert.NotContains(t, out, "✗", "JSON format should not have pretty markers")

	buf.Reset()
	lg.SetJSON(false)
	lg.Error(errors.New("back to pretty"))
	assert.Contains(t, buf.String(), "✗ Error: back to pretty")
}

func TestLogger_Configure(t *testing.T) {
	lg, buf := newTestLogger(t)

	s := domain.DefaultSettings(t.TempDir())
	s.LogLevel = "warn"
	s.LogJSON = true
	require.NoError(t, lg.Configure(s))

	lg.Info("hidden")
	lg.Warn("shown", "storage", "commands")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"storage":"commands"`)

	s.LogLevel = "verbose"
	require.ErrorIs(t, lg.Configure(s), domain.ErrConfigInvalid)
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New()
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetOutput(io.Discard)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(4)
		go func() { defer wg.Done(); lg.Info("concurrent info") }()
		go func() { defer wg.Done(); lg.Warn("concurrent warn") }()
		go func() { defer wg.Done(); lg.Error(errors.New("concurrent error")) }()
		go func() { defer wg.Done(); lg.SetJSON(true) }()
	}
	wg.Wait()
}
