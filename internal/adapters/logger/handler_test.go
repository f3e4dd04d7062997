package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/mru/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "debug message", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})
			lg := slog.New(handler)

			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).
		With("storage", "files").
		WithGroup("lock")

	lg.Info("acquired", "wait_ms", 12)

	g := goldie.New(t)
	g.Assert(t, "handler_attrs_group", buf.Bytes())
}

func TestPrettyHandler_LevelVar(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	level := &slog.LevelVar{}
	level.Set(slog.LevelWarn)

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}))

	lg.Info("dropped")
	assert.Empty(t, buf.String())

	level.Set(slog.LevelInfo)
	lg.Info("kept")
	assert.Equal(t, "kept\n", buf.String())
}

func TestPrettyHandler_AttrFormatting(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name string
		log  func(lg *slog.Logger)
		want string
	}{
		{
			name: "quotes values with spaces",
			log: func(lg *slog.Logger) {
				lg.Info("recorded use", "identity", "make build", "count", 2)
			},
			want: "recorded use identity=\"make build\" count=2\n",
		},
		{
			name: "quotes empty values",
			log: func(lg *slog.Logger) {
				lg.Info("entry", "identity", "")
			},
			want: "entry identity=\"\"\n",
		},
		{
			name: "escapes newlines",
			log: func(lg *slog.Logger) {
				lg.Warn("discarding corrupt history", "error", "bad\nworse")
			},
			want: "! discarding corrupt history error=\"bad\\nworse\"\n",
		},
		{
			name: "expands group values",
			log: func(lg *slog.Logger) {
				lg.Info("history state", slog.Group("lock", "path", "/tmp/files.json.lock", "held", true))
			},
			want: "history state lock.path=/tmp/files.json.lock lock.held=true\n",
		},
		{
			name: "nests groups",
			log: func(lg *slog.Logger) {
				lg.WithGroup("history").WithGroup("files").Info("loaded", "entries", 3)
			},
			want: "loaded history.files.entries=3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.log(slog.New(logger.NewPrettyHandler(buf, nil)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
