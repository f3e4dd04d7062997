package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/mru/internal/ui/output"
	"go.trai.ch/mru/internal/ui/style"
)

// PrettyHandler is a slog.Handler that writes one human-readable line per
// record: a colored level icon, the message, then key=value attributes.
type PrettyHandler struct {
	out   *termenv.Output
	mu    *sync.Mutex
	level slog.Leveler
	// attrs holds the attributes from WithAttrs, already formatted.
	attrs string
	// groups is the dotted group path applied to attributes added later.
	groups string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
// A non-nil opts.Level is consulted on every record, so a *slog.LevelVar can
// change the level later.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		mu:    &sync.Mutex{},
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var line strings.Builder

	if icon, color := levelIcon(r.Level); icon != "" {
		line.WriteString(style.Paint(h.out, color, icon))
		line.WriteByte(' ')
	}
	line.WriteString(r.Message)

	var attrs strings.Builder
	attrs.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&attrs, h.groups, a)
		return true
	})
	if attrs.Len() > 0 {
		line.WriteString(style.Paint(h.out, style.Muted, attrs.String()))
	}
	line.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(line.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.groups, a)
	}

	clone := *h
	clone.attrs = b.String()
	return &clone
}

// WithGroup returns a new Handler that qualifies later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.groups = qualify(h.groups, name)
	return &clone
}

func levelIcon(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Failure
	case level >= slog.LevelWarn:
		return style.Warning, style.Caution
	case level >= slog.LevelInfo:
		return "", ""
	default:
		return style.Dot, style.Accent
	}
}

// appendAttr writes " key=value", expanding group values into dotted keys.
func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if a.Key == "" && v.Any() == nil {
		return
	}

	if v.Kind() == slog.KindGroup {
		group := v.Group()
		if len(group) == 0 {
			return
		}
		// Inline groups with an empty key keep the current prefix.
		if a.Key != "" {
			prefix = qualify(prefix, a.Key)
		}
		for _, ga := range group {
			appendAttr(b, prefix, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(qualify(prefix, a.Key))
	b.WriteByte('=')
	b.WriteString(quoteIfNeeded(v.String()))
}

func qualify(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// quoteIfNeeded quotes values that would not survive a whitespace split,
// such as command lines and paths with spaces.
func quoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	for _, r := range s {
		if unicode.IsSpace(r) || r == '"' || r == '=' || !unicode.IsPrint(r) {
			return strconv.Quote(s)
		}
	}
	return s
}
