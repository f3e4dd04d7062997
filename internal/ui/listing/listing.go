// Package listing renders history entries for the list command.
package listing

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/mru/internal/engine/history"
	"go.trai.ch/mru/internal/ui/output"
	"go.trai.ch/mru/internal/ui/style"
	"go.trai.ch/zerr"
)

// Format selects how entries are printed.
type Format int

const (
	// Plain prints one identity per line.
	Plain Format = iota
	// Long prints the age and use count before each identity.
	Long
	// JSON prints a JSON array.
	JSON
)

// Entry is an alias kept short for the renderer signatures.
type Entry = history.Entry[domain.Identity]

// Renderer writes entries to an output.
type Renderer struct {
	out *termenv.Output
	now func() time.Time
}

// New creates a Renderer writing to w with colors chosen for w.
func New(w io.Writer) *Renderer {
	return NewWithOutput(output.New(w), time.Now)
}

// NewWithOutput creates a Renderer on a prepared output and clock.
func NewWithOutput(out *termenv.Output, now func() time.Time) *Renderer {
	return &Renderer{out: out, now: now}
}

// Render prints entries, most recent first, in format f.
func (r *Renderer) Render(entries []Entry, f Format) error {
	switch f {
	case Long:
		return r.long(entries)
	case JSON:
		return r.json(entries)
	default:
		return r.plain(entries)
	}
}

func (r *Renderer) plain(entries []Entry) error {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Identity.String())
		b.WriteByte('\n')
	}
	return r.write(b.String())
}

func (r *Renderer) long(entries []Entry) error {
	now := r.now()

	ages := make([]string, len(entries))
	counts := make([]string, len(entries))
	var ageWidth, countWidth int
	for i, e := range entries {
		ages[i] = humanize.RelTime(e.LastUsedAt, now, "ago", "from now")
		counts[i] = strconv.FormatUint(e.UseCount, 10)
		ageWidth = max(ageWidth, len(ages[i]))
		countWidth = max(countWidth, len(counts[i]))
	}

	var b strings.Builder
	for i, e := range entries {
		b.WriteString(style.Paint(r.out, style.Muted, fmt.Sprintf("%-*s", ageWidth, ages[i])))
		b.WriteString("  ")
		b.WriteString(style.Paint(r.out, style.Accent, fmt.Sprintf("%*s", countWidth, counts[i])))
		b.WriteString("  ")
		b.WriteString(e.Identity.String())
		b.WriteByte('\n')
	}
	return r.write(b.String())
}

type jsonEntry struct {
	Identity   string    `json:"identity"`
	LastUsedAt time.Time `json:"last_used_at"`
	UseCount   uint64    `json:"use_count"`
}

func (r *Renderer) json(entries []Entry) error {
	out := make([]jsonEntry, len(entries))
	for i, e := range entries {
		out[i] = jsonEntry{
			Identity:   e.Identity.String(),
			LastUsedAt: e.LastUsedAt.UTC(),
			UseCount:   e.UseCount,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode listing")
	}
	return r.write(string(data) + "\n")
}

func (r *Renderer) write(s string) error {
	if _, err := r.out.WriteString(s); err != nil {
		return zerr.Wrap(err, "failed to write listing")
	}
	return nil
}
