// Package style holds the colors and icons shared by the list renderer, the
// log handler and command status lines.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette. Each color has a single role in the output.
var (
	// Accent marks use counts and debug lines.
	Accent = lipgloss.Color("#8B5CF6")
	// Muted marks ages and log attributes.
	Muted   = lipgloss.Color("#667085")
	Success = lipgloss.Color("#22A06B")
	Failure = lipgloss.Color("#D93025")
	Caution = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// Paint renders s in color c using the profile of out. The Ascii profile
// returns s unchanged.
func Paint(out *termenv.Output, c lipgloss.Color, s string) string {
	return out.String(s).Foreground(out.Color(string(c))).String()
}
