// Package style holds the colors and glyphs shared by everything that
// prints to the terminal.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#2E7DD7")
	Muted  = lipgloss.Color("#6B7280")
	Green  = lipgloss.Color("#1F9D55")
	Red    = lipgloss.Color("#DC2626")
	Yellow = lipgloss.Color("#D97706")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// Styles used by tables and headings.
var (
	Heading = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	Dim     = lipgloss.NewStyle().Foreground(Muted)
	Success = lipgloss.NewStyle().Foreground(Green)
	Failure = lipgloss.NewStyle().Foreground(Red)
	Caution = lipgloss.NewStyle().Foreground(Yellow)
)

// ForLevel returns the glyph and color for a message severity, given by
// its slog level value.
func ForLevel(level int) (string, lipgloss.Color) {
	switch {
	case level >= 8:
		return Cross, Red
	case level >= 4:
		return Warning, Yellow
	default:
		return "", Muted
	}
}
