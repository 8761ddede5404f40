// Package style holds the stitch palette and status icons shared by the
// reporter and the log handler.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Slate  = lipgloss.Color("#5B6573")
	Green  = lipgloss.Color("#1F9D5B")
	Red    = lipgloss.Color("#D4483B")
	Yellow = lipgloss.Color("#E09E10")
)

// Status icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)
