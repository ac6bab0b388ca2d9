// Package style holds the colours and glyphs shared by the log handler and CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Teal   = lipgloss.Color("#14B8A6")
	Slate  = lipgloss.Color("#667085")
	Muted  = lipgloss.Color("#98A2B3")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "·"
	Arrow   = "→"
	Folder  = "▸"
	File    = "•"
)

// KindGlyph returns the glyph printed in front of a resolved entry.
func KindGlyph(isDir bool) string {
	if isDir {
		return Folder
	}
	return File
}
