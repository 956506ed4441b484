package components

import "github.com/charmbracelet/lipgloss"

// Icon is the opaque rendering capability supplied by an external icon set.
// The library never inspects an icon; it only asks it to render at a size
// and colour.
type Icon interface {
	Render(size int, color lipgloss.TerminalColor) string
}

// GlyphIcon is a trivial Icon backed by a single glyph, used by the host
// application and tests.
type GlyphIcon string

// Render draws the glyph with the requested colour. Size selects repetition
// for sizes above one cell.
func (g GlyphIcon) Render(size int, color lipgloss.TerminalColor) string {
	if g == "" {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(color)
	if size > 1 {
		style = style.Bold(true)
	}
	return style.Render(string(g))
}
