package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// StringWidth returns the display width of s in terminal cells, ignoring ANSI escapes.
func StringWidth(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to maxWidth display cells, ending in "…" when cut.
// Wide runes (CJK, emoji) count as two cells.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}

	var b strings.Builder
	width := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if width+rw > maxWidth-1 {
			break
		}
		b.WriteRune(r)
		width += rw
	}
	b.WriteString("…")
	return b.String()
}

// PadRight left-aligns s in a cell of the given width, truncating if needed.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := StringWidth(s)
	if w > width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// PadLeft right-aligns s in a cell of the given width, truncating if needed.
func PadLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := StringWidth(s)
	if w > width {
		return Truncate(s, width)
	}
	return strings.Repeat(" ", width-w) + s
}
