// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
// s must not contain ANSI escape codes; use lipgloss.Width for styled text.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates a string to fit within maxWidth visual columns,
// appending an ellipsis when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadCenter centers s in width columns using spaces. Wider strings are
// truncated.
func PadCenter(s string, width int) string {
	w := VisualWidth(s)
	if w >= width {
		return Truncate(s, width)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// SplitColumns cuts s into the parts before column lo, between lo and hi
// (exclusive), and from hi on. A wide rune straddling a boundary goes to
// the earlier part.
func SplitColumns(s string, lo, hi int) (before, middle, after string) {
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}
	var b, m, a strings.Builder
	col := 0
	for _, r := range s {
		switch {
		case col < lo:
			b.WriteRune(r)
		case col < hi:
			m.WriteRune(r)
		default:
			a.WriteRune(r)
		}
		col += runewidth.RuneWidth(r)
	}
	return b.String(), m.String(), a.String()
}
