// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies. ANSI escape
// sequences take no columns.
func VisualWidth(s string) int {
	return ansi.StringWidth(s)
}

// Truncate shortens plain text to at most maxWidth columns, ending in … when
// anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// PadRightVisual pads s with spaces to targetWidth columns, truncating when
// it is already wider.
func PadRightVisual(s string, targetWidth int) string {
	w := VisualWidth(s)
	if w > targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + strings.Repeat(" ", targetWidth-w)
}

// Center left-pads every line of s so it sits in the middle of width
// columns. Lines wider than width are left alone.
func Center(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		w := VisualWidth(l)
		if w >= width {
			continue
		}
		lines[i] = strings.Repeat(" ", (width-w)/2) + l
	}
	return strings.Join(lines, "\n")
}
