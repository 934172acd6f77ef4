package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// DropLast removes the final grapheme cluster of text.
func DropLast(text string) string {
	clusters := Split(text)
	if len(clusters) == 0 {
		return ""
	}
	return strings.Join(clusters[:len(clusters)-1], "")
}

// Width returns the terminal cell width of text.
func Width(text string) int { return runewidth.StringWidth(text) }

// Truncate cuts text to at most width cells, marking the cut with tail.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, tail)
}

// Spread joins left and right with enough spaces to fill width cells. The
// right part wins when both do not fit.
func Spread(left, right string, width int) string {
	rw := Width(right)
	if rw >= width {
		return Truncate(right, width, "")
	}
	left = Truncate(left, width-rw-1, "…")
	gap := width - rw - Width(left)
	return left + strings.Repeat(" ", gap) + right
}
