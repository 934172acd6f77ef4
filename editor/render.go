package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tilde/internal/grapheme"
)

type cellKind int

const (
	cellText cellKind = iota
	cellMatch
	cellCursor
)

// span is a half-open range of screen columns on one row.
type span struct {
	start, end int
}

func (s span) contains(col int) bool { return col >= s.start && col < s.end }

func (m Model) View() string {
	body := m.body
	body.Width = m.sess.Width()
	body.Height = m.sess.PageHeight()
	body.SetContent(m.renderBody())
	return lipgloss.JoinVertical(lipgloss.Left, body.View(), m.renderStatus(), m.renderMessage())
}

func (m Model) renderBody() string {
	s := m.sess
	st := m.cfg.Style
	page := s.PageHeight()
	rows := s.VisibleRows()

	matchRow, match := -1, span{}
	if m.mode == modeFind && m.search != nil {
		if mt, _, ok := m.search.Current(); ok {
			matchRow = mt.Line - s.frame.YOffset
			start := mt.Col - s.frame.XOffset
			match = span{start: start, end: start + len(m.search.query)}
		}
	}

	out := make([]string, 0, page)
	for r := 0; r < page; r++ {
		if r >= len(rows) {
			out = append(out, st.Filler.Render("~"))
			continue
		}
		cursor := -1
		if r == s.row {
			cursor = s.col
		}
		hl := span{}
		if r == matchRow {
			hl = match
		}
		out = append(out, m.renderRow(rows[r], cursor, hl))
	}
	return strings.Join(out, "\n")
}

// renderRow draws the columns of line visible at the current horizontal
// offset. cursor is the screen column of the cursor, or -1.
func (m Model) renderRow(line string, cursor int, hl span) string {
	st := m.cfg.Style
	x := m.sess.frame.XOffset
	w := m.sess.Width()

	cells := make([]byte, 0, w)
	for i := x; i < len(line) && i < x+w; i++ {
		cells = append(cells, displayByte(line[i]))
	}
	for len(cells) <= cursor {
		cells = append(cells, ' ')
	}

	kind := func(col int) cellKind {
		switch {
		case col == cursor:
			return cellCursor
		case hl.contains(col):
			return cellMatch
		}
		return cellText
	}

	var sb strings.Builder
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && kind(i) == kind(start) {
			continue
		}
		style := st.Text
		switch kind(start) {
		case cellCursor:
			style = st.Cursor
		case cellMatch:
			style = st.Match
		}
		sb.WriteString(style.Render(string(cells[start:i])))
		start = i
	}
	return sb.String()
}

func (m Model) renderMessage() string {
	st := m.cfg.Style
	w := m.sess.Width()
	switch m.mode {
	case modeSaveAs:
		left := "Save as: " + m.input
		return st.Prompt.Render(grapheme.Spread(left, "Enter = save | Esc = cancel", w))
	case modeFind:
		q := m.search
		left := "Search: " + q.Query()
		if n := len(q.Matches()); n > 0 {
			_, i, _ := q.Current()
			left += fmt.Sprintf(" (%d/%d)", i+1, n)
		} else if q.Query() != "" {
			left += " (" + msgNoMatches + ")"
		}
		return st.Prompt.Render(grapheme.Spread(left, "Esc = cancel | Enter = accept", w))
	}
	if m.message != "" {
		return st.Message.Render(grapheme.Truncate(m.message, w, "…"))
	}
	h := m.help
	h.Width = w
	return h.View(m.cfg.KeyMap)
}

// displayByte maps document bytes that have no single-cell glyph.
func displayByte(c byte) byte {
	switch {
	case c == '\t':
		return ' '
	case c < ' ' || c >= 0x7f:
		return '?'
	}
	return c
}
