package editor

import "github.com/iw2rmb/tilde/buffer"

// reservedRows are the status and message lines below the text area.
const reservedRows = 2

// Session keeps a document, its frame, and the on-screen cursor consistent.
//
// After every exported operation the cursor row is its line minus
// Frame.YOffset and lies on the page; the cursor column is the cursor's line
// column minus Frame.XOffset, capped at Width-1. The line column may exceed
// the right edge by one, in which case the cursor is pinned to the last
// screen column.
type Session struct {
	buf *buffer.Buffer

	width  int
	height int

	row, col int
	frame    Frame

	// goal is the line column aimed for by consecutive vertical moves; -1
	// when no vertical move is in progress.
	goal int

	savedVersion uint64
}

// NewSession wraps b in a session sized width x height. The text area is
// height minus the status and message rows.
func NewSession(b *buffer.Buffer, width, height int) *Session {
	if b == nil {
		b = buffer.New()
	}
	s := &Session{buf: b, goal: -1}
	s.setSize(width, height)
	s.frame = frameAt(b, 0, s.PageHeight())
	s.savedVersion = b.Version()
	s.Reframe()
	return s
}

func (s *Session) Buffer() *buffer.Buffer { return s.buf }

func (s *Session) Frame() Frame { return s.frame }

// Cursor returns the screen position of the cursor within the text area.
func (s *Session) Cursor() (row, col int) { return s.row, s.col }

// Position returns the cursor's 0-based document line and line column.
func (s *Session) Position() (line, col int) {
	return s.frame.YOffset + s.row, s.buf.Column()
}

func (s *Session) Width() int { return s.width }

func (s *Session) Height() int { return s.height }

// PageHeight is the number of text rows.
func (s *Session) PageHeight() int {
	return max(s.height-reservedRows, 1)
}

// Updated reports whether the document changed since it was loaded or last
// saved.
func (s *Session) Updated() bool { return s.buf.Version() != s.savedVersion }

// MarkSaved clears the Updated flag.
func (s *Session) MarkSaved() { s.savedVersion = s.buf.Version() }

// Resize changes the window geometry and rebuilds the frame around the
// cursor.
func (s *Session) Resize(width, height int) {
	s.setSize(width, height)
	s.Reframe()
}

// Reframe recomputes the frame and screen cursor from the buffer cursor,
// keeping the current offsets where they remain valid.
func (s *Session) Reframe() {
	b := s.buf
	page := s.PageHeight()
	line := b.LineOf(b.Cursor())
	lines := b.LineCount()

	y := s.frame.YOffset
	if line < y {
		y = line
	}
	if line >= y+page {
		y = line - page + 1
	}
	y = clampInt(y, 0, max(0, lines-page))

	x := s.frame.XOffset
	s.frame = frameAt(b, y, page)
	s.frame.XOffset = x
	s.row = line - y
	s.place(b.Column(), b.CurrentLineLength())
}

func (s *Session) setSize(width, height int) {
	s.width = max(width, 1)
	s.height = max(height, reservedRows+1)
}

// alignEnd positions the view for a cursor at the end of a line of the given
// length. A line exactly as wide as the window fits.
func (s *Session) alignEnd(length int) {
	if length > s.width {
		s.frame.XOffset = length - s.width
		s.col = s.width - 1
		return
	}
	s.frame.XOffset = 0
	s.col = min(length, s.width-1)
}

// place positions the view for a cursor at column t of a line of the given
// length, scrolling horizontally only when t leaves the window.
func (s *Session) place(t, length int) {
	w := s.width
	switch {
	case length <= w:
		s.frame.XOffset = 0
		s.col = min(t, w-1)
	case t < s.frame.XOffset:
		s.frame.XOffset = t
		s.col = 0
	case t-s.frame.XOffset > w:
		s.frame.XOffset = t - w
		s.col = w - 1
	default:
		s.col = min(t-s.frame.XOffset, w-1)
	}
}

// pinned reports whether the cursor sits one column past the right edge.
func (s *Session) pinned() bool {
	return s.buf.Column()-s.frame.XOffset > s.width-1
}

// relocateTop puts the cursor at the start of the first visible line.
func (s *Session) relocateTop() {
	s.buf.SetCursor(s.frame.First)
	s.row = 0
	s.col = 0
	s.frame.XOffset = 0
	s.goal = -1
}

// VisibleRows returns the text of the visible lines, unclipped.
func (s *Session) VisibleRows() []string {
	b := s.buf
	page := s.PageHeight()
	rows := make([]string, 0, page)
	line := make([]byte, 0, s.width)
	for p := b.Next(s.frame.First); p != s.frame.Last && p != b.Tail(); p = b.Next(p) {
		if b.IsMarker(p) {
			rows = append(rows, string(line))
			line = line[:0]
			continue
		}
		line = append(line, b.Code(p))
	}
	return append(rows, string(line))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
