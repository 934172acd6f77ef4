package editor

import "github.com/iw2rmb/tilde/buffer"

// View is a snapshot of the cursor and frame of a Session.
type View struct {
	Cursor   buffer.Ref
	Row, Col int
	Frame    Frame

	goal int
}

// View captures the current cursor and frame.
func (s *Session) View() View {
	return View{Cursor: s.buf.Cursor(), Row: s.row, Col: s.col, Frame: s.frame, goal: s.goal}
}

// Restore reinstates a View taken from this session. The document must not
// have been edited since.
func (s *Session) Restore(v View) {
	s.buf.SetCursor(v.Cursor)
	s.row = v.Row
	s.col = v.Col
	s.frame = v.Frame
	s.goal = v.goal
}

// Highlight computes the view that shows m with the cursor just past the
// match. Matches near the start pin the frame to the first page; deeper
// matches are centred vertically. The session is not modified.
func (s *Session) Highlight(m buffer.Match, queryLen int) View {
	b := s.buf
	page := s.PageHeight()
	lines := b.LineCount()

	y := clampInt(m.Line-page/2, 0, max(0, lines-page))
	f := frameAt(b, y, page)

	end := m.Col + queryLen
	if end > s.width-1 {
		f.XOffset = end - (s.width - 1)
	}

	return View{
		Cursor: b.Advance(m.Ref, queryLen-1),
		Row:    m.Line - y,
		Col:    end - f.XOffset,
		Frame:  f,
		goal:   -1,
	}
}

// Search is an incremental search over a Session. Every change to the query
// rescans the document and highlights the first occurrence; with no
// occurrences the view from before the search is shown.
type Search struct {
	s     *Session
	saved View

	query   []byte
	matches []buffer.Match
	current int
}

// BeginSearch snapshots the session and starts a search with an empty query.
func (s *Session) BeginSearch() *Search {
	return &Search{s: s, saved: s.View(), current: -1}
}

func (q *Search) Query() string { return string(q.query) }

// Matches returns the occurrences of the current query in scan order.
func (q *Search) Matches() []buffer.Match { return q.matches }

// Current returns the highlighted occurrence and its index.
func (q *Search) Current() (buffer.Match, int, bool) {
	if q.current < 0 || q.current >= len(q.matches) {
		return buffer.Match{}, -1, false
	}
	return q.matches[q.current], q.current, true
}

// SetQuery replaces the query and returns the number of occurrences.
func (q *Search) SetQuery(query string) int {
	q.query = append(q.query[:0], query...)
	return q.rescan()
}

// AppendQuery extends the query by c and returns the number of occurrences.
func (q *Search) AppendQuery(c byte) int {
	q.query = append(q.query, c)
	return q.rescan()
}

// Backspace removes the last query byte and returns the number of
// occurrences.
func (q *Search) Backspace() int {
	if len(q.query) > 0 {
		q.query = q.query[:len(q.query)-1]
	}
	return q.rescan()
}

// Next highlights the following occurrence, wrapping to the first.
func (q *Search) Next() {
	if len(q.matches) == 0 {
		return
	}
	q.current = (q.current + 1) % len(q.matches)
	q.show()
}

// Prev highlights the preceding occurrence, wrapping to the last.
func (q *Search) Prev() {
	if len(q.matches) == 0 {
		return
	}
	q.current = (q.current - 1 + len(q.matches)) % len(q.matches)
	q.show()
}

// Accept ends the search, keeping the highlighted position.
func (q *Search) Accept() {
	if len(q.matches) == 0 {
		q.s.Restore(q.saved)
		return
	}
	q.s.goal = -1
}

// Cancel ends the search and restores the view from before it began.
func (q *Search) Cancel() {
	q.s.Restore(q.saved)
}

func (q *Search) rescan() int {
	q.matches = q.s.buf.FindAll(q.query)
	if len(q.matches) == 0 {
		q.current = -1
		q.s.Restore(q.saved)
		return 0
	}
	q.current = 0
	q.show()
	return len(q.matches)
}

func (q *Search) show() {
	q.s.Restore(q.s.Highlight(q.matches[q.current], len(q.query)))
}
