package editor

import "github.com/iw2rmb/tilde/buffer"

// InsertChar inserts c after the cursor. A line break is handled by Enter.
func (s *Session) InsertChar(c byte) {
	if c == buffer.Marker {
		s.Enter()
		return
	}
	s.goal = -1
	s.buf.Insert(c)
	if s.col == s.width-1 {
		s.frame.XOffset++
	} else {
		s.col++
	}
}

// Enter splits the cursor's line and moves the cursor to the start of the
// new line.
func (s *Session) Enter() {
	s.goal = -1
	s.buf.Insert(buffer.Marker)
	s.frame.Lines++
	s.frame.XOffset = 0
	s.col = 0

	page := s.PageHeight()
	switch {
	case s.frame.Lines > page && s.row == page-1:
		// The new marker lies inside the old window, so Last still bounds
		// the shifted one.
		s.frame.SlideFirstForward(s.buf)
		s.frame.YOffset++
	case s.frame.Lines > page:
		s.row++
		s.frame.SlideLastBackward(s.buf)
	default:
		s.row++
	}
}

// Backspace deletes the cell at the cursor, joining lines when the cursor
// is at a line start. It is a no-op at the start of the document.
func (s *Session) Backspace() {
	b := s.buf
	if b.Cursor() == b.Head() {
		return
	}
	s.goal = -1

	crl := b.CurrentLineLength()
	prl := b.PreviousLineLength()
	k := b.Column()

	switch {
	case s.col == 0 && crl > 0 && s.frame.XOffset > 0:
		s.frame.XOffset--
	case k == 0 && s.row == 0:
		// The cursor is the marker First.
		s.frame.SlideFirstBackward(b)
		s.frame.YOffset--
		s.frame.Lines--
		s.alignEnd(prl)
	case k == 0:
		if s.frame.Last == b.Tail() && s.frame.YOffset > 0 {
			s.frame.SlideFirstBackward(b)
			s.frame.YOffset--
		} else {
			s.row--
			s.frame.SlideLastForward(b)
		}
		s.frame.Lines--
		s.alignEnd(prl)
	case !s.pinned():
		s.col--
	}
	b.DeleteAtCursor()
}
