package editor

// Up moves the cursor to the previous line, aiming for the goal column.
func (s *Session) Up() {
	if s.row == 0 && s.frame.YOffset == 0 {
		return
	}
	b := s.buf
	k := b.Column()
	if s.goal < 0 {
		s.goal = k
	}
	prl := b.PreviousLineLength()
	t := min(s.goal, prl)

	p := b.Cursor()
	for i := k + 1 + prl - t; i > 0; i-- {
		p = b.Prev(p)
	}
	b.SetCursor(p)
	s.place(t, prl)

	if s.row == 0 {
		s.frame.SlideFirstBackward(b)
		s.frame.SlideLastBackward(b)
		s.frame.YOffset--
		return
	}
	s.row--
}

// Down moves the cursor to the next line, aiming for the goal column.
func (s *Session) Down() {
	if s.frame.YOffset+s.row >= s.frame.Lines-1 {
		return
	}
	b := s.buf
	k := b.Column()
	if s.goal < 0 {
		s.goal = k
	}
	crl := b.CurrentLineLength()
	nrl := b.NextLineLength()
	t := min(s.goal, nrl)

	p := b.Cursor()
	for i := crl - k + 1 + t; i > 0; i-- {
		p = b.Next(p)
	}
	b.SetCursor(p)
	s.place(t, nrl)

	if s.row == s.PageHeight()-1 {
		s.frame.SlideFirstForward(b)
		s.frame.SlideLastForward(b)
		s.frame.YOffset++
		return
	}
	s.row++
}

// Left moves the cursor one cell back. Crossing a line break puts the
// cursor at the end of the previous line.
func (s *Session) Left() {
	b := s.buf
	cur := b.Cursor()
	if cur == b.Head() {
		return
	}
	s.goal = -1

	if b.IsMarker(cur) {
		prl := b.PreviousLineLength()
		if cur == s.frame.First {
			s.frame.SlideFirstBackward(b)
			s.frame.SlideLastBackward(b)
			s.frame.YOffset--
		} else {
			s.row--
		}
		b.SetCursor(b.Prev(cur))
		s.alignEnd(prl)
		return
	}

	pinned := s.pinned()
	b.SetCursor(b.Prev(cur))
	switch {
	case pinned:
	case s.col == 0:
		s.frame.XOffset--
	default:
		s.col--
	}
}

// Right moves the cursor one cell forward. Crossing a line break puts the
// cursor at the start of the next line.
func (s *Session) Right() {
	b := s.buf
	next := b.Next(b.Cursor())
	if next == b.Tail() {
		return
	}
	s.goal = -1
	b.SetCursor(next)

	if b.IsMarker(next) {
		s.frame.XOffset = 0
		s.col = 0
		if s.row == s.PageHeight()-1 {
			s.frame.SlideFirstForward(b)
			s.frame.SlideLastForward(b)
			s.frame.YOffset++
			return
		}
		s.row++
		return
	}

	switch {
	case s.col < s.width-1:
		s.col++
	case s.atLineEnd() && b.Column()-s.frame.XOffset == s.width:
		// Pin at the line end, as End aligns it.
	default:
		s.frame.XOffset++
	}
}

// atLineEnd reports whether the cursor is on the last cell of its line.
func (s *Session) atLineEnd() bool {
	next := s.buf.Next(s.buf.Cursor())
	return next == s.buf.Tail() || s.buf.IsMarker(next)
}

// Home moves the cursor to the start of its line.
func (s *Session) Home() {
	s.goal = -1
	s.buf.SetCursor(s.buf.LineStart())
	s.frame.XOffset = 0
	s.col = 0
}

// End moves the cursor past the last cell of its line.
func (s *Session) End() {
	s.goal = -1
	length := s.buf.CurrentLineLength()
	s.buf.SetCursor(s.buf.LineEnd())
	s.alignEnd(length)
}

// PageDown scrolls one page toward the end, never past the last full page,
// and puts the cursor at the start of the first visible line.
func (s *Session) PageDown() {
	page := s.PageHeight()
	below := s.frame.Lines - (s.frame.YOffset + page)
	n := clampInt(below, 0, page)
	for i := 0; i < n; i++ {
		s.frame.SlideFirstForward(s.buf)
		s.frame.SlideLastForward(s.buf)
	}
	s.frame.YOffset += n
	s.relocateTop()
}

// PageUp scrolls one page toward the start and puts the cursor at the start
// of the first visible line.
func (s *Session) PageUp() {
	n := min(s.frame.YOffset, s.PageHeight())
	for i := 0; i < n; i++ {
		s.frame.SlideFirstBackward(s.buf)
		s.frame.SlideLastBackward(s.buf)
	}
	s.frame.YOffset -= n
	s.relocateTop()
}
