package buffer

// CurrentLineLength returns the number of non-marker cells on the cursor's
// line.
func (b *Buffer) CurrentLineLength() int {
	n := 0
	for p := b.cursor; p != headRef && !b.IsMarker(p); p = b.cells[p].prev {
		n++
	}
	for p := b.cells[b.cursor].next; p != tailRef && !b.IsMarker(p); p = b.cells[p].next {
		n++
	}
	return n
}

// PreviousLineLength returns the length of the line above the cursor's line,
// or -1 when the cursor is on the first line.
func (b *Buffer) PreviousLineLength() int {
	p := b.LineStart()
	if p == headRef {
		return -1
	}
	n := 0
	for p = b.cells[p].prev; p != headRef && !b.IsMarker(p); p = b.cells[p].prev {
		n++
	}
	return n
}

// NextLineLength returns the length of the line below the cursor's line, or
// -1 when the cursor is on the last line.
func (b *Buffer) NextLineLength() int {
	p := b.cursor
	if b.IsMarker(p) {
		// The cursor marker opens the current line.
		p = b.cells[p].next
	}
	for p != tailRef && !b.IsMarker(p) {
		p = b.cells[p].next
	}
	if p == tailRef {
		return -1
	}
	n := 0
	for p = b.cells[p].next; p != tailRef && !b.IsMarker(p); p = b.cells[p].next {
		n++
	}
	return n
}

// Column returns how many cells of the cursor's line lie at or before the
// cursor. It is 0 when the cursor is on the marker (or Head) opening the line.
func (b *Buffer) Column() int {
	n := 0
	for p := b.cursor; p != headRef && !b.IsMarker(p); p = b.cells[p].prev {
		n++
	}
	return n
}

// LineStart returns the marker (or Head) that opens the cursor's line.
func (b *Buffer) LineStart() Ref {
	p := b.cursor
	for p != headRef && !b.IsMarker(p) {
		p = b.cells[p].prev
	}
	return p
}

// LineEnd returns the last cell of the cursor's line, or the opening marker
// (or Head) when the line is empty.
func (b *Buffer) LineEnd() Ref {
	p := b.cursor
	for {
		next := b.cells[p].next
		if next == tailRef || b.IsMarker(next) {
			return p
		}
		p = next
	}
}

// LineOf returns the 0-based line number of r.
func (b *Buffer) LineOf(r Ref) int {
	line := 0
	for p := r; p != headRef; p = b.cells[p].prev {
		if b.IsMarker(p) {
			line++
		}
	}
	return line
}
