package buffer

import "fmt"

// Ref addresses one cell of a Buffer. Refs stay valid until the cell is
// deleted; freed slots are reused by later inserts.
type Ref int

// Marker is the cell code of a line break.
const Marker byte = '\n'

const (
	headRef Ref = 0
	tailRef Ref = 1
)

type cell struct {
	code byte
	prev Ref
	next Ref
	live bool
}

// Buffer is the document state: cells, sentinels, and the cursor.
type Buffer struct {
	cells []cell
	free  []Ref

	cursor  Ref
	size    int // content cells
	markers int

	terminated bool
	version    uint64
}

// New returns an empty buffer with the cursor on Head.
func New() *Buffer {
	b := &Buffer{cells: make([]cell, 2, 64)}
	b.cells[headRef] = cell{prev: headRef, next: tailRef, live: true}
	b.cells[tailRef] = cell{prev: headRef, next: tailRef, live: true}
	b.cursor = headRef
	return b
}

func (b *Buffer) Head() Ref { return headRef }

func (b *Buffer) Tail() Ref { return tailRef }

func (b *Buffer) Cursor() Ref { return b.cursor }

// SetCursor moves the cursor to r. r must be a live cell other than Tail.
func (b *Buffer) SetCursor(r Ref) {
	b.mustLive(r)
	if r == tailRef {
		panic("buffer: cursor on tail")
	}
	b.cursor = r
}

// Next returns the successor of r. The successor of Tail is Tail.
func (b *Buffer) Next(r Ref) Ref { return b.cells[r].next }

// Prev returns the predecessor of r. The predecessor of Head is Head.
func (b *Buffer) Prev(r Ref) Ref { return b.cells[r].prev }

// Code returns the byte stored in r. Sentinels hold 0.
func (b *Buffer) Code(r Ref) byte { return b.cells[r].code }

// IsSentinel reports whether r is Head or Tail.
func (b *Buffer) IsSentinel(r Ref) bool { return r == headRef || r == tailRef }

// IsMarker reports whether r is a line break cell.
func (b *Buffer) IsMarker(r Ref) bool {
	return !b.IsSentinel(r) && b.cells[r].code == Marker
}

// IsLive reports whether r references a cell currently in the sequence.
func (b *Buffer) IsLive(r Ref) bool {
	return r >= 0 && int(r) < len(b.cells) && b.cells[r].live
}

// Len returns the number of content cells.
func (b *Buffer) Len() int { return b.size }

// LineCount returns the number of lines: one more than the number of markers.
func (b *Buffer) LineCount() int { return b.markers + 1 }

// Version increments on every mutation of the cell sequence.
func (b *Buffer) Version() uint64 { return b.version }

// Terminated reports whether the serialized text ends with a line break that
// is not stored as a cell.
func (b *Buffer) Terminated() bool { return b.terminated }

// Insert links a new cell holding code right after the cursor and moves the
// cursor onto it.
func (b *Buffer) Insert(code byte) {
	at := b.cursor
	r := b.alloc()
	next := b.cells[at].next
	b.cells[r] = cell{code: code, prev: at, next: next, live: true}
	b.cells[next].prev = r
	b.cells[at].next = r

	b.cursor = r
	b.size++
	if code == Marker {
		b.markers++
	}
	b.version++
}

// DeleteAtCursor unlinks the cursor cell and moves the cursor to its
// predecessor. Deleting Head is a programming error and panics.
func (b *Buffer) DeleteAtCursor() {
	r := b.cursor
	if r == headRef {
		panic("buffer: delete at head")
	}
	b.mustLive(r)

	c := b.cells[r]
	b.cells[c.prev].next = c.next
	b.cells[c.next].prev = c.prev
	b.cells[r] = cell{}
	b.free = append(b.free, r)

	b.cursor = c.prev
	b.size--
	if c.code == Marker {
		b.markers--
	}
	b.version++
}

// Advance walks n cells forward from r, stopping at Tail.
func (b *Buffer) Advance(r Ref, n int) Ref {
	for ; n > 0 && r != tailRef; n-- {
		r = b.cells[r].next
	}
	return r
}

func (b *Buffer) alloc() Ref {
	if n := len(b.free); n > 0 {
		r := b.free[n-1]
		b.free = b.free[:n-1]
		return r
	}
	b.cells = append(b.cells, cell{})
	return Ref(len(b.cells) - 1)
}

func (b *Buffer) mustLive(r Ref) {
	if !b.IsLive(r) {
		panic(fmt.Sprintf("buffer: ref %d is not in the sequence", r))
	}
}
