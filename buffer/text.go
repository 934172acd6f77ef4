package buffer

import "strings"

// Load builds a buffer from data. One trailing line break is not stored as a
// cell; it is remembered and written back by Serialize. The cursor starts on
// Head.
func Load(data []byte) *Buffer {
	b := New()
	if n := len(data); n > 0 && data[n-1] == Marker {
		data = data[:n-1]
		b.terminated = true
	}
	for _, c := range data {
		b.Insert(c)
	}
	b.cursor = headRef
	b.version = 0
	return b
}

// Serialize returns the document bytes in order.
func (b *Buffer) Serialize() []byte {
	out := make([]byte, 0, b.size+1)
	for p := b.cells[headRef].next; p != tailRef; p = b.cells[p].next {
		out = append(out, b.cells[p].code)
	}
	if b.terminated {
		out = append(out, Marker)
	}
	return out
}

// Text returns the serialized document as a string.
func (b *Buffer) Text() string { return string(b.Serialize()) }

// Lines splits the stored cells into lines, without the trailing line break.
func (b *Buffer) Lines() []string {
	lines := make([]string, 0, b.markers+1)
	var sb strings.Builder
	for p := b.cells[headRef].next; p != tailRef; p = b.cells[p].next {
		if b.IsMarker(p) {
			lines = append(lines, sb.String())
			sb.Reset()
			continue
		}
		sb.WriteByte(b.cells[p].code)
	}
	return append(lines, sb.String())
}
