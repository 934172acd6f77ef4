package buffer

// Match is one occurrence of a query: the first matching cell and its
// 0-based line and column.
type Match struct {
	Ref  Ref
	Line int
	Col  int
}

// FindAll scans the document once, left to right, and returns every
// occurrence of query in scan order. Occurrences may overlap. An empty query
// has no occurrences.
func (b *Buffer) FindAll(query []byte) []Match {
	if len(query) == 0 {
		return nil
	}

	var out []Match
	line, col := 0, 0
	for p := b.cells[headRef].next; p != tailRef; p = b.cells[p].next {
		if b.IsMarker(p) {
			line++
			col = 0
			continue
		}
		if b.matchAt(p, query) {
			out = append(out, Match{Ref: p, Line: line, Col: col})
		}
		col++
	}
	return out
}

func (b *Buffer) matchAt(p Ref, query []byte) bool {
	for _, c := range query {
		if p == tailRef || b.cells[p].code != c {
			return false
		}
		p = b.cells[p].next
	}
	return true
}
