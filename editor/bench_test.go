package editor

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func BenchmarkCursorMove(b *testing.B) {
	for _, lines := range []int{100, 1000, 3000} {
		doc := benchmarkDoc(lines)

		b.Run(fmt.Sprintf("keys/lines=%d", lines), func(b *testing.B) {
			m := New(Config{Text: doc, Width: 160, Height: 40})
			benchmarkCursorPingPong(b, m)
		})

		b.Run(fmt.Sprintf("sweep/lines=%d", lines), func(b *testing.B) {
			s := newTestSession(doc, 160, 40)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if s.Frame().YOffset+s.row == lines-1 {
					s.PageUp()
					for s.Frame().YOffset > 0 {
						s.PageUp()
					}
					continue
				}
				s.Down()
			}
		})
	}
}

func BenchmarkTyping(b *testing.B) {
	s := newTestSession("", 80, 24)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%64 == 63 {
			s.Enter()
			continue
		}
		s.InsertChar('a' + byte(i%26))
	}
}

func benchmarkCursorPingPong(b *testing.B, m Model) {
	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			m, _ = m.Update(right)
		} else {
			m, _ = m.Update(left)
		}
	}
}

func benchmarkDoc(lines int) string {
	var sb strings.Builder
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&sb, "%04d the quick brown fox jumps over the lazy dog\n", i)
	}
	return sb.String()
}
