package editor

import (
	"fmt"

	"github.com/iw2rmb/tilde/internal/grapheme"
)

// Status is the information shown on the status line.
type Status struct {
	Name     string
	FileType string
	Lines    int
	Line     int // 1-based
	Col      int // 1-based
	Updated  bool
}

func (m Model) Status() Status {
	line, col := m.sess.Position()
	return Status{
		Name:     m.file.DisplayName(),
		FileType: m.file.FileType(),
		Lines:    m.sess.Buffer().LineCount(),
		Line:     line + 1,
		Col:      col + 1,
		Updated:  m.sess.Updated(),
	}
}

func (st Status) left() string {
	s := fmt.Sprintf("[%s] - %d lines", st.Name, st.Lines)
	if st.Updated {
		s += " (modified)"
	}
	return s
}

func (st Status) right() string {
	return fmt.Sprintf("%s | %d/%d", st.FileType, st.Line, st.Col)
}

func (m Model) renderStatus() string {
	st := m.Status()
	return m.cfg.Style.Status.Render(grapheme.Spread(st.left(), st.right(), m.sess.Width()))
}
