package editor

// ChangeEvent describes the document after a change.
type ChangeEvent struct {
	Version uint64
	Line    int
	Col     int
	Lines   int
	Updated bool
}

func buildChangeEvent(s *Session) ChangeEvent {
	line, col := s.Position()
	return ChangeEvent{
		Version: s.Buffer().Version(),
		Line:    line,
		Col:     col,
		Lines:   s.Buffer().LineCount(),
		Updated: s.Updated(),
	}
}
