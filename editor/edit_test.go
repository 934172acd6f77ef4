package editor

import (
	"strings"
	"testing"
)

func TestInsertChar_AtEndOfFirstLine(t *testing.T) {
	s := newTestSession("ab\ncd\n", 80, 24)
	s.End()
	s.InsertChar('x')
	checkInvariants(t, s)

	if got := s.Buffer().Text(); got != "abx\ncd\n" {
		t.Fatalf("text=%q, want %q", got, "abx\ncd\n")
	}
	if row, col := s.Cursor(); row != 0 || col != 3 {
		t.Fatalf("cursor=(%d,%d), want (0,3)", row, col)
	}
	if s.Frame().Lines != 2 {
		t.Fatalf("lines=%d, want 2", s.Frame().Lines)
	}
	if !s.Updated() {
		t.Fatalf("expected session to be updated")
	}
}

func TestInsertChar_ScrollsAtRightEdge(t *testing.T) {
	s := newTestSession("", 4, 5)
	typeText(s, "abc")
	if _, col := s.Cursor(); col != 3 || s.Frame().XOffset != 0 {
		t.Fatalf("col=%d xoffset=%d, want 3 and 0", col, s.Frame().XOffset)
	}
	typeText(s, "de")
	checkInvariants(t, s)
	if _, col := s.Cursor(); col != 3 || s.Frame().XOffset != 2 {
		t.Fatalf("col=%d xoffset=%d, want 3 and 2", col, s.Frame().XOffset)
	}
}

func TestInsertChar_PinnedCursorStaysPinned(t *testing.T) {
	s := newTestSession(strings.Repeat("a", 85), 80, 24)
	s.End()
	s.InsertChar('z')
	checkInvariants(t, s)
	if got := s.Frame().XOffset; got != 6 {
		t.Fatalf("xoffset=%d, want 6", got)
	}
	if _, col := s.Cursor(); col != 79 {
		t.Fatalf("col=%d, want 79", col)
	}
}

func TestInsertChar_NewlineIsEnter(t *testing.T) {
	s := newTestSession("", 10, 5)
	typeText(s, "a\nb")
	checkInvariants(t, s)
	if got := s.Buffer().Text(); got != "a\nb" {
		t.Fatalf("text=%q, want %q", got, "a\nb")
	}
	if row, col := s.Cursor(); row != 1 || col != 1 {
		t.Fatalf("cursor=(%d,%d), want (1,1)", row, col)
	}
}

func TestEnter_SplitsLine(t *testing.T) {
	s := newTestSession("abcd", 10, 5)
	s.Right()
	s.Right()
	s.Enter()
	checkInvariants(t, s)
	if got := s.Buffer().Text(); got != "ab\ncd" {
		t.Fatalf("text=%q, want %q", got, "ab\ncd")
	}
	if row, col := s.Cursor(); row != 1 || col != 0 {
		t.Fatalf("cursor=(%d,%d), want (1,0)", row, col)
	}
}

func TestEnter_ResetsHorizontalScroll(t *testing.T) {
	s := newTestSession(strings.Repeat("a", 30), 10, 5)
	s.End()
	s.Enter()
	checkInvariants(t, s)
	if s.Frame().XOffset != 0 {
		t.Fatalf("xoffset=%d, want 0", s.Frame().XOffset)
	}
}

func TestEnter_AtBottomRowScrolls(t *testing.T) {
	s := newTestSession("1\n2\n3", 80, 5) // page 3
	s.Down()
	s.Down()
	s.End()
	s.Enter()
	checkInvariants(t, s)

	if got := s.Frame().YOffset; got != 1 {
		t.Fatalf("yoffset=%d, want 1", got)
	}
	if row, col := s.Cursor(); row != 2 || col != 0 {
		t.Fatalf("cursor=(%d,%d), want (2,0)", row, col)
	}
	if got := strings.Join(s.VisibleRows(), "|"); got != "2|3|" {
		t.Fatalf("rows=%q, want %q", got, "2|3|")
	}
}

func TestEnter_AboveBottomPullsLastBack(t *testing.T) {
	s := newTestSession("1\n2\n3", 80, 5) // page 3
	s.End()
	s.Enter()
	checkInvariants(t, s)
	if row, _ := s.Cursor(); row != 1 {
		t.Fatalf("row=%d, want 1", row)
	}
	if got := strings.Join(s.VisibleRows(), "|"); got != "1||2" {
		t.Fatalf("rows=%q, want %q", got, "1||2")
	}
}

func TestEnter_ManyLinesKeepsInvariants(t *testing.T) {
	s := newTestSession("", 5, 4) // page 2
	for i := 0; i < 10; i++ {
		s.InsertChar(byte('0' + i))
		s.Enter()
		checkInvariants(t, s)
	}
	if got := s.Frame().YOffset; got != 9 {
		t.Fatalf("yoffset=%d, want 9", got)
	}
}

func TestBackspace_AtDocumentStartIsNoOp(t *testing.T) {
	s := newTestSession("ab\ncd\n", 80, 24)
	before := s.View()
	v := s.Buffer().Version()

	s.Backspace()
	checkInvariants(t, s)
	if s.View() != before {
		t.Fatalf("view changed: got %+v, want %+v", s.View(), before)
	}
	if s.Buffer().Version() != v || s.Buffer().Text() != "ab\ncd\n" {
		t.Fatalf("expected nothing deleted, got %q", s.Buffer().Text())
	}
	if s.Frame().Lines != 2 {
		t.Fatalf("lines=%d, want 2", s.Frame().Lines)
	}
}

func TestBackspace_MidLine(t *testing.T) {
	s := newTestSession("abc", 80, 24)
	s.End()
	s.Backspace()
	checkInvariants(t, s)
	if got := s.Buffer().Text(); got != "ab" {
		t.Fatalf("text=%q, want %q", got, "ab")
	}
	if _, col := s.Cursor(); col != 2 {
		t.Fatalf("col=%d, want 2", col)
	}
}

func TestBackspace_JoinsLines(t *testing.T) {
	s := newTestSession("ab\ncd", 80, 24)
	s.Down()
	s.Home()
	s.Backspace()
	checkInvariants(t, s)
	if got := s.Buffer().Text(); got != "abcd" {
		t.Fatalf("text=%q, want %q", got, "abcd")
	}
	if row, col := s.Cursor(); row != 0 || col != 2 {
		t.Fatalf("cursor=(%d,%d), want (0,2)", row, col)
	}
	if s.Frame().Lines != 1 {
		t.Fatalf("lines=%d, want 1", s.Frame().Lines)
	}
}

func TestBackspace_OnFirstVisibleLineScrollsUp(t *testing.T) {
	s := newTestSession("1\n2\n3\n4\n5", 80, 5) // page 3
	s.PageDown()
	if s.Frame().YOffset != 2 {
		t.Fatalf("yoffset=%d, want 2", s.Frame().YOffset)
	}
	s.Backspace()
	checkInvariants(t, s)
	if got := s.Buffer().Text(); got != "1\n23\n4\n5" {
		t.Fatalf("text=%q, want %q", got, "1\n23\n4\n5")
	}
	if got := s.Frame().YOffset; got != 1 {
		t.Fatalf("yoffset=%d, want 1", got)
	}
	if row, col := s.Cursor(); row != 0 || col != 1 {
		t.Fatalf("cursor=(%d,%d), want (0,1)", row, col)
	}
}

func TestBackspace_PinnedToEndScrollsUp(t *testing.T) {
	s := newTestSession("1\n2\n3\n4\n5", 80, 5) // page 3
	s.PageDown()
	s.Down()
	s.Down() // line 4, row 2
	s.Backspace()
	checkInvariants(t, s)
	if got := s.Frame().YOffset; got != 1 {
		t.Fatalf("yoffset=%d, want 1", got)
	}
	if row, col := s.Cursor(); row != 2 || col != 1 {
		t.Fatalf("cursor=(%d,%d), want (2,1)", row, col)
	}
}

func TestBackspace_ScrolledLineStart(t *testing.T) {
	s := newTestSession(strings.Repeat("a", 20), 10, 5)
	s.End() // xoffset 10, pinned
	for i := 0; i < 10; i++ {
		s.Left()
	}
	if _, col := s.Cursor(); col != 0 {
		t.Fatalf("col=%d, want 0", col)
	}
	s.Backspace()
	checkInvariants(t, s)
	if got := s.Frame().XOffset; got != 9 {
		t.Fatalf("xoffset=%d, want 9", got)
	}
}
