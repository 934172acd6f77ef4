package editor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	b, f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b.Len() != 0 || f.Name != path || f.IsNew() {
		t.Fatalf("buffer len=%d file=%+v, want empty buffer bound to %s", b.Len(), f, path)
	}

	s := NewSession(b, 80, 24)
	msg, err := f.Save(s)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if want := "Save " + path + " successfully."; msg != want {
		t.Fatalf("message=%q, want %q", msg, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
}

func TestLoadFile_ReadError(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := LoadFile(dir); err == nil {
		t.Fatalf("expected error loading a directory")
	}
}

func TestFile_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	const text = "ab\ncd\n"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	b, f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s := NewSession(b, 80, 24)
	if msg, err := f.Save(s); err != nil || msg != msgNoChanges {
		t.Fatalf("save unmodified: msg=%q err=%v, want %q", msg, err, msgNoChanges)
	}

	s.End()
	s.InsertChar('x')
	if _, err := f.Save(s); err != nil {
		t.Fatalf("save: %v", err)
	}
	if s.Updated() {
		t.Fatalf("expected session clean after save")
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "abx\ncd\n" {
		t.Fatalf("file=%q, want %q", got, "abx\ncd\n")
	}

	b2, _, err := LoadFile(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if b2.Text() != string(got) {
		t.Fatalf("reload text=%q, want %q", b2.Text(), got)
	}
}

func TestFile_SaveWithoutName(t *testing.T) {
	var f File
	s := newTestSession("x", 80, 24)
	if _, err := f.Save(s); !errors.Is(err, ErrNoName) {
		t.Fatalf("err=%v, want ErrNoName", err)
	}
	if _, err := f.SaveAs(s, ""); !errors.Is(err, ErrNoName) {
		t.Fatalf("err=%v, want ErrNoName", err)
	}
}

func TestFile_SaveAsFailureKeepsBinding(t *testing.T) {
	dir := t.TempDir()
	f := File{}
	s := newTestSession("x", 80, 24)
	s.End()
	s.InsertChar('y')

	bad := filepath.Join(dir, "missing", "out.txt")
	if _, err := f.SaveAs(s, bad); err == nil {
		t.Fatalf("expected error saving into a missing directory")
	}
	if !f.IsNew() {
		t.Fatalf("file=%+v, want binding unchanged", f)
	}
	if !s.Updated() {
		t.Fatalf("expected document still modified")
	}

	good := filepath.Join(dir, "out.txt")
	msg, err := f.SaveAs(s, good)
	if err != nil {
		t.Fatalf("save as: %v", err)
	}
	if msg != "Save "+good+" successfully." || f.Name != good {
		t.Fatalf("msg=%q file=%+v", msg, f)
	}
}

func TestFile_NameAndType(t *testing.T) {
	tests := []struct {
		name     string
		display  string
		fileType string
	}{
		{name: "", display: "No name", fileType: "no ft"},
		{name: "notes.txt", display: "notes.txt", fileType: "txt"},
		{name: "dir/archive.tar.gz", display: "archive.tar.gz", fileType: "gz"},
		{name: "Makefile", display: "Makefile", fileType: "no ft"},
		{name: "v1.d/README", display: "README", fileType: "no ft"},
		{name: "trailing.", display: "trailing.", fileType: "no ft"},
	}
	for _, tt := range tests {
		f := File{Name: tt.name}
		if got := f.DisplayName(); got != tt.display {
			t.Fatalf("DisplayName(%q)=%q, want %q", tt.name, got, tt.display)
		}
		if got := f.FileType(); got != tt.fileType {
			t.Fatalf("FileType(%q)=%q, want %q", tt.name, got, tt.fileType)
		}
	}
}
