package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/iw2rmb/tilde/buffer"
)

const (
	noName     = "No name"
	noFileType = "no ft"

	msgNoChanges = "There are no changes to the file."
)

// ErrNoName is returned when saving a buffer that has no file name yet.
var ErrNoName = errors.New("no file name")

// File binds a session to a path on disk.
type File struct {
	Name string

	// onDisk is false until the file has been read or written.
	onDisk bool
}

// LoadFile reads name into a new buffer. A missing file yields an empty
// buffer bound to that name.
func LoadFile(name string) (*buffer.Buffer, File, error) {
	f := File{Name: name}
	if name == "" {
		return buffer.New(), f, nil
	}
	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return buffer.New(), f, nil
	}
	if err != nil {
		return nil, f, fmt.Errorf("load %s: %w", name, err)
	}
	f.onDisk = true
	return buffer.Load(data), f, nil
}

// IsNew reports whether the buffer has never been bound to a file name.
func (f File) IsNew() bool { return f.Name == "" }

// DisplayName is the name shown in the status line.
func (f File) DisplayName() string {
	if f.Name == "" {
		return noName
	}
	return filepath.Base(f.Name)
}

// FileType is the extension after the last dot of the file name.
func (f File) FileType() string {
	base := filepath.Base(f.Name)
	i := strings.LastIndexByte(base, '.')
	if f.Name == "" || i < 0 || i == len(base)-1 {
		return noFileType
	}
	return base[i+1:]
}

// Save writes the session's document and returns the message to show. An
// unmodified file that already exists on disk is not rewritten.
func (f *File) Save(s *Session) (string, error) {
	if f.Name == "" {
		return "", ErrNoName
	}
	if f.onDisk && !s.Updated() {
		return msgNoChanges, nil
	}
	if err := os.WriteFile(f.Name, s.Buffer().Serialize(), 0o644); err != nil {
		return "", fmt.Errorf("save %s: %w", f.Name, err)
	}
	f.onDisk = true
	s.MarkSaved()
	return fmt.Sprintf("Save %s successfully.", f.Name), nil
}

// SaveAs binds the file to name and saves. On failure the previous binding
// is kept.
func (f *File) SaveAs(s *Session, name string) (string, error) {
	if name == "" {
		return "", ErrNoName
	}
	prev := *f
	*f = File{Name: name}
	msg, err := f.Save(s)
	if err != nil {
		*f = prev
		return "", err
	}
	return msg, nil
}
