package editor

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tilde/buffer"
)

type mode int

const (
	modeEdit mode = iota
	modeSaveAs
	modeFind
)

// Model is a Bubble Tea component that edits one document.
type Model struct {
	cfg  Config
	sess *Session
	file File

	mode    mode
	search  *Search
	input   string
	message string

	// quitArmed is set by a first quit request on a modified document.
	quitArmed bool

	help help.Model
	body viewport.Model

	lastVersion uint64
}

// New returns a Model editing cfg.Text. cfg.FileName is only used as the
// save target.
func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	return newModel(cfg, buffer.Load([]byte(cfg.Text)), File{Name: cfg.FileName})
}

// Open returns a Model editing the file cfg.FileName.
func Open(cfg Config) (Model, error) {
	cfg = cfg.withDefaults()
	b, f, err := LoadFile(cfg.FileName)
	if err != nil {
		return Model{}, err
	}
	log.Printf("open %s: %d lines, on disk=%t", f.DisplayName(), b.LineCount(), f.onDisk)
	return newModel(cfg, b, f), nil
}

func newModel(cfg Config, b *buffer.Buffer, f File) Model {
	h := help.New()
	h.Styles = cfg.Style.Help
	h.ShortSeparator = " | "

	sess := NewSession(b, cfg.Width, cfg.Height)
	m := Model{
		cfg:  cfg,
		sess: sess,
		file: f,
		help: h,
		body: viewport.New(sess.Width(), sess.PageHeight()),
	}
	m.lastVersion = b.Version()
	return m
}

func (m Model) Session() *Session { return m.sess }

func (m Model) File() File { return m.file }

// Message returns the pending message-line text.
func (m Model) Message() string { return m.message }

// Searching reports whether the find prompt is active.
func (m Model) Searching() bool { return m.mode == modeFind }

// Prompting reports whether the save-as prompt is active.
func (m Model) Prompting() bool { return m.mode == modeSaveAs }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.sess.Resize(width, height)
	m.help.Width = m.sess.Width()
	return m
}
