package editor

import (
	"log"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tilde/internal/grapheme"
)

const (
	msgUnsavedQuit = "File has unsaved changes. Press Ctrl-Q again to quit."
	msgSaveAborted = "Save aborted."
	msgNoMatches   = "0 matches"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		switch m.mode {
		case modeFind:
			m = m.updateFind(msg)
		case modeSaveAs:
			m = m.updateSaveAs(msg)
		default:
			m, cmd = m.updateEdit(msg)
		}
		m.emitChange()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	s := m.sess

	m.message = ""
	if !key.Matches(msg, km.Quit) {
		m.quitArmed = false
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste {
		m.insertRunes(msg.Runes)
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Quit):
		if s.Updated() && !m.quitArmed {
			m.quitArmed = true
			m.message = msgUnsavedQuit
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, km.Save):
		if m.file.IsNew() {
			m.mode = modeSaveAs
			m.input = ""
			return m, nil
		}
		m.report(m.file.Save(s))
	case key.Matches(msg, km.Find):
		m.mode = modeFind
		m.search = s.BeginSearch()
		log.Printf("find: begin at line %d", s.Frame().YOffset+s.row)

	case key.Matches(msg, km.Left):
		s.Left()
	case key.Matches(msg, km.Right):
		s.Right()
	case key.Matches(msg, km.Up):
		s.Up()
	case key.Matches(msg, km.Down):
		s.Down()
	case key.Matches(msg, km.Home):
		s.Home()
	case key.Matches(msg, km.End):
		s.End()
	case key.Matches(msg, km.PageUp):
		s.PageUp()
	case key.Matches(msg, km.PageDown):
		s.PageDown()

	case key.Matches(msg, km.Backspace):
		s.Backspace()
	case key.Matches(msg, km.Enter):
		s.Enter()
	case msg.Type == tea.KeyTab:
		s.InsertChar('\t')
	default:
		m.insertRunes(typed(msg))
	}
	return m, nil
}

func (m Model) updateSaveAs(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Cancel):
		m.mode = modeEdit
		m.message = msgSaveAborted
	case key.Matches(msg, km.Enter):
		if m.input == "" {
			return m
		}
		m.mode = modeEdit
		m.report(m.file.SaveAs(m.sess, m.input))
	case key.Matches(msg, km.Backspace):
		m.input = grapheme.DropLast(m.input)
	default:
		for _, r := range typed(msg) {
			if unicode.IsPrint(r) {
				m.input += string(r)
			}
		}
	}
	return m
}

func (m Model) updateFind(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap
	q := m.search
	switch {
	case key.Matches(msg, km.Cancel):
		q.Cancel()
		m.endSearch("")
	case key.Matches(msg, km.Enter):
		q.Accept()
		if len(q.Matches()) == 0 {
			m.endSearch(msgNoMatches)
			break
		}
		m.endSearch("")
	case key.Matches(msg, km.Left), key.Matches(msg, km.Up):
		q.Prev()
	case key.Matches(msg, km.Right), key.Matches(msg, km.Down):
		q.Next()
	case key.Matches(msg, km.Backspace):
		q.Backspace()
	default:
		for _, r := range typed(msg) {
			if isDocumentRune(r) {
				q.AppendQuery(byte(r))
			}
		}
	}
	return m
}

func (m *Model) endSearch(message string) {
	log.Printf("find: end query=%q matches=%d", m.search.Query(), len(m.search.Matches()))
	m.mode = modeEdit
	m.search = nil
	m.message = message
}

func (m *Model) insertRunes(runes []rune) {
	// Normalize newlines from external sources.
	text := strings.ReplaceAll(string(runes), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r':
			m.sess.Enter()
		case r == '\t' || isDocumentRune(r):
			m.sess.InsertChar(byte(r))
		}
	}
}

func (m *Model) report(message string, err error) {
	if err != nil {
		log.Printf("%v", err)
		m.message = "Error: " + err.Error()
		return
	}
	m.message = message
}

func (m *Model) emitChange() {
	v := m.sess.Buffer().Version()
	if v == m.lastVersion {
		return
	}
	m.lastVersion = v
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.sess))
	}
}

// typed returns the text a key inserts, if any.
func typed(msg tea.KeyMsg) []rune {
	switch {
	case msg.Type == tea.KeySpace:
		return []rune{' '}
	case msg.Type == tea.KeyRunes && !msg.Alt:
		return msg.Runes
	}
	return nil
}

// isDocumentRune reports whether r is a printable ASCII character.
func isDocumentRune(r rune) bool { return r >= ' ' && r < 0x7f }
