package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding
	PageUp, PageDown      key.Binding

	Backspace key.Binding
	Enter     key.Binding

	Save   key.Binding
	Quit   key.Binding
	Find   key.Binding
	Cancel key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Home: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("Ctrl-S", "save")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("Ctrl-Q", "quit")),
		Find:   key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("Ctrl-F", "find")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Save, km.Quit, km.Find}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Save, km.Quit, km.Find, km.Cancel},
		{km.Up, km.Down, km.Left, km.Right},
		{km.Home, km.End, km.PageUp, km.PageDown},
		{km.Enter, km.Backspace},
	}
}
