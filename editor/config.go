package editor

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Config configures the editor Model.
type Config struct {
	// FileName is the file to edit. Empty starts an unnamed buffer.
	FileName string

	// Text is the initial document for New. Open reads FileName instead.
	Text string

	// Initial window size, replaced by the first tea.WindowSizeMsg.
	Width, Height int

	KeyMap KeyMap
	Style  Style

	// OnChange is called after every key that changed the document.
	OnChange func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if len(c.KeyMap.Quit.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
