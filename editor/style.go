package editor

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Style controls the editor's rendering.
type Style struct {
	Text   lipgloss.Style
	Cursor lipgloss.Style
	Match  lipgloss.Style
	Filler lipgloss.Style

	Status  lipgloss.Style
	Message lipgloss.Style
	Prompt  lipgloss.Style

	Help help.Styles
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Text:    lipgloss.NewStyle(),
		Cursor:  lipgloss.NewStyle().Reverse(true),
		Match:   lipgloss.NewStyle().Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0")),
		Filler:  dim,
		Status:  lipgloss.NewStyle().Reverse(true),
		Message: lipgloss.NewStyle(),
		Prompt:  lipgloss.NewStyle().Bold(true),
		Help:    help.New().Styles,
	}
}
