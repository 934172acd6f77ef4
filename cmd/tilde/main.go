package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/iw2rmb/tilde"
	"github.com/iw2rmb/tilde/editor"
)

type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func main() {
	logPath := flag.String("log", "", "write a debug log to `file`")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: tilde [flags] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(tilde.Banner())
		return
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "tilde")
		if err != nil {
			fail(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fail(fmt.Errorf("stdout is not a terminal"))
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		log.Printf("terminal size: %v", err)
		width, height = 0, 0
	}

	ed, err := editor.Open(editor.Config{
		FileName: flag.Arg(0),
		Width:    width,
		Height:   height,
		Style:    editor.DefaultStyle(),
	})
	if err != nil {
		fail(err)
	}

	p := tea.NewProgram(model{editor: ed}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	_, _ = os.Stderr.WriteString("tilde: " + err.Error() + "\n")
	os.Exit(1)
}
