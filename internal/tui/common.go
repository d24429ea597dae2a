// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Common key binding constants.
const (
	KeyCtrlC = "ctrl+c"
	KeyEnter = "enter"
	KeyUp    = "up"
	KeyDown  = "down"
)

// IsTTY returns true if stdin and stdout are connected to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

// Run starts the TUI program with the given model.
// altScreen selects full-screen mode.
func Run(m tea.Model, altScreen bool) error {
	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)
	_, err := p.Run()
	return err
}
