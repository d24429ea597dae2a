package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/berth-dev/quiz/internal/quiz"
	"github.com/berth-dev/quiz/internal/tui"
)

// FromQuiz turns state machine commands into Bubble Tea commands.
// Stop commands need no action: tea.Tick cannot be cancelled, and a tick
// that fires after its scope ended carries a stale generation that Step
// ignores.
func FromQuiz(cmds []quiz.Command) tea.Cmd {
	var out []tea.Cmd
	for _, c := range cmds {
		switch c := c.(type) {
		case quiz.StartTick:
			out = append(out, CountdownCmd(c.Gen, c.After))
		case quiz.StartAdvance:
			out = append(out, AdvanceCmd(c.Gen, c.After))
		}
	}

	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return tea.Batch(out...)
	}
}

// CountdownCmd delivers a CountdownTickMsg for gen after d.
func CountdownCmd(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tui.CountdownTickMsg{Gen: gen}
	})
}

// AdvanceCmd delivers an AdvanceMsg for gen after d.
func AdvanceCmd(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tui.AdvanceMsg{Gen: gen}
	})
}
