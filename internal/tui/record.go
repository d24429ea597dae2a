package tui

import (
	"io"
	"strings"

	"github.com/berth-dev/quiz/internal/log"
	"github.com/berth-dev/quiz/internal/quiz"
)

// RecordCommands writes the reporting commands among cmds to the event log.
func RecordCommands(l *log.Logger, cmds []quiz.Command) {
	for _, c := range cmds {
		switch c := c.(type) {
		case quiz.Answered:
			l.Answer(c.Question, c.Option, c.Correct, c.TimedOut)
		case quiz.Finished:
			l.Completed(c.Score, c.Total)
		case quiz.Restarted:
			l.Restarted()
		}
	}
}

// BellCount returns how many terminal bells a cue rings.
func BellCount(cmds []quiz.Command) int {
	for _, c := range cmds {
		if cue, ok := c.(quiz.PlayCue); ok {
			if cue.Correct {
				return 1
			}
			return 2
		}
	}
	return 0
}

// RingBell writes the bells for the cue among cmds to w. A nil w is silent.
func RingBell(w io.Writer, cmds []quiz.Command) {
	if w == nil {
		return
	}
	if n := BellCount(cmds); n > 0 {
		_, _ = io.WriteString(w, strings.Repeat("\a", n))
	}
}
