package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/berth-dev/quiz/internal/bank"
	"github.com/berth-dev/quiz/internal/log"
	"github.com/berth-dev/quiz/internal/quiz"
)

// FallbackRunner plays the quiz over plain line-oriented I/O when stdout is
// not a terminal. Each input line is an option number, "r" to restart or
// "q" to quit. Lines are queued and fed one per question.
type FallbackRunner struct {
	In       io.Reader
	Out      io.Writer
	Bell     io.Writer // nil: silent
	Logger   *log.Logger
	Title    string
	Settings quiz.Settings
	Clock    quiz.Clock // nil: quiz.SystemClock
}

type fallbackUpdate struct {
	state quiz.State
	cmds  []quiz.Command
}

// Run plays questions until the quiz is complete and input is exhausted,
// the user quits, or ctx is cancelled. It returns the final state.
func (f *FallbackRunner) Run(ctx context.Context, questions []bank.Question) (quiz.State, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := make(chan fallbackUpdate, 64)
	runner := quiz.NewRunner(quiz.New(f.Settings), f.Clock, func(s quiz.State, cmds []quiz.Command) {
		RecordCommands(f.Logger, cmds)
		RingBell(f.Bell, cmds)
		select {
		case updates <- fallbackUpdate{state: s, cmds: cmds}:
		case <-ctx.Done():
		}
	})

	final := make(chan quiz.State, 1)
	go func() { final <- runner.Run(ctx) }()

	stop := func() quiz.State {
		cancel()
		return <-final
	}

	if f.Title != "" {
		fmt.Fprintf(f.Out, "%s\n%s\n", f.Title, strings.Repeat("-", len(f.Title)))
	}
	if err := runner.Send(ctx, quiz.Loaded{Questions: questions}); err != nil {
		return stop(), err
	}

	lines := readLines(ctx, f.In)

	var (
		state  quiz.State
		queue  []string
		fed    bool
		fedGen uint64
		eof    bool
	)

	for {
		select {
		case u := <-updates:
			state = u.state
			f.render(u.state, u.cmds)

		case line, ok := <-lines:
			if !ok {
				eof = true
				lines = nil
				break
			}
			if line = strings.TrimSpace(line); line != "" {
				queue = append(queue, line)
			}

		case <-ctx.Done():
			return stop(), ctx.Err()
		}

	drain:
		for len(queue) > 0 {
			cmd := strings.ToLower(queue[0])
			if cmd == "q" || cmd == "quit" {
				return stop(), nil
			}

			// Hold input until the previous line has taken effect and the
			// current question, if any, is open.
			if state.Phase == quiz.PhaseLoading || (fed && fedGen == state.Gen()) {
				break drain
			}
			if state.Phase == quiz.PhaseActive && !state.AcceptingInput() {
				break drain
			}

			queue = queue[1:]

			if cmd == "r" || cmd == "restart" {
				fmt.Fprintln(f.Out, "Restarting quiz...")
				if err := runner.Send(ctx, quiz.Restart{}); err != nil {
					return stop(), err
				}
				fed, fedGen = true, state.Gen()
				break drain
			}

			if state.Phase == quiz.PhaseComplete {
				fmt.Fprintln(f.Out, "The quiz is over. Type r to restart or q to quit.")
				continue
			}

			q, _ := state.Current()
			n, err := strconv.Atoi(cmd)
			if err != nil || n < 1 || n > len(q.Options) {
				fmt.Fprintf(f.Out, "Please enter a number from 1 to %d.\n", len(q.Options))
				continue
			}

			if err := runner.Send(ctx, quiz.Select{Option: n - 1}); err != nil {
				return stop(), err
			}
			fed, fedGen = true, state.Gen()
			break drain
		}

		pending := fed && fedGen == state.Gen()
		if eof && len(queue) == 0 && !pending && state.Phase == quiz.PhaseComplete {
			return stop(), nil
		}
	}
}

func (f *FallbackRunner) render(s quiz.State, cmds []quiz.Command) {
	for _, c := range cmds {
		switch c := c.(type) {
		case quiz.StartTick:
			if s.TimeLeft == s.Settings.TimeLimit {
				f.renderQuestion(s)
			} else if s.TimeLeft <= 5 {
				fmt.Fprintf(f.Out, "  %d sec left\n", s.TimeLeft)
			}

		case quiz.Answered:
			if c.TimedOut {
				fmt.Fprint(f.Out, "Time's up! ")
			}
			fmt.Fprintln(f.Out, s.Feedback.String())
			if !c.Correct {
				if q, ok := s.Current(); ok {
					if i := q.Correct(); i >= 0 {
						fmt.Fprintf(f.Out, "The answer was %d. %s\n", i+1, q.Options[i].Description)
					}
				}
			}

		case quiz.Finished:
			fmt.Fprintf(f.Out, "\n🎉 Quiz Completed!\nYour Score: %d/%d\n", c.Score, c.Total)
			fmt.Fprintln(f.Out, "Type r to restart or q to quit.")
		}
	}
}

func (f *FallbackRunner) renderQuestion(s quiz.State) {
	q, ok := s.Current()
	if !ok {
		return
	}

	fmt.Fprintf(f.Out, "\nQuestion %d / %d (%d sec)\n%s\n", s.Index+1, s.Total(), s.TimeLeft, q.Description)
	for i, o := range q.Options {
		fmt.Fprintf(f.Out, "  %d. %s\n", i+1, o.Description)
	}
	fmt.Fprintf(f.Out, "Answer [1-%d]:\n", len(q.Options))
}

// readLines streams r line by line until EOF or ctx is done.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case out <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
