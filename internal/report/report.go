// Package report summarizes past quiz sessions from the event log.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/berth-dev/quiz/internal/log"
)

// Attempt is one pass through a bank: from start or restart to completion.
type Attempt struct {
	Bank      string
	Started   time.Time
	Finished  time.Time
	Score     int
	Total     int
	Answered  int
	TimedOut  int
	Completed bool
}

// Duration returns how long the attempt took, or 0 if it never finished.
func (a Attempt) Duration() time.Duration {
	if !a.Completed || a.Finished.Before(a.Started) {
		return 0
	}
	return a.Finished.Sub(a.Started)
}

// Report holds the attempts found in a log, oldest first.
type Report struct {
	Attempts []Attempt
}

// Completed returns the number of finished attempts.
func (r *Report) Completed() int {
	n := 0
	for _, a := range r.Attempts {
		if a.Completed {
			n++
		}
	}
	return n
}

// Best returns the finished attempt with the highest score ratio.
func (r *Report) Best() (Attempt, bool) {
	var (
		best  Attempt
		found bool
	)
	for _, a := range r.Attempts {
		if !a.Completed || a.Total == 0 {
			continue
		}
		if !found || a.Score*best.Total > best.Score*a.Total {
			best, found = a, true
		}
	}
	return best, found
}

// Build groups events into attempts. Events from different runs are kept
// apart; a restart closes the open attempt and starts a new one on the
// same bank.
func Build(events []log.LogEvent) *Report {
	r := &Report{}
	open := map[string]int{} // run id -> index into Attempts
	banks := map[string]attemptBank{}

	for _, e := range events {
		switch e.Event {
		case log.EventQuizStarted:
			banks[e.Run] = attemptBank{name: e.Bank, total: e.Total}
			open[e.Run] = len(r.Attempts)
			r.Attempts = append(r.Attempts, Attempt{Bank: e.Bank, Total: e.Total, Started: e.Time})

		case log.EventQuizRestarted:
			b, ok := banks[e.Run]
			if !ok {
				continue
			}
			open[e.Run] = len(r.Attempts)
			r.Attempts = append(r.Attempts, Attempt{Bank: b.name, Total: b.total, Started: e.Time})

		case log.EventAnswerRecorded:
			i, ok := open[e.Run]
			if !ok {
				continue
			}
			r.Attempts[i].Answered++
			if e.TimedOut {
				r.Attempts[i].TimedOut++
			}

		case log.EventQuizCompleted:
			i, ok := open[e.Run]
			if !ok {
				continue
			}
			a := &r.Attempts[i]
			a.Score, a.Total = e.Score, e.Total
			a.Finished = e.Time
			a.Completed = true
			delete(open, e.Run)
		}
	}

	return r
}

type attemptBank struct {
	name  string
	total int
}

// FormatReport produces a terminal-friendly summary of the last limit
// attempts. A non-positive limit shows all of them.
func FormatReport(r *Report, limit int) string {
	var b strings.Builder

	b.WriteString("========================================\n")
	b.WriteString("  Quiz History\n")
	b.WriteString("========================================\n")
	b.WriteString("\n")

	if len(r.Attempts) == 0 {
		b.WriteString("No quizzes played yet.\n")
		return b.String()
	}

	attempts := r.Attempts
	if limit > 0 && len(attempts) > limit {
		attempts = attempts[len(attempts)-limit:]
	}

	for _, a := range attempts {
		when := a.Started.Local().Format("2006-01-02 15:04")
		if !a.Completed {
			fmt.Fprintf(&b, "  %s  %-20s  abandoned after %d answers\n", when, a.Bank, a.Answered)
			continue
		}
		fmt.Fprintf(&b, "  %s  %-20s  %d/%d", when, a.Bank, a.Score, a.Total)
		if a.TimedOut > 0 {
			fmt.Fprintf(&b, "  (%d timed out)", a.TimedOut)
		}
		fmt.Fprintf(&b, "  %s\n", formatDuration(a.Duration()))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Attempts:    %d (%d completed)\n", len(r.Attempts), r.Completed())
	if best, ok := r.Best(); ok {
		fmt.Fprintf(&b, "Best score:  %d/%d on %s\n", best.Score, best.Total, best.Bank)
	}
	b.WriteString("========================================\n")

	return b.String()
}

// formatDuration produces a human-readable duration string such as "5m 32s"
// or "1h 12m 5s". Sub-second durations are shown as "< 1s".
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "< 1s"
	}

	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
