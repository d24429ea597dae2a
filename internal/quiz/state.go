// Package quiz implements the timed quiz state machine.
//
// Step is a pure transition function: it takes the current State and an
// Event and returns the next State together with the Commands a driver must
// carry out (arming or releasing timers, ringing the bell, logging). Drivers
// funnel timer and input events into Step from a single goroutine.
package quiz

import (
	"time"

	"github.com/berth-dev/quiz/internal/bank"
)

// TimedOut is the selection recorded when the countdown expires.
const TimedOut = -1

// Default timings.
const (
	DefaultTimeLimit    = 15
	DefaultAdvanceDelay = time.Second
	DefaultTickInterval = time.Second
)

// Phase is the coarse state of a quiz session.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseActive
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseActive:
		return "active"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Feedback is the message shown after an answer is recorded.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "Correct! 🎉"
	case FeedbackIncorrect:
		return "Oops! Incorrect. 😔"
	default:
		return ""
	}
}

// Settings controls the timing of a session.
type Settings struct {
	TimeLimit    int           // seconds per question
	AdvanceDelay time.Duration // feedback display time before advancing
	TickInterval time.Duration // countdown granularity
}

// DefaultSettings returns the standard 15 second, 1 second delay timings.
func DefaultSettings() Settings {
	return Settings{
		TimeLimit:    DefaultTimeLimit,
		AdvanceDelay: DefaultAdvanceDelay,
		TickInterval: DefaultTickInterval,
	}
}

func (s Settings) withDefaults() Settings {
	if s.TimeLimit <= 0 {
		s.TimeLimit = DefaultTimeLimit
	}
	if s.AdvanceDelay <= 0 {
		s.AdvanceDelay = DefaultAdvanceDelay
	}
	if s.TickInterval <= 0 {
		s.TickInterval = DefaultTickInterval
	}
	return s
}

// State is a snapshot of a quiz session. Step returns a new value on every
// transition; Questions is shared and must be treated as read-only.
type State struct {
	Phase     Phase
	Questions []bank.Question
	Index     int
	Score     int
	Selected  int  // meaningful only when Answered
	Answered  bool // an answer (or timeout) is on display
	TimeLeft  int
	Feedback  Feedback
	Settings  Settings

	gen uint64
}

// New returns a session in the Loading phase.
func New(settings Settings) State {
	settings = settings.withDefaults()
	return State{
		Phase:    PhaseLoading,
		TimeLeft: settings.TimeLimit,
		Settings: settings,
	}
}

// Gen identifies the timer scope currently armed. Tick and AdvanceDue
// events carrying a different generation are stale and ignored.
func (s State) Gen() uint64 {
	return s.gen
}

// Total returns the number of questions in the session.
func (s State) Total() int {
	return len(s.Questions)
}

// Current returns the question on screen, if any.
func (s State) Current() (bank.Question, bool) {
	if s.Phase != PhaseActive || s.Index < 0 || s.Index >= len(s.Questions) {
		return bank.Question{}, false
	}
	return s.Questions[s.Index], true
}

// Progress returns the share of questions already passed, in percent.
func (s State) Progress() float64 {
	if s.Phase == PhaseComplete {
		return 100
	}
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.Index) / float64(len(s.Questions)) * 100
}

// AcceptingInput reports whether a Select event would be honoured.
func (s State) AcceptingInput() bool {
	return s.Phase == PhaseActive && !s.Answered
}

// TimedOut reports whether the displayed answer came from the countdown.
func (s State) TimedOut() bool {
	return s.Answered && s.Selected == TimedOut
}
