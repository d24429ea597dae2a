package quiz

import (
	"time"

	"github.com/berth-dev/quiz/internal/bank"
)

// Event is an input to Step.
type Event interface {
	event()
}

// Loaded delivers the question bank and starts the session.
type Loaded struct {
	Questions []bank.Question
}

// Select records the user's choice of option.
type Select struct {
	Option int
}

// Tick is one countdown interval elapsing.
type Tick struct {
	Gen uint64
}

// AdvanceDue fires once the feedback delay after an answer has passed.
type AdvanceDue struct {
	Gen uint64
}

// Restart resets score and position, keeping the questions.
type Restart struct{}

// Teardown releases every timer, e.g. when the program exits.
type Teardown struct{}

func (Loaded) event()     {}
func (Select) event()     {}
func (Tick) event()       {}
func (AdvanceDue) event() {}
func (Restart) event()    {}
func (Teardown) event()   {}

// Command is a side effect requested by Step.
type Command interface {
	command()
}

// StartTick arms the countdown to deliver Tick{Gen} after the interval.
type StartTick struct {
	Gen   uint64
	After time.Duration
}

// StopTick releases the countdown timer.
type StopTick struct{}

// StartAdvance arms the pending advance to deliver AdvanceDue{Gen}.
type StartAdvance struct {
	Gen   uint64
	After time.Duration
}

// StopAdvance releases the pending advance timer.
type StopAdvance struct{}

// PlayCue asks the presentation to signal the answer's outcome.
type PlayCue struct {
	Correct bool
}

// Answered reports a recorded answer.
type Answered struct {
	Question int
	Option   int
	Correct  bool
	TimedOut bool
}

// Finished reports that the last question has been passed.
type Finished struct {
	Score int
	Total int
}

// Restarted reports a reset to the first question.
type Restarted struct{}

func (StartTick) command()    {}
func (StopTick) command()     {}
func (StartAdvance) command() {}
func (StopAdvance) command()  {}
func (PlayCue) command()      {}
func (Answered) command()     {}
func (Finished) command()     {}
func (Restarted) command()    {}
