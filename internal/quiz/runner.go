package quiz

import (
	"context"
	"errors"
)

// ErrRunnerStopped is returned by Send once Run has returned.
var ErrRunnerStopped = errors.New("runner stopped")

// Observer is called from the runner goroutine after every transition that
// produced commands. Timers requested by cmds are already armed when it runs.
type Observer func(s State, cmds []Command)

// Runner drives Step from a single goroutine. Input and timer callbacks are
// posted as events; commands arm and release real timers on the Clock.
type Runner struct {
	clock   Clock
	events  chan Event
	done    chan struct{}
	observe Observer

	state   State
	tick    Timer
	advance Timer
}

// NewRunner returns a Runner starting from s. observe may be nil.
func NewRunner(s State, clock Clock, observe Observer) *Runner {
	if clock == nil {
		clock = SystemClock
	}
	if observe == nil {
		observe = func(State, []Command) {}
	}
	return &Runner{
		clock:   clock,
		events:  make(chan Event, 16),
		done:    make(chan struct{}),
		observe: observe,
		state:   s,
	}
}

// Send queues ev for the runner loop.
func (r *Runner) Send(ctx context.Context, ev Event) error {
	select {
	case <-r.done:
		return ErrRunnerStopped
	default:
	}

	select {
	case r.events <- ev:
		return nil
	case <-r.done:
		return ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes events until ctx is cancelled, then tears the session
// down, releasing every timer, and returns the final state.
func (r *Runner) Run(ctx context.Context) State {
	defer close(r.done)

	for {
		select {
		case <-ctx.Done():
			r.apply(Teardown{})
			return r.state
		case ev := <-r.events:
			r.apply(ev)
		}
	}
}

func (r *Runner) apply(ev Event) {
	next, cmds := Step(r.state, ev)
	r.state = next

	for _, c := range cmds {
		r.exec(c)
	}

	if len(cmds) > 0 {
		r.observe(next, cmds)
	}
}

func (r *Runner) exec(c Command) {
	switch c := c.(type) {
	case StartTick:
		stop(&r.tick)
		r.tick = r.clock.AfterFunc(c.After, func() { r.post(Tick{Gen: c.Gen}) })
	case StopTick:
		stop(&r.tick)
	case StartAdvance:
		stop(&r.advance)
		r.advance = r.clock.AfterFunc(c.After, func() { r.post(AdvanceDue{Gen: c.Gen}) })
	case StopAdvance:
		stop(&r.advance)
	}
}

// post delivers a timer event unless the loop has exited.
func (r *Runner) post(ev Event) {
	select {
	case r.events <- ev:
	case <-r.done:
	}
}

func stop(t *Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}
