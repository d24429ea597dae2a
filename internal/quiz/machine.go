package quiz

// Step applies ev to s and returns the next state with the commands the
// driver must run. Events that do not apply to the current state return s
// unchanged and no commands.
func Step(s State, ev Event) (State, []Command) {
	switch ev := ev.(type) {
	case Loaded:
		if s.Phase != PhaseLoading {
			return s, nil
		}
		s.Questions = ev.Questions
		return start(s, nil)

	case Select:
		if !s.AcceptingInput() {
			return s, nil
		}
		q, ok := s.Current()
		if !ok || ev.Option < 0 || ev.Option >= len(q.Options) {
			return s, nil
		}
		return answer(s, ev.Option, q.Options[ev.Option].IsCorrect)

	case Tick:
		if !s.AcceptingInput() || ev.Gen != s.gen {
			return s, nil
		}
		if s.TimeLeft > 0 {
			s.TimeLeft--
		}
		if s.TimeLeft == 0 {
			return answer(s, TimedOut, false)
		}
		return s, []Command{StartTick{Gen: s.gen, After: s.Settings.TickInterval}}

	case AdvanceDue:
		if s.Phase != PhaseActive || !s.Answered || ev.Gen != s.gen {
			return s, nil
		}
		return advance(s)

	case Restart:
		if s.Phase == PhaseLoading {
			return s, nil
		}
		s.gen++
		return start(s, []Command{StopTick{}, StopAdvance{}, Restarted{}})

	case Teardown:
		s.gen++
		return s, []Command{StopTick{}, StopAdvance{}}
	}

	return s, nil
}

// start puts s on the first question, or straight into Complete for an
// empty bank. cmds are emitted before the countdown is armed.
func start(s State, cmds []Command) (State, []Command) {
	s.Index = 0
	s.Score = 0
	s.Selected = 0
	s.Answered = false
	s.Feedback = FeedbackNone
	s.TimeLeft = s.Settings.TimeLimit
	s.gen++

	if len(s.Questions) == 0 {
		s.Phase = PhaseComplete
		return s, append(cmds, Finished{Score: 0, Total: 0})
	}

	s.Phase = PhaseActive
	return s, append(cmds, StartTick{Gen: s.gen, After: s.Settings.TickInterval})
}

func answer(s State, option int, correct bool) (State, []Command) {
	s.Answered = true
	s.Selected = option
	if correct {
		s.Score++
		s.Feedback = FeedbackCorrect
	} else {
		s.Feedback = FeedbackIncorrect
	}
	s.gen++

	return s, []Command{
		StopTick{},
		PlayCue{Correct: correct},
		Answered{
			Question: s.Index,
			Option:   option,
			Correct:  correct,
			TimedOut: option == TimedOut,
		},
		StartAdvance{Gen: s.gen, After: s.Settings.AdvanceDelay},
	}
}

func advance(s State) (State, []Command) {
	s.gen++

	if s.Index+1 >= len(s.Questions) {
		s.Phase = PhaseComplete
		s.Answered = false
		s.Feedback = FeedbackNone
		return s, []Command{Finished{Score: s.Score, Total: len(s.Questions)}}
	}

	s.Index++
	s.Selected = 0
	s.Answered = false
	s.Feedback = FeedbackNone
	s.TimeLeft = s.Settings.TimeLimit
	return s, []Command{StartTick{Gen: s.gen, After: s.Settings.TickInterval}}
}
