package tui

import "github.com/berth-dev/quiz/internal/bank"

// BankLoadedMsg delivers the questions to play, or the load error.
type BankLoadedMsg struct {
	Name      string
	Title     string
	Questions []bank.Question
	Err       error
}

// CountdownTickMsg is one countdown interval for the timer generation Gen.
type CountdownTickMsg struct {
	Gen uint64
}

// AdvanceMsg fires when the feedback delay for generation Gen has passed.
type AdvanceMsg struct {
	Gen uint64
}

// CtrlCResetMsg clears the Ctrl+C confirmation after its timeout.
type CtrlCResetMsg struct{}
