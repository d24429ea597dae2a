// Package app provides the main TUI application that drives a quiz session.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/berth-dev/quiz/internal/config"
	"github.com/berth-dev/quiz/internal/log"
	"github.com/berth-dev/quiz/internal/quiz"
	"github.com/berth-dev/quiz/internal/tui"
	"github.com/berth-dev/quiz/internal/tui/commands"
)

const ctrlCTimeout = time.Second

// App is the Bubble Tea model for a quiz session.
type App struct {
	model *tui.Model
	bell  io.Writer
}

// New creates an App for cfg. logger may be nil.
func New(cfg *config.Config, logger *log.Logger) *App {
	a := &App{model: tui.NewModel(cfg, logger)}
	if cfg.UI.Bell {
		a.bell = os.Stderr
	}
	return a
}

// SetBell redirects the answer cue; nil silences it.
func (a *App) SetBell(w io.Writer) {
	a.bell = w
}

// State returns the current quiz state.
func (a *App) State() quiz.State {
	return a.model.Quiz
}

// Init loads the question bank.
func (a *App) Init() tea.Cmd {
	return commands.LoadBankCmd(a.model.Cfg.Bank)
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keys := a.model.Keys

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		a.model.Help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC):
			if a.model.CtrlCPending || a.model.Quiz.Phase != quiz.PhaseActive {
				return a, a.quit()
			}
			// First press during a question: ask for confirmation.
			a.model.CtrlCPending = true
			return a, tea.Tick(ctrlCTimeout, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})

		case key.Matches(msg, keys.Quit):
			return a, a.quit()

		case key.Matches(msg, keys.Restart):
			a.model.Cursor = 0
			return a, a.step(quiz.Restart{})
		}

		if a.model.Quiz.Phase == quiz.PhaseActive {
			return a, a.updateActive(msg)
		}

	case tui.CtrlCResetMsg:
		a.model.CtrlCPending = false
		return a, nil

	case tui.BankLoadedMsg:
		return a, a.handleLoaded(msg)

	case tui.CountdownTickMsg:
		return a, a.step(quiz.Tick{Gen: msg.Gen})

	case tui.AdvanceMsg:
		cmd := a.step(quiz.AdvanceDue{Gen: msg.Gen})
		if a.model.Quiz.AcceptingInput() {
			a.model.Cursor = 0
		}
		return a, cmd
	}

	return a, nil
}

func (a *App) updateActive(msg tea.KeyMsg) tea.Cmd {
	keys := a.model.Keys
	q, ok := a.model.Quiz.Current()
	if !ok || !a.model.Quiz.AcceptingInput() {
		return nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		if a.model.Cursor > 0 {
			a.model.Cursor--
		}
	case key.Matches(msg, keys.Down):
		if a.model.Cursor < len(q.Options)-1 {
			a.model.Cursor++
		}
	case key.Matches(msg, keys.Enter):
		return a.step(quiz.Select{Option: a.model.Cursor})
	case key.Matches(msg, keys.Pick):
		idx := tui.PickIndex(msg.String())
		if idx < 0 || idx >= len(q.Options) {
			return nil
		}
		a.model.Cursor = idx
		return a.step(quiz.Select{Option: idx})
	}
	return nil
}

func (a *App) handleLoaded(msg tui.BankLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		a.model.Err = msg.Err
		return nil
	}

	a.model.BankName = msg.Name
	if a.model.Title == "" {
		a.model.Title = msg.Title
	}
	a.model.Logger.Started(msg.Name, len(msg.Questions))
	return a.step(quiz.Loaded{Questions: msg.Questions})
}

// step runs one transition and returns the resulting Bubble Tea commands.
func (a *App) step(ev quiz.Event) tea.Cmd {
	next, cmds := quiz.Step(a.model.Quiz, ev)
	a.model.Quiz = next
	tui.RecordCommands(a.model.Logger, cmds)
	tui.RingBell(a.bell, cmds)
	return commands.FromQuiz(cmds)
}

func (a *App) quit() tea.Cmd {
	a.step(quiz.Teardown{})
	return tea.Quit
}

// View renders the current application state.
func (a *App) View() string {
	var content string

	switch {
	case a.model.Err != nil:
		content = a.renderError()
	case a.model.Quiz.Phase == quiz.PhaseLoading:
		content = "Loading quiz..."
	case a.model.Quiz.Phase == quiz.PhaseComplete:
		content = a.renderComplete()
	default:
		content = a.renderQuestion()
	}

	width := 76
	if a.model.Width > 0 {
		width = min(a.model.Width-4, width)
	}
	boxed := tui.BoxStyle.Width(width).Render(content)
	if a.model.CtrlCPending {
		boxed += "\n" + tui.WarningStyle.Render("Press Ctrl+C again to exit")
	}
	return boxed
}

func (a *App) renderError() string {
	var b strings.Builder
	b.WriteString(tui.ErrorStyle.Render("Could not load the question bank"))
	b.WriteString("\n\n")
	b.WriteString(a.model.Err.Error())
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("q: quit"))
	return b.String()
}

func (a *App) renderQuestion() string {
	s := a.model.Quiz
	q, ok := s.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	if a.model.Title != "" {
		b.WriteString(tui.TitleStyle.Render(a.model.Title))
		b.WriteString("\n\n")
	}

	b.WriteString(a.model.Progress.ViewAs(s.Progress() / 100))
	b.WriteString("\n\n")

	timer := fmt.Sprintf("Time Left: %d sec", s.TimeLeft)
	if s.TimeLeft <= 5 {
		timer = tui.WarningStyle.Render(timer)
	}
	b.WriteString(timer)
	b.WriteString("\n\n")

	b.WriteString(tui.QuestionStyle.Render(q.Description))
	b.WriteString("\n")

	if s.Answered {
		fb := s.Feedback.String()
		if s.Feedback == quiz.FeedbackCorrect {
			fb = tui.SuccessStyle.Render(fb)
		} else {
			fb = tui.ErrorStyle.Render(fb)
		}
		if s.TimedOut() {
			fb = tui.WarningStyle.Render("Time's up! ") + fb
		}
		b.WriteString(fb)
		b.WriteString("\n\n")
	}

	for i, o := range q.Options {
		b.WriteString(a.renderOption(i, o.Description, o.IsCorrect))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("Question %d / %d", s.Index+1, s.Total())))
	b.WriteString("\n")
	b.WriteString(a.model.Help.View(a.model.Keys))

	return b.String()
}

func (a *App) renderOption(i int, text string, correct bool) string {
	s := a.model.Quiz
	label := fmt.Sprintf("%d. %s", i+1, text)

	if s.Answered {
		switch {
		case correct:
			return tui.MarkCorrect + " " + tui.SuccessStyle.Render(label)
		case i == s.Selected:
			return tui.MarkWrong + " " + tui.ErrorStyle.Render(label)
		default:
			return "  " + tui.DimStyle.Render(label)
		}
	}

	if i == a.model.Cursor {
		return tui.MarkCursor + " " + tui.SelectedStyle.Render(label)
	}
	return "  " + label
}

func (a *App) renderComplete() string {
	s := a.model.Quiz

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("🎉 Quiz Completed!"))
	b.WriteString("\n\n")
	b.WriteString("Your Score: ")
	b.WriteString(tui.ScoreStyle.Render(fmt.Sprintf("%d/%d", s.Score, s.Total())))
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("r: Restart Quiz       q: Exit"))

	return lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
}
