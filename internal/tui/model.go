package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"

	"github.com/berth-dev/quiz/internal/config"
	"github.com/berth-dev/quiz/internal/log"
	"github.com/berth-dev/quiz/internal/quiz"
)

// Model holds the presentation state around a quiz session.
type Model struct {
	// Session
	Quiz     quiz.State
	Err      error
	BankName string
	Title    string

	// Configuration
	Cfg    *config.Config
	Logger *log.Logger

	// Option under the cursor
	Cursor int

	// Bubbles components
	Progress progress.Model
	Help     help.Model
	Keys     KeyMap

	// Terminal dimensions
	Width  int
	Height int

	// Ctrl+C confirmation state
	CtrlCPending bool
}

// NewModel creates a Model in the Loading phase for cfg.
func NewModel(cfg *config.Config, logger *log.Logger) *Model {
	settings := quiz.Settings{
		TimeLimit:    cfg.Timer.LimitSeconds,
		AdvanceDelay: cfg.Timer.AdvanceDelay(),
	}

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return &Model{
		Quiz:     quiz.New(settings),
		Title:    cfg.UI.Title,
		Cfg:      cfg,
		Logger:   logger,
		Progress: bar,
		Help:     help.New(),
		Keys:     DefaultKeyMap,

		// Default dimensions (will be updated on WindowSizeMsg)
		Width:  80,
		Height: 24,
	}
}
