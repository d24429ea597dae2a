package tui

import "github.com/charmbracelet/lipgloss"

// Color constants.
const (
	primaryColor   = "#7C3AED" // Purple
	secondaryColor = "#10B981" // Green
	warningColor   = "#F59E0B" // Amber
	errorColor     = "#EF4444" // Red
	dimColor       = "#6B7280" // Gray
)

// Style variables for consistent TUI rendering.
var (
	// BoxStyle provides a rounded border box with primary color.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(primaryColor)).
			Padding(1, 2)

	// TitleStyle renders titles in primary color with bold.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// QuestionStyle renders the question prompt.
	QuestionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	// SelectedStyle highlights the option under the cursor.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// SuccessStyle renders success messages in green.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(secondaryColor))

	// ErrorStyle renders error messages in red.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor))

	// WarningStyle renders warning messages in amber.
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(warningColor))

	// ScoreStyle renders the final score.
	ScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(secondaryColor)).
			Bold(true)
)

// Option markers (pre-rendered strings).
var (
	// MarkCorrect flags the correct option once an answer is shown.
	MarkCorrect = SuccessStyle.Render("✓")

	// MarkWrong flags a wrong pick.
	MarkWrong = ErrorStyle.Render("✗")

	// MarkCursor points at the highlighted option.
	MarkCursor = SelectedStyle.Render("▸")
)
