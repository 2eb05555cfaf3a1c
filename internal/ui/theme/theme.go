// Package theme holds the player's colors and shared text styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette, tuned for a dark terminal background.
var (
	Primary   = lipgloss.Color("#8B5CF6") // violet
	Secondary = lipgloss.Color("#14B8A6") // teal
	Accent    = lipgloss.Color("#F97316") // orange
	Success   = lipgloss.Color("#22C55E")
	Warning   = lipgloss.Color("#EAB308")
	Error     = lipgloss.Color("#F43F5E")

	Text    = lipgloss.Color("#F8FAFC")
	TextDim = lipgloss.Color("#94A3B8")
	BgDark  = lipgloss.Color("#0F172A")
	BgCard  = lipgloss.Color("#1E293B")
	Border  = lipgloss.Color("#334155")

	// Highlight colors for titles and the selected menu button.
	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

var (
	// Selected marks the item under the cursor.
	Selected = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	// Answered marks an option the learner has chosen.
	Answered = lipgloss.NewStyle().Foreground(Secondary).Bold(true)

	Correct   = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)

	ActiveTab = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Text).
		Bold(true).
		Padding(0, 2)
)

// Score bands for coloring. They match the "solid" and "progress"
// feedback bands of graded quizzes.
const (
	goodScore = 80.0
	fairScore = 50.0
)

// ScoreColor is green for good scores, amber for fair ones and red
// below that.
func ScoreColor(score float64) color.Color {
	switch {
	case score >= goodScore:
		return Success
	case score >= fairScore:
		return Warning
	}
	return Error
}

// PriorityColor colors a recommendation priority.
func PriorityColor(priority string) color.Color {
	switch priority {
	case "high":
		return Error
	case "medium":
		return Warning
	}
	return Secondary
}
