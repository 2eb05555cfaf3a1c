package home

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/analytics"
	"github.com/abhisek/smartlearn/internal/ui/theme"
)

var titleRows = []string{
	"╔═╗╔╦╗╔═╗╦═╗╔╦╗  ╦  ╔═╗╔═╗╦═╗╔╗╔",
	"╚═╗║║║╠═╣╠╦╝ ║   ║  ║╣ ╠═╣╠╦╝║║║",
	"╚═╝╩ ╩╩ ╩╩╚═ ╩   ╩═╝╚═╝╩ ╩╩╚═╝╚╝",
}

const titleCompact = "S · M · A · R · T · L · E · A · R · N"

const buttonWidth = 22

// centered renders s in a block cw wide with every line centered.
func centered(s string, cw int) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s)
}

func colored(c color.Color, bold bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Bold(bold)
}

func renderTitle(cw int, compact bool) string {
	title := strings.Join(titleRows, "\n")
	if compact {
		title = titleCompact
	}
	return centered(colored(theme.ArcadeYellow, true).Render(title), cw)
}

// renderTotals is the boxed line of quiz count, average and questions
// asked for the session.
func renderTotals(s analytics.ProgressSummary, cw int, compact bool) string {
	quizzes := fmt.Sprintf("◆ %d QUIZZES", s.TotalQuizzes)
	average := "★ NO SCORES"
	asked := fmt.Sprintf("? %d ASKED", s.TotalQuestions)
	avgColor := theme.TextDim
	if s.TotalQuizzes > 0 {
		average = fmt.Sprintf("★ %.0f%% AVG", s.AverageQuizScore)
		avgColor = theme.ScoreColor(s.AverageQuizScore)
	}
	sep := "  "
	if compact {
		quizzes = fmt.Sprintf("◆%d", s.TotalQuizzes)
		average = fmt.Sprintf("★%.0f%%", s.AverageQuizScore)
		asked = fmt.Sprintf("?%d", s.TotalQuestions)
		sep = " "
	}

	line := colored(theme.ArcadeYellow, true).Render(quizzes) + sep +
		colored(avgColor, s.TotalQuizzes > 0).Render(average) + sep +
		colored(theme.ArcadeCyan, true).Render(asked)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Padding(0, 1).
		Align(lipgloss.Center).
		Render(line)
}

func renderNextStep(r analytics.Recommendation, cw int) string {
	label := colored(theme.PriorityColor(string(r.Priority)), true).Render("NEXT ▸ ")
	return centered(label+colored(theme.Text, false).Render(r.Title), cw)
}

// renderMenu draws the menu as bordered buttons, or as a plain list when
// compact.
func renderMenu(labels []string, selected, cw int, compact bool) string {
	highlight := lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.ArcadeYellow).Bold(true)
	plain := lipgloss.NewStyle().Foreground(theme.Text)
	if !compact {
		highlight = asButton(highlight).BorderForeground(theme.ArcadeYellow)
		plain = asButton(plain).BorderForeground(theme.Border)
	}

	rows := make([]string, len(labels))
	for i, label := range labels {
		switch {
		case i == selected && compact:
			rows[i] = highlight.Render(" ▸ " + label + " ")
		case i == selected:
			rows[i] = highlight.Render("▸ " + label)
		case compact:
			rows[i] = plain.Render("   " + label)
		default:
			rows[i] = plain.Render(label)
		}
	}
	return centered(strings.Join(rows, "\n"), cw)
}

func asButton(s lipgloss.Style) lipgloss.Style {
	return s.Width(buttonWidth).Align(lipgloss.Center).Padding(0, 1).Border(lipgloss.RoundedBorder())
}

func renderNotice(text string, cw int, isErr bool) string {
	c := theme.Accent
	if isErr {
		c = theme.Error
	}
	return centered(colored(c, false).Render(text), cw)
}
