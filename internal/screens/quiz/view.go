package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/ui/components"
	"github.com/abhisek/smartlearn/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// lowTimeSeconds turns the countdown red.
const lowTimeSeconds = 60

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.quiz == nil:
		return s.renderLoading(width)
	case s.confirmSubmit:
		return s.renderSubmitConfirm(width)
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderQuestion(width int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", s.quiz.Subject, s.quiz.Topic))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d answered  %s",
			s.current+1,
			len(s.quiz.Questions),
			lipgloss.NewStyle().Foreground(theme.Success).Render("●"),
			s.answered(),
			s.renderTimer(),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	} else {
		infoLine += "\n  " + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	cw := components.ContentWidth(width)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Width(cw).Render(s.picker.View())))
	b.WriteString("\n")
	b.WriteString(s.renderDots(width))

	if s.submitting {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Grading..."))
	}

	return b.String()
}

// renderDots shows one marker per question: answered, current or open.
func (s *QuizScreen) renderDots(width int) string {
	dots := make([]string, len(s.quiz.Questions))
	for i := range dots {
		var mark string
		switch {
		case i == s.current:
			mark = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("◆")
		case s.snap != nil && i < len(s.snap.Answers) && s.snap.Answers[i] != nil:
			mark = lipgloss.NewStyle().Foreground(theme.Secondary).Render("●")
		default:
			mark = lipgloss.NewStyle().Foreground(theme.Border).Render("○")
		}
		dots[i] = mark
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(dots, " "))
}

func (s *QuizScreen) renderTimer() string {
	if s.snap == nil || s.snap.TimeLimit == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("untimed")
	}
	rem := s.snap.Remaining
	c := theme.Accent
	if rem <= lowTimeSeconds {
		c = theme.Error
	}
	return lipgloss.NewStyle().Foreground(c).Render(fmt.Sprintf("⏱ %d:%02d", rem/60, rem%60))
}

func (s *QuizScreen) renderLoading(width int) string {
	frame := spinnerFrames[s.spinner%len(spinnerFrames)]
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n  %s Writing your %s quiz on %s...", frame, s.params.Subject, s.params.Topic))
}

func (s *QuizScreen) renderSubmitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Submit your answers?"))
	b.WriteString("\n")

	open := len(s.quiz.Questions) - s.answered()
	note := "Every question has an answer."
	if open > 0 {
		note = fmt.Sprintf("%d question(s) are still unanswered and will count as wrong.", open)
	}
	b.WriteString(center.Foreground(theme.TextDim).Render(note))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Render("[Y] Yes, grade it"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
