package report

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/router"
	"github.com/abhisek/smartlearn/internal/runner"
	"github.com/abhisek/smartlearn/internal/screen"
	"github.com/abhisek/smartlearn/internal/ui/components"
	"github.com/abhisek/smartlearn/internal/ui/layout"
	"github.com/abhisek/smartlearn/internal/ui/theme"
)

// ReportScreen shows a graded attempt: the score, feedback and a
// question-by-question review.
type ReportScreen struct {
	report   *runner.Report
	selected int
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a new ReportScreen.
func New(r *runner.Report) *ReportScreen {
	return &ReportScreen{report: r}
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "Quiz Results"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Review"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.report == nil {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.report.Breakdown)-1 {
			s.selected++
		}
	case "enter", "esc", "q":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	r := s.report
	if r == nil {
		return ""
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	var b strings.Builder

	title := "Quiz complete!"
	if r.AutoSubmitted {
		title = "Time's up!"
	}
	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s · %s · %s · %d:%02d", r.Subject, r.Topic, r.Difficulty.Title(), r.TimeTakenSeconds/60, r.TimeTakenSeconds%60)))
	b.WriteString("\n\n")

	cw := components.ContentWidth(width)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewScoreBar(fmt.Sprintf("%d/%d correct", r.Correct, r.Total), r.ScorePercentage, cw).View()))
	b.WriteString("\n\n")

	for _, f := range r.Feedback {
		b.WriteString(center.Foreground(theme.Text).Render(f))
		b.WriteString("\n")
	}

	if len(r.Breakdown) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		b.WriteString(s.renderMarks(width))
		b.WriteString("\n\n")
		b.WriteString(s.renderReview(width, cw))
	}

	return b.String()
}

// renderMarks lists ✓ and ✗ per question with the reviewed one highlighted.
func (s *ReportScreen) renderMarks(width int) string {
	marks := make([]string, len(s.report.Breakdown))
	for i, q := range s.report.Breakdown {
		mark, style := "✗", theme.Incorrect
		if q.IsCorrect {
			mark, style = "✓", theme.Correct
		}
		label := fmt.Sprintf("%d%s", q.Number, mark)
		if i == s.selected {
			label = "[" + label + "]"
		}
		marks[i] = style.Render(label)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(marks, "  "))
}

func (s *ReportScreen) renderReview(width, cw int) string {
	q := s.report.Breakdown[s.selected]
	mc := components.NewMultiChoice(fmt.Sprintf("%d. %s", q.Number, q.Prompt), q.Options, q.StudentAnswer)
	mc.Correct = q.CorrectAnswer

	body := mc.View()
	if q.StudentAnswer == nil {
		body += lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Not answered") + "\n"
	}
	if q.Explanation != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Render(q.Explanation)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Width(cw).Render(body))
}
