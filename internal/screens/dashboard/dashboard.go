package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/engine"
	"github.com/abhisek/smartlearn/internal/router"
	"github.com/abhisek/smartlearn/internal/screen"
	"github.com/abhisek/smartlearn/internal/session"
	"github.com/abhisek/smartlearn/internal/ui/components"
	"github.com/abhisek/smartlearn/internal/ui/layout"
	"github.com/abhisek/smartlearn/internal/ui/theme"
)

type tab int

const (
	tabOverview tab = iota
	tabRecommendations
	tabActivity
	tabCount
)

var tabNames = [tabCount]string{"Overview", "Next Steps", "Activity"}

type dashboardLoadedMsg struct {
	Dashboard *engine.Dashboard
	Err       error
}

// DashboardScreen shows session progress, per-subject scores,
// recommendations and recent activity.
type DashboardScreen struct {
	engine    *engine.Engine
	sessionID string

	data     *engine.Dashboard
	tab      tab
	selected int
	expanded map[int]bool
	errMsg   string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen.
func New(e *engine.Engine, sessionID string) *DashboardScreen {
	return &DashboardScreen{
		engine:    e,
		sessionID: sessionID,
		expanded:  make(map[int]bool),
	}
}

func (s *DashboardScreen) Init() tea.Cmd {
	e, id := s.engine, s.sessionID
	return func() tea.Msg {
		d, err := e.Dashboard(context.Background(), id)
		return dashboardLoadedMsg{Dashboard: d, Err: err}
	}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Switch view"}}
	switch s.tab {
	case tabRecommendations:
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Navigate"}, layout.KeyHint{Key: "Enter", Description: "Details"})
	case tabActivity:
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Scroll"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.data = msg.Dashboard
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "right", "l":
			s.switchTab((s.tab + 1) % tabCount)
		case "shift+tab", "left", "h":
			s.switchTab((s.tab + tabCount - 1) % tabCount)
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < s.listLen()-1 {
				s.selected++
			}
		case "enter":
			if s.tab == tabRecommendations {
				s.expanded[s.selected] = !s.expanded[s.selected]
			}
		}
	}
	return s, nil
}

func (s *DashboardScreen) switchTab(t tab) {
	s.tab = t
	s.selected = 0
}

func (s *DashboardScreen) listLen() int {
	if s.data == nil {
		return 0
	}
	switch s.tab {
	case tabRecommendations:
		return len(s.data.Recommendations)
	case tabActivity:
		return len(s.data.RecentActivity)
	}
	return 0
}

func (s *DashboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if s.data == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading dashboard...")
	}

	cw := components.ContentWidth(width)
	var body string
	switch s.tab {
	case tabOverview:
		body = s.renderOverview(cw)
	case tabRecommendations:
		body = s.renderRecommendations(cw)
	case tabActivity:
		body = s.renderActivity(cw, height-4)
	}

	return s.renderTabs(width) + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Width(cw).Render(body))
}

func (s *DashboardScreen) renderTabs(width int) string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == s.tab {
			parts[i] = theme.ActiveTab.Render(name)
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 2).Render(name)
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, " "))
}

func (s *DashboardScreen) renderOverview(cw int) string {
	p := s.data.Progress
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	bold := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d   %s %d   %s %d min\n",
		dim.Render("Questions"), p.TotalQuestions,
		dim.Render("Quizzes"), p.TotalQuizzes,
		dim.Render("Session"), p.SessionDurationMinutes)
	if p.MostActiveSubject != "" {
		fmt.Fprintf(&b, "%s %s\n", dim.Render("Most active"), p.MostActiveSubject)
	}
	if best := p.QuizPerformance.BestPerformingSubject; best != "" {
		fmt.Fprintf(&b, "%s %s\n", dim.Render("Best subject"), best)
	}
	b.WriteString("\n")

	if p.TotalQuizzes > 0 {
		b.WriteString(components.NewScoreBar("Average", p.AverageQuizScore, cw).View())
		b.WriteString("\n\n")
	}

	if len(s.data.SubjectAnalytics) == 0 {
		b.WriteString(dim.Italic(true).Render("No activity yet. Ask a question or take a quiz!"))
		return b.String()
	}

	b.WriteString(bold.Render("Subjects"))
	b.WriteString("\n")
	names := make([]string, 0, len(s.data.SubjectAnalytics))
	for name := range s.data.SubjectAnalytics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		st := s.data.SubjectAnalytics[name]
		if st.QuizAttempts > 0 {
			b.WriteString(components.NewScoreBar(fmt.Sprintf("%-12s", name), st.AverageQuizScore, cw).View())
		} else {
			b.WriteString(fmt.Sprintf("%-12s  ", name) + dim.Render("no quizzes yet"))
		}
		b.WriteString("\n")
		b.WriteString(dim.Render(fmt.Sprintf("  %d asked · %d quizzes · %s",
			st.QuestionsAsked, st.QuizAttempts, strings.Join(st.TopicsCovered, ", "))))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *DashboardScreen) renderRecommendations(cw int) string {
	recs := s.data.Recommendations
	if len(recs) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Nothing to suggest yet.")
	}

	var b strings.Builder
	for i, r := range recs {
		marker := "  "
		titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			marker = "▸ "
			titleStyle = theme.Selected
		}
		badge := lipgloss.NewStyle().Foreground(theme.PriorityColor(string(r.Priority))).Render(fmt.Sprintf("[%s]", r.Priority))
		b.WriteString(marker + badge + " " + titleStyle.Render(r.Title))
		b.WriteString("\n")
		if s.expanded[i] {
			detail := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 4).PaddingLeft(4)
			b.WriteString(detail.Render(r.Description))
			b.WriteString("\n")
			b.WriteString(detail.Foreground(theme.Secondary).Render("→ " + r.Action))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *DashboardScreen) renderActivity(cw, rows int) string {
	log := s.data.RecentActivity
	if len(log) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("No activity yet.")
	}
	if rows < 1 {
		rows = 1
	}

	start := 0
	if s.selected >= rows {
		start = s.selected - rows + 1
	}
	end := min(start+rows, len(log))

	var b strings.Builder
	for i := start; i < end; i++ {
		line := activityLine(log[i])
		if i == s.selected {
			line = theme.Selected.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(lipgloss.NewStyle().MaxWidth(cw).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func activityLine(in session.Interaction) string {
	when := in.Timestamp.Format("Jan 02 15:04")
	if in.Kind == session.KindQuizAttempt {
		score := lipgloss.NewStyle().Foreground(theme.ScoreColor(in.Score)).Render(fmt.Sprintf("%.0f%%", in.Score))
		return fmt.Sprintf("%s  Quiz  %s · %s  %s", when, in.Subject, in.Topic, score)
	}
	return fmt.Sprintf("%s  Asked %s: %s", when, in.Subject, in.Question)
}
