// Package ask is the tutor chat screen: type a question, get an answer and
// a practice question.
package ask

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/engine"
	"github.com/abhisek/smartlearn/internal/router"
	"github.com/abhisek/smartlearn/internal/screen"
	"github.com/abhisek/smartlearn/internal/ui/components"
	"github.com/abhisek/smartlearn/internal/ui/layout"
	"github.com/abhisek/smartlearn/internal/ui/theme"
)

const maxQuestionLen = 500

type answerMsg struct {
	Result *engine.AskResult
	Err    error
}

// AskScreen sends free-text questions to the tutor. Tab cycles the
// subject the question is filed under.
type AskScreen struct {
	engine    *engine.Engine
	sessionID string

	subjects []string
	subject  int
	input    components.TextInput

	asked    string
	result   *engine.AskResult
	practice components.MultiChoice
	revealed bool
	waiting  bool
	errMsg   string
}

var _ screen.Screen = (*AskScreen)(nil)
var _ screen.KeyHintProvider = (*AskScreen)(nil)

// New creates an AskScreen for sessionID.
func New(e *engine.Engine, sessionID string) *AskScreen {
	s := &AskScreen{
		engine:    e,
		sessionID: sessionID,
		subjects:  []string{"General"},
		input:     components.NewTextInput("Ask anything...", maxQuestionLen),
	}
	for _, sub := range e.Catalog().Subjects {
		s.subjects = append(s.subjects, sub.Name)
	}
	return s
}

func (s *AskScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *AskScreen) Title() string {
	return "Ask the Tutor"
}

func (s *AskScreen) KeyHints() []layout.KeyHint {
	if s.result != nil && !s.revealed && len(s.result.QuizOptions) > 0 {
		return []layout.KeyHint{
			{Key: "Ctrl+↑↓", Description: "Practice"},
			{Key: "Ctrl+R", Description: "Reveal"},
			{Key: "Enter", Description: "Ask"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "Tab", Description: "Subject"},
		{Key: "Esc", Description: "Back"},
	}
}

// Subject is the subject new questions are filed under.
func (s *AskScreen) Subject() string {
	return s.subjects[s.subject]
}

func (s *AskScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerMsg:
		s.waiting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.result = msg.Result
		s.revealed = false
		s.practice = components.NewMultiChoice(msg.Result.QuizQuestion, msg.Result.QuizOptions, nil)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.subject = (s.subject + 1) % len(s.subjects)
			return s, nil
		case "shift+tab":
			s.subject = (s.subject + len(s.subjects) - 1) % len(s.subjects)
			return s, nil
		case "ctrl+up":
			s.practice, _ = s.practice.Update(tea.KeyPressMsg{Code: tea.KeyUp})
			return s, nil
		case "ctrl+down":
			s.practice, _ = s.practice.Update(tea.KeyPressMsg{Code: tea.KeyDown})
			return s, nil
		case "ctrl+r":
			s.reveal()
			return s, nil
		case "enter":
			return s, s.ask()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// reveal marks the highlighted practice option as the player's choice and
// shows the correct one.
func (s *AskScreen) reveal() {
	if s.result == nil || len(s.result.QuizOptions) == 0 || s.revealed {
		return
	}
	choice := s.practice.Highlighted()
	s.practice.Chosen = &choice
	s.practice.Correct = s.result.QuizAnswer
	s.revealed = true
}

func (s *AskScreen) ask() tea.Cmd {
	q := s.input.Value()
	if q == "" || s.waiting {
		return nil
	}
	s.asked = q
	s.waiting = true
	s.input.Reset()

	e, id, subject := s.engine, s.sessionID, s.Subject()
	return func() tea.Msg {
		r, err := e.Ask(context.Background(), id, subject, q)
		return answerMsg{Result: r, Err: err}
	}
}

func (s *AskScreen) View(width, height int) string {
	cw := min(width-4, 90)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	var b strings.Builder

	b.WriteString(dim.Render("Subject: "))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(s.Subject()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("› ") + s.input.View())
	b.WriteString("\n\n")

	switch {
	case s.waiting:
		b.WriteString(dim.Render(fmt.Sprintf("Thinking about %q...", s.asked)))
	case s.errMsg != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("Error: " + s.errMsg))
	case s.result != nil:
		b.WriteString(s.renderAnswer(cw))
	default:
		b.WriteString(dim.Italic(true).Render("Questions are saved to your progress and shape your recommendations."))
	}

	return lipgloss.NewStyle().Padding(1, 2).Width(width).Render(b.String())
}

func (s *AskScreen) renderAnswer(cw int) string {
	r := s.result
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("You asked: " + s.asked))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render(r.Answer))
	b.WriteString("\n")

	if len(r.QuizOptions) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Try this"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(cw).Render(s.practice.View()))
	}
	if r.LearningTip != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Width(cw).Render("💡 " + r.LearningTip))
	}
	if r.Fallback {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("(offline answer)"))
	}
	return b.String()
}
