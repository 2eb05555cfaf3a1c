// Package setup collects the parameters for a new quiz one step at a time.
package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/engine"
	"github.com/abhisek/smartlearn/internal/quiz"
	"github.com/abhisek/smartlearn/internal/router"
	"github.com/abhisek/smartlearn/internal/screen"
	quizscreen "github.com/abhisek/smartlearn/internal/screens/quiz"
	"github.com/abhisek/smartlearn/internal/ui/components"
	"github.com/abhisek/smartlearn/internal/ui/layout"
	"github.com/abhisek/smartlearn/internal/ui/theme"
)

type step int

const (
	stepSubject step = iota
	stepTopic
	stepDifficulty
	stepType
	stepCount
)

var stepTitles = map[step]string{
	stepSubject:    "Pick a subject",
	stepTopic:      "Pick a topic",
	stepDifficulty: "How hard?",
	stepType:       "What kind of questions?",
	stepCount:      "How many questions?",
}

// choiceMsg is emitted when a menu option is picked.
type choiceMsg struct {
	step  step
	value string
}

// SetupScreen walks through subject, topic, difficulty, quiz type and
// question count, then hands the parameters to the quiz screen.
type SetupScreen struct {
	engine    *engine.Engine
	sessionID string
	subjects  map[string][]string
	order     []string

	step   step
	params quiz.Params
	menu   components.Menu
	count  components.TextInput
	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen listing the engine's catalog.
func New(e *engine.Engine, sessionID string) *SetupScreen {
	s := &SetupScreen{
		engine:    e,
		sessionID: sessionID,
		subjects:  make(map[string][]string),
		count:     components.NewNumberInput(fmt.Sprintf("%d", quiz.DefaultQuestions), 2),
	}
	for _, sub := range e.Catalog().Subjects {
		s.order = append(s.order, sub.Name)
		s.subjects[sub.Name] = sub.Topics
	}
	s.enter(stepSubject)
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

// enter switches to st and builds its menu.
func (s *SetupScreen) enter(st step) {
	s.step = st
	s.errMsg = ""

	var values, details []string
	switch st {
	case stepSubject:
		values = s.order
	case stepTopic:
		values = s.subjects[s.params.Subject]
	case stepDifficulty:
		for _, d := range quiz.Difficulties {
			values = append(values, string(d))
			details = append(details, fmt.Sprintf("%d min for %d questions", quiz.TimeLimit(d, quiz.DefaultQuestions)/60, quiz.DefaultQuestions))
		}
	case stepType:
		for _, t := range quiz.Types {
			values = append(values, string(t))
		}
	case stepCount:
		s.count.Reset()
		return
	}

	items := make([]components.MenuItem, len(values))
	for i, v := range values {
		v := v
		items[i] = components.MenuItem{
			Label: labelFor(v),
			Action: func() tea.Cmd {
				return func() tea.Msg { return choiceMsg{step: st, value: v} }
			},
		}
		if i < len(details) {
			items[i].Detail = details[i]
		}
	}
	s.menu = components.NewMenu(items)
}

// labelFor turns enum values like "real_world_application" into
// "Real World Application".
func labelFor(v string) string {
	words := strings.Fields(strings.ReplaceAll(v, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case choiceMsg:
		return s, s.choose(msg)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			if s.step == stepSubject {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			s.enter(s.step - 1)
			return s, nil
		case "enter":
			if s.step == stepCount {
				return s, s.start()
			}
		}
	}

	var cmd tea.Cmd
	if s.step == stepCount {
		s.count, cmd = s.count.Update(msg)
	} else {
		s.menu, cmd = s.menu.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) choose(c choiceMsg) tea.Cmd {
	if c.step != s.step {
		return nil
	}
	switch c.step {
	case stepSubject:
		s.params.Subject = c.value
	case stepTopic:
		s.params.Topic = c.value
	case stepDifficulty:
		s.params.Difficulty = quiz.Difficulty(c.value)
	case stepType:
		s.params.Type = quiz.Type(c.value)
	}
	s.enter(c.step + 1)
	return s.count.Init()
}

// start validates the question count and replaces this screen with the
// quiz, so Esc from the quiz's report returns to the menu.
func (s *SetupScreen) start() tea.Cmd {
	n := quiz.DefaultQuestions
	if s.count.Value() != "" {
		v, err := s.count.Int()
		if err != nil || v < quiz.MinQuestions || v > quiz.MaxQuestions {
			s.errMsg = fmt.Sprintf("Enter a number from %d to %d", quiz.MinQuestions, quiz.MaxQuestions)
			return nil
		}
		n = v
	}
	s.params.Count = n
	next := quizscreen.New(s.engine, s.sessionID, s.params)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// Params returns the choices made so far.
func (s *SetupScreen) Params() quiz.Params {
	return s.params
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(stepTitles[s.step]))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.breadcrumb()))
	b.WriteString("\n\n")

	if s.step == stepCount {
		b.WriteString("Questions: " + s.count.View())
	} else {
		b.WriteString(s.menu.View())
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	cw := components.ContentWidth(width)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Card(b.String(), cw, theme.Primary))
}

func (s *SetupScreen) breadcrumb() string {
	parts := []string{s.params.Subject, s.params.Topic, string(s.params.Difficulty), string(s.params.Type)}
	var out []string
	for _, p := range parts[:s.step] {
		out = append(out, labelFor(p))
	}
	if len(out) == 0 {
		return fmt.Sprintf("Step %d of %d", int(s.step)+1, int(stepCount)+1)
	}
	return strings.Join(out, " › ")
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.step == stepCount {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start quiz"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}
