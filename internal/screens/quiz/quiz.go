// Package quiz is the screen that plays one quiz attempt.
package quiz

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/engine"
	qz "github.com/abhisek/smartlearn/internal/quiz"
	"github.com/abhisek/smartlearn/internal/router"
	"github.com/abhisek/smartlearn/internal/runner"
	"github.com/abhisek/smartlearn/internal/screen"
	"github.com/abhisek/smartlearn/internal/screens/report"
	"github.com/abhisek/smartlearn/internal/ui/components"
	"github.com/abhisek/smartlearn/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

// QuizScreen builds a quiz, opens an attempt and lets the player answer
// it. All state lives in the runner; the screen only mirrors the latest
// snapshot.
type QuizScreen struct {
	engine    *engine.Engine
	sessionID string
	params    qz.Params

	quiz    *qz.Quiz
	snap    *runner.Snapshot
	current int
	picker  components.MultiChoice

	confirmSubmit bool
	submitting    bool
	spinner       int
	errMsg        string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen that generates a quiz for p when initialized.
func New(e *engine.Engine, sessionID string, p qz.Params) *QuizScreen {
	return &QuizScreen{engine: e, sessionID: sessionID, params: p}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.prepare(), spinnerTick())
}

func (s *QuizScreen) Title() string {
	if s.quiz != nil {
		return s.quiz.Title
	}
	return "Quiz"
}

// prepare generates the quiz, opens an attempt and takes the first
// snapshot, which starts the clock.
func (s *QuizScreen) prepare() tea.Cmd {
	e, sessionID, p := s.engine, s.sessionID, s.params
	return func() tea.Msg {
		ctx := context.Background()
		q, err := e.Generate(ctx, sessionID, p)
		if err != nil {
			return quizReadyMsg{Err: err}
		}
		id, err := e.Start(ctx, sessionID, q.ID)
		if err != nil {
			return quizReadyMsg{Err: err}
		}
		snap, err := e.Attempt(ctx, id)
		return quizReadyMsg{Quiz: q, Snapshot: snap, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg { return spinnerTickMsg(t) })
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return timerTickMsg(t) })
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleReady(msg)

	case spinnerTickMsg:
		if s.quiz != nil || s.errMsg != "" {
			return s, nil
		}
		s.spinner++
		return s, spinnerTick()

	case timerTickMsg:
		if s.snap == nil || s.snap.State == runner.Graded {
			return s, nil
		}
		return s, tea.Batch(s.refresh(), timerTick())

	case snapshotMsg:
		return s.handleSnapshot(msg)

	case gradedMsg:
		return s.handleGraded(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = describe(msg.Err)
		return s, nil
	}
	s.quiz = msg.Quiz
	s.snap = msg.Snapshot
	s.show(0)
	if s.quiz.TimeLimit > 0 {
		return s, timerTick()
	}
	return s, nil
}

func (s *QuizScreen) handleSnapshot(msg snapshotMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// The deadline may have passed between ticks; the next view
		// carries the report.
		if errors.Is(msg.Err, runner.ErrInvalidState) {
			return s, s.refresh()
		}
		s.errMsg = describe(msg.Err)
		return s, nil
	}
	s.snap = msg.Snapshot
	if s.snap.State == runner.Graded && s.snap.Report != nil {
		return s, s.toReport(s.snap.Report)
	}
	s.show(s.current)
	return s, nil
}

func (s *QuizScreen) handleGraded(msg gradedMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	if msg.Err != nil {
		if errors.Is(msg.Err, runner.ErrInvalidState) {
			return s, s.refresh()
		}
		s.errMsg = describe(msg.Err)
		return s, nil
	}
	return s, s.toReport(msg.Report)
}

func (s *QuizScreen) toReport(r *runner.Report) tea.Cmd {
	next := report.New(r)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.quiz == nil || s.submitting {
		return s, nil
	}

	if s.confirmSubmit {
		switch key {
		case "y", "Y", "enter":
			s.confirmSubmit = false
			s.submitting = true
			return s, s.submit()
		case "n", "N", "esc":
			s.confirmSubmit = false
		}
		return s, nil
	}

	switch key {
	case "enter", "space":
		return s, s.answer(s.picker.Highlighted())
	case "left", "h", "shift+tab":
		s.show(s.current - 1)
	case "right", "l", "tab":
		s.show(s.current + 1)
	case "backspace", "delete", "x":
		return s, s.clear()
	case "s", "esc":
		s.confirmSubmit = true
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(key[0] - '1')
		if i < len(s.picker.Options) {
			s.picker.Selected = i
			return s, s.answer(s.picker.Options[i])
		}
	default:
		var cmd tea.Cmd
		s.picker, cmd = s.picker.Update(msg)
		return s, cmd
	}
	return s, nil
}

// show moves to question i, clamped to the quiz.
func (s *QuizScreen) show(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(s.quiz.Questions) {
		i = len(s.quiz.Questions) - 1
	}
	s.current = i
	q := s.quiz.Questions[i]
	var chosen *string
	if s.snap != nil && i < len(s.snap.Answers) {
		chosen = s.snap.Answers[i]
	}
	s.picker = components.NewMultiChoice(q.Prompt, q.Options, chosen)
}

func (s *QuizScreen) attemptID() string {
	return s.snap.ID
}

// answer records a choice and moves to the next question.
func (s *QuizScreen) answer(option string) tea.Cmd {
	e, id, index := s.engine, s.attemptID(), s.current
	if index < len(s.quiz.Questions)-1 {
		s.current++
	}
	return func() tea.Msg {
		snap, err := e.SetAnswer(context.Background(), id, index, option)
		return snapshotMsg{Snapshot: snap, Err: err}
	}
}

func (s *QuizScreen) clear() tea.Cmd {
	e, id, index := s.engine, s.attemptID(), s.current
	return func() tea.Msg {
		snap, err := e.ClearAnswer(context.Background(), id, index)
		return snapshotMsg{Snapshot: snap, Err: err}
	}
}

func (s *QuizScreen) refresh() tea.Cmd {
	e, id := s.engine, s.attemptID()
	return func() tea.Msg {
		snap, err := e.Attempt(context.Background(), id)
		return snapshotMsg{Snapshot: snap, Err: err}
	}
}

func (s *QuizScreen) submit() tea.Cmd {
	e, id := s.engine, s.attemptID()
	return func() tea.Msg {
		r, err := e.Submit(context.Background(), id)
		return gradedMsg{Report: r, Err: err}
	}
}

// answered counts the questions with an answer in the latest snapshot.
func (s *QuizScreen) answered() int {
	n := 0
	if s.snap == nil {
		return 0
	}
	for _, a := range s.snap.Answers {
		if a != nil {
			n++
		}
	}
	return n
}

func describe(err error) string {
	var ve *qz.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.Is(err, qz.ErrGenerationUnavailable):
		return "No questions are available for this topic right now."
	}
	return err.Error()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.quiz == nil:
		return nil
	case s.confirmSubmit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "x", Description: "Clear"},
		{Key: "s", Description: "Submit"},
	}
}
