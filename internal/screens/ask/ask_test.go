package ask

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/engine"
	"github.com/abhisek/smartlearn/internal/engine/enginetest"
	"github.com/abhisek/smartlearn/internal/router"
)

func typeText(s *AskScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func newTestAsk() (*AskScreen, *engine.Engine) {
	e := enginetest.Offline(enginetest.NewClock())
	return New(e, "s1"), e
}

func TestAsk_SubjectCycles(t *testing.T) {
	s, _ := newTestAsk()
	if s.Subject() != "General" {
		t.Fatalf("Subject = %q, want General", s.Subject())
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.Subject() != "Mathematics" {
		t.Errorf("Subject = %q, want Mathematics", s.Subject())
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.Subject() != "General" {
		t.Errorf("Subject = %q, want General", s.Subject())
	}
}

func TestAsk_EmptyQuestionIgnored(t *testing.T) {
	s, _ := newTestAsk()
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("empty question should not be sent")
	}
}

func TestAsk_AnswerRecorded(t *testing.T) {
	s, e := newTestAsk()
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	typeText(s, "How do I solve an equation?")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected ask command")
	}
	if !s.waiting {
		t.Error("expected waiting state while the tutor answers")
	}
	if s.input.Value() != "" {
		t.Error("expected input cleared after asking")
	}

	s.Update(cmd())
	if s.result == nil {
		t.Fatalf("no answer: %s", s.errMsg)
	}
	if !s.result.Fallback {
		t.Error("offline engine should answer from templates")
	}
	if !strings.Contains(s.View(100, 40), "You asked: How do I solve an equation?") {
		t.Error("expected question echoed in view")
	}

	p, err := e.Progress(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if p.TotalQuestions != 1 {
		t.Errorf("TotalQuestions = %d, want 1", p.TotalQuestions)
	}
}

func TestAsk_RevealPractice(t *testing.T) {
	s, _ := newTestAsk()
	typeText(s, "What is photosynthesis?")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(cmd())
	if s.result == nil || len(s.result.QuizOptions) == 0 {
		t.Skip("no practice question in offline answer")
	}

	s.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	if !s.revealed {
		t.Fatal("expected practice answer revealed")
	}
	if s.practice.Correct != s.result.QuizAnswer {
		t.Errorf("Correct = %q, want %q", s.practice.Correct, s.result.QuizAnswer)
	}
}

func TestAsk_EscPops(t *testing.T) {
	s, _ := newTestAsk()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
