package setup

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/engine/enginetest"
	"github.com/abhisek/smartlearn/internal/quiz"
	"github.com/abhisek/smartlearn/internal/router"
	quizscreen "github.com/abhisek/smartlearn/internal/screens/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newSetup() *SetupScreen {
	return New(enginetest.Offline(enginetest.NewClock()), "s1")
}

// typeKey sends a key to the count input. Its commands drive the cursor
// blink and are not run.
func typeKey(s *SetupScreen, r rune) {
	s.Update(keyPress(r))
}

// press sends key and delivers any message its command produces.
func press(s *SetupScreen, key tea.KeyPressMsg) tea.Msg {
	_, cmd := s.Update(key)
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if c, ok := msg.(choiceMsg); ok {
		s.Update(c)
		return nil
	}
	return msg
}

func TestWalkThroughSteps(t *testing.T) {
	s := newSetup()

	press(s, specialKey(tea.KeyEnter)) // Mathematics
	if s.step != stepTopic {
		t.Fatalf("expected topic step, got %d", s.step)
	}
	press(s, specialKey(tea.KeyEnter)) // Algebra
	press(s, specialKey(tea.KeyDown))
	press(s, specialKey(tea.KeyEnter)) // intermediate
	press(s, specialKey(tea.KeyEnter)) // concept_check
	if s.step != stepCount {
		t.Fatalf("expected count step, got %d", s.step)
	}

	typeKey(s, '3')
	msg := press(s, specialKey(tea.KeyEnter))
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replace.Screen.(*quizscreen.QuizScreen); !ok {
		t.Errorf("expected quiz screen, got %T", replace.Screen)
	}

	want := quiz.Params{Subject: "Mathematics", Topic: "Algebra", Difficulty: quiz.Intermediate, Type: quiz.ConceptCheck, Count: 3}
	if s.Params() != want {
		t.Errorf("params = %+v, want %+v", s.Params(), want)
	}
}

func TestDefaultCount(t *testing.T) {
	s := newSetup()
	for range 4 {
		press(s, specialKey(tea.KeyEnter))
	}
	if msg := press(s, specialKey(tea.KeyEnter)); msg == nil {
		t.Fatal("expected the quiz to start")
	}
	if s.Params().Count != quiz.DefaultQuestions {
		t.Errorf("count = %d, want %d", s.Params().Count, quiz.DefaultQuestions)
	}
}

func TestCountOutOfRange(t *testing.T) {
	s := newSetup()
	for range 4 {
		press(s, specialKey(tea.KeyEnter))
	}
	typeKey(s, '2')
	typeKey(s, '5')
	if msg := press(s, specialKey(tea.KeyEnter)); msg != nil {
		t.Fatalf("expected no transition, got %T", msg)
	}
	if !strings.Contains(s.View(80, 24), "Enter a number from 1 to 20") {
		t.Error("expected range error in view")
	}
}

func TestNonDigitsIgnored(t *testing.T) {
	s := newSetup()
	for range 4 {
		press(s, specialKey(tea.KeyEnter))
	}
	typeKey(s, 'x')
	typeKey(s, '7')
	if got := s.count.Value(); got != "7" {
		t.Errorf("count input = %q, want %q", got, "7")
	}
}

func TestEscGoesBack(t *testing.T) {
	s := newSetup()
	press(s, specialKey(tea.KeyDown))
	press(s, specialKey(tea.KeyEnter)) // Physics
	if s.Params().Subject != "Physics" {
		t.Fatalf("subject = %q", s.Params().Subject)
	}
	if !strings.Contains(s.View(80, 24), "Mechanics") {
		t.Error("expected Physics topics")
	}

	press(s, specialKey(tea.KeyEscape))
	if s.step != stepSubject {
		t.Fatalf("expected subject step, got %d", s.step)
	}
	if msg := press(s, specialKey(tea.KeyEscape)); msg != (router.PopScreenMsg{}) {
		t.Errorf("expected PopScreenMsg, got %T", msg)
	}
}

func TestBreadcrumb(t *testing.T) {
	s := newSetup()
	if !strings.Contains(s.View(80, 24), "Step 1 of 5") {
		t.Error("expected step counter on first step")
	}
	press(s, specialKey(tea.KeyEnter))
	press(s, specialKey(tea.KeyEnter))
	if got := s.breadcrumb(); got != "Mathematics › Algebra" {
		t.Errorf("breadcrumb = %q", got)
	}
}

func TestLabelFor(t *testing.T) {
	if got := labelFor("real_world_application"); got != "Real World Application" {
		t.Errorf("labelFor = %q", got)
	}
}
