package dashboard

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/engine/enginetest"
	"github.com/abhisek/smartlearn/internal/router"
)

func loadedScreen(t *testing.T) *DashboardScreen {
	t.Helper()
	ctx := context.Background()
	e := enginetest.Offline(enginetest.NewClock())
	for _, score := range []float64{40, 50} {
		if _, err := e.RecordQuizAttempt(ctx, "s1", "Chemistry", "Organic Chemistry", score, 300, "beginner"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := e.RecordQuestion(ctx, "s1", "Physics", "What is a newton?"); err != nil {
		t.Fatal(err)
	}
	s := New(e, "s1")
	s.Update(s.Init()())
	if s.data == nil {
		t.Fatalf("dashboard not loaded: %s", s.errMsg)
	}
	return s
}

func TestDashboard_Loading(t *testing.T) {
	s := New(enginetest.Offline(enginetest.NewClock()), "s1")
	if !strings.Contains(s.View(100, 30), "Loading dashboard") {
		t.Error("expected loading message")
	}
}

func TestDashboard_Overview(t *testing.T) {
	s := loadedScreen(t)
	view := s.View(100, 30)
	for _, want := range []string{"Quizzes", "Chemistry", "Physics", "no quizzes yet"} {
		if !strings.Contains(view, want) {
			t.Errorf("overview missing %q", want)
		}
	}
}

func TestDashboard_Recommendations(t *testing.T) {
	s := loadedScreen(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.tab != tabRecommendations {
		t.Fatalf("tab = %d, want recommendations", s.tab)
	}
	if !strings.Contains(s.View(100, 30), "Focus on Chemistry") {
		t.Error("expected weak subject recommendation")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.expanded[0] {
		t.Error("expected first recommendation expanded")
	}
}

func TestDashboard_Activity(t *testing.T) {
	s := loadedScreen(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.tab != tabActivity {
		t.Fatalf("tab = %d, want activity", s.tab)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "What is a newton?") {
		t.Error("expected question in activity")
	}

	for i := 0; i < 5; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.selected != 2 {
		t.Errorf("selected = %d, want 2 (clamped to last entry)", s.selected)
	}
}

func TestDashboard_EscPops(t *testing.T) {
	s := loadedScreen(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
