package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/engine/enginetest"
	"github.com/abhisek/smartlearn/internal/router"
	"github.com/abhisek/smartlearn/internal/screens/home"
	"github.com/abhisek/smartlearn/internal/screens/welcome"
)

func TestStartsOnWelcome(t *testing.T) {
	m := newAppModel(enginetest.Offline(enginetest.NewClock()), Options{SessionID: "s1"})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("expected welcome screen, got %T", m.router.Active())
	}
}

func TestSkipWelcome(t *testing.T) {
	m := newAppModel(enginetest.Offline(enginetest.NewClock()), Options{SessionID: "s1", SkipWelcome: true})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("expected home screen, got %T", m.router.Active())
	}
}

func TestHeaderStatsRefreshOnNavigation(t *testing.T) {
	e := enginetest.Offline(enginetest.NewClock())
	m := newAppModel(e, Options{SessionID: "s1", SkipWelcome: true})
	if m.stats.Quizzes != 0 {
		t.Fatalf("Quizzes = %d, want 0", m.stats.Quizzes)
	}

	if _, err := e.RecordQuizAttempt(context.Background(), "s1", "Physics", "Optics", 90, 60, "advanced"); err != nil {
		t.Fatal(err)
	}
	updated, _ := m.Update(router.PopToRootMsg{})
	m = updated.(AppModel)
	if m.stats.Quizzes != 1 || m.stats.Average != 90 {
		t.Errorf("stats = %+v, want 1 quiz at 90", m.stats)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(enginetest.Offline(enginetest.NewClock()), Options{SessionID: "s1"})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}
