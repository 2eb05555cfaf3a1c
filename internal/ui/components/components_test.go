package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func TestContentWidthBounds(t *testing.T) {
	tests := []struct{ frame, want int }{
		{20, minContentWidth},
		{60, 54},
		{200, maxContentWidth},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.frame); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.frame, got, tt.want)
		}
	}
}

func TestMenuSkipsDisabledAndWraps(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Quiz"}, {Label: "Review", Disabled: true}, {Label: "Exit"}})
	if m.Selected != 0 {
		t.Fatalf("selected = %d, want 0", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("down: selected = %d, want 2", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if m.Selected != 0 {
		t.Errorf("wrap: selected = %d, want 0", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 2 {
		t.Errorf("up wrap: selected = %d, want 2", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	type picked struct{}
	m := NewMenu([]MenuItem{{Label: "Go", Action: func() tea.Cmd {
		return func() tea.Msg { return picked{} }
	}}})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(picked); !ok {
		t.Errorf("got %T", cmd())
	}
}

func TestEmptyMenuIgnoresKeys(t *testing.T) {
	m := NewMenu(nil)
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("expected no command")
	}
}

func TestNumberInputDropsNonDigits(t *testing.T) {
	in := NewNumberInput("5", 2)
	in, _ = in.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	in, _ = in.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	in, _ = in.Update(tea.KeyPressMsg{Code: '2', Text: "2"})

	n, err := in.Int()
	if err != nil || n != 12 {
		t.Errorf("Int() = %d, %v; want 12", n, err)
	}

	in.Reset()
	if in.Value() != "" {
		t.Errorf("value after reset = %q", in.Value())
	}
}

func TestScoreBarFitsWidth(t *testing.T) {
	view := NewScoreBar("Math", 72, 40).View()
	if w := lipgloss.Width(view); w != 40 {
		t.Errorf("width = %d, want 40", w)
	}
	if !strings.Contains(view, "72%") {
		t.Errorf("missing percentage in %q", view)
	}
}

func TestScoreBarClampsPercentage(t *testing.T) {
	if !strings.Contains(NewScoreBar("", 140, 20).View(), "100%") {
		t.Error("expected score clamped to 100%")
	}
}
