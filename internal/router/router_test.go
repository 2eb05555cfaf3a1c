package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/screen"
)

type fakeScreen struct {
	name  string
	inits int
	seen  []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.seen = append(f.seen, msg)
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func titles(r *Router) []string {
	out := make([]string, len(r.stack))
	for i, s := range r.stack {
		out[i] = s.Title()
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
		want []string
	}{
		{
			name: "push opens setup over home",
			msgs: []tea.Msg{PushScreenMsg{Screen: &fakeScreen{name: "setup"}}},
			want: []string{"home", "setup"},
		},
		{
			name: "pop returns to home",
			msgs: []tea.Msg{PushScreenMsg{Screen: &fakeScreen{name: "setup"}}, PopScreenMsg{}},
			want: []string{"home"},
		},
		{
			name: "pop never closes home",
			msgs: []tea.Msg{PopScreenMsg{}, PopScreenMsg{}},
			want: []string{"home"},
		},
		{
			name: "replace keeps depth",
			msgs: []tea.Msg{
				PushScreenMsg{Screen: &fakeScreen{name: "setup"}},
				ReplaceScreenMsg{Screen: &fakeScreen{name: "quiz"}},
			},
			want: []string{"home", "quiz"},
		},
		{
			name: "pop to root after report",
			msgs: []tea.Msg{
				PushScreenMsg{Screen: &fakeScreen{name: "quiz"}},
				PushScreenMsg{Screen: &fakeScreen{name: "report"}},
				PopToRootMsg{},
			},
			want: []string{"home"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&fakeScreen{name: "home"})
			for _, m := range tt.msgs {
				r.Update(m)
			}
			if got := titles(r); !equal(got, tt.want) {
				t.Errorf("stack = %v, want %v", got, tt.want)
			}
			if r.Active().Title() != tt.want[len(tt.want)-1] {
				t.Errorf("active = %q", r.Active().Title())
			}
		})
	}
}

func TestInitRunsOnScreenThatEndsOnTop(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	setup := &fakeScreen{name: "setup"}
	r.Update(PushScreenMsg{Screen: setup})
	quiz := &fakeScreen{name: "quiz"}
	r.Update(ReplaceScreenMsg{Screen: quiz})
	if setup.inits != 1 || quiz.inits != 1 {
		t.Errorf("inits setup=%d quiz=%d, want 1 each", setup.inits, quiz.inits)
	}

	r.Update(PopScreenMsg{})
	if home.inits != 0 {
		t.Errorf("pop should not re-init home, got %d", home.inits)
	}

	r.Update(PushScreenMsg{Screen: &fakeScreen{name: "report"}})
	r.Update(PopToRootMsg{})
	if home.inits != 1 {
		t.Errorf("pop to root should re-init home once, got %d", home.inits)
	}
}

func TestOtherMessagesReachActiveScreen(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)
	quiz := &fakeScreen{name: "quiz"}
	r.Push(quiz)

	r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})

	if len(quiz.seen) != 1 {
		t.Errorf("quiz saw %d messages, want 1", len(quiz.seen))
	}
	if len(home.seen) != 0 {
		t.Errorf("home saw %d messages, want 0", len(home.seen))
	}
	if got := r.View(80, 24); got != "quiz" {
		t.Errorf("view = %q", got)
	}
}
