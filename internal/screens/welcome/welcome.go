// Package welcome is the splash shown when the player starts.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/fallback"
	"github.com/abhisek/smartlearn/internal/router"
	"github.com/abhisek/smartlearn/internal/screen"
	"github.com/abhisek/smartlearn/internal/ui/theme"
)

const (
	frameEvery   = 100 * time.Millisecond
	bannerAfter  = 500 * time.Millisecond
	taglineAfter = 1500 * time.Millisecond
	settledAfter = 3000 * time.Millisecond

	// framesPerSubject is how long each subject stays in the ticker line.
	framesPerSubject = 6
)

type stage int

const (
	stageBook stage = iota
	stageBanner
	stageTagline
)

type frameMsg time.Time

// WelcomeScreen reveals the banner in stages and waits for a key before
// replacing itself with the home screen.
type WelcomeScreen struct {
	next     func() screen.Screen
	subjects []string
	elapsed  time.Duration
	frame    int
	done     bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{next: next}
	for _, s := range fallback.AvailableQuizzes(nil, nil).Subjects {
		w.subjects = append(w.subjects, s.Name)
	}
	return w
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frameEvery, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (w *WelcomeScreen) stage() stage {
	switch {
	case w.elapsed >= taglineAfter:
		return stageTagline
	case w.elapsed >= bannerAfter:
		return stageBanner
	default:
		return stageBook
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done {
			return w, nil
		}
		w.elapsed = min(w.elapsed+frameEvery, settledAfter)
		w.frame++
		return w, nextFrame()
	case tea.KeyPressMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		home := w.next()
		return w, func() tea.Msg { return router.ReplaceScreenMsg{Screen: home} }
	}
	return w, nil
}

// currentSubject is the subject named in the ticker line this frame.
func (w *WelcomeScreen) currentSubject() string {
	if len(w.subjects) == 0 {
		return ""
	}
	return w.subjects[(w.frame/framesPerSubject)%len(w.subjects)]
}

func (w *WelcomeScreen) View(width, height int) string {
	lines := []string{renderBook(w.stage() >= stageBanner, w.frame)}

	if w.stage() >= stageBanner {
		lines = append(lines, "", RenderBanner(width))
	}
	if w.stage() >= stageTagline {
		subject := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(w.currentSubject())
		lines = append(lines,
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Ask anything. Quiz yourself. Watch yourself improve."),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Today: ")+subject,
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}
