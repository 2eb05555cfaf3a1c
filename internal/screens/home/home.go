package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/analytics"
	"github.com/abhisek/smartlearn/internal/engine"
	"github.com/abhisek/smartlearn/internal/router"
	"github.com/abhisek/smartlearn/internal/screen"
	"github.com/abhisek/smartlearn/internal/screens/ask"
	"github.com/abhisek/smartlearn/internal/screens/dashboard"
	"github.com/abhisek/smartlearn/internal/screens/setup"
	"github.com/abhisek/smartlearn/internal/ui/components"
	"github.com/abhisek/smartlearn/internal/ui/layout"
)

const (
	itemQuiz = iota
	itemAsk
	itemDashboard
	itemReset
	itemExit
)

var menuLabels = []string{"TAKE A QUIZ", "ASK THE TUTOR", "DASHBOARD", "RESET PROGRESS", "EXIT"}

// statsMsg carries a fresh progress summary for the stats bar.
type statsMsg struct {
	summary analytics.ProgressSummary
	next    *analytics.Recommendation
}

// resetDoneMsg reports the outcome of a progress reset.
type resetDoneMsg struct{ err error }

// HomeScreen is the main menu. Its stats reload every time it becomes the
// active screen again.
type HomeScreen struct {
	engine    *engine.Engine
	sessionID string
	llmReady  bool

	menu       components.Menu
	summary    analytics.ProgressSummary
	next       *analytics.Recommendation
	confirming bool
	err        error
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen for sessionID. llmReady is false when no model
// provider is configured and everything runs from the built-in bank.
func New(e *engine.Engine, sessionID string, llmReady bool) *HomeScreen {
	h := &HomeScreen{engine: e, sessionID: sessionID, llmReady: llmReady}

	push := func(s screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}
	items := make([]components.MenuItem, len(menuLabels))
	for i, label := range menuLabels {
		items[i].Label = label
	}
	items[itemQuiz].Action = func() tea.Cmd { return push(setup.New(e, sessionID))() }
	items[itemAsk].Action = func() tea.Cmd { return push(ask.New(e, sessionID))() }
	items[itemDashboard].Action = func() tea.Cmd { return push(dashboard.New(e, sessionID))() }
	items[itemReset].Action = func() tea.Cmd {
		h.confirming = true
		return nil
	}
	items[itemExit].Action = func() tea.Cmd { return tea.Quit }

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats
}

func (h *HomeScreen) loadStats() tea.Msg {
	ctx := context.Background()
	summary, err := h.engine.Progress(ctx, h.sessionID)
	if err != nil {
		return resetDoneMsg{err: err}
	}
	msg := statsMsg{summary: summary}
	if recs, err := h.engine.Recommendations(ctx, h.sessionID); err == nil && len(recs) > 0 {
		msg.next = &recs[0]
	}
	return msg
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		h.summary = msg.summary
		h.next = msg.next
		return h, nil

	case resetDoneMsg:
		h.err = msg.err
		if msg.err != nil {
			return h, nil
		}
		return h, h.loadStats

	case tea.KeyPressMsg:
		if h.confirming {
			h.confirming = false
			if msg.String() == "y" {
				return h, h.reset
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) reset() tea.Msg {
	return resetDoneMsg{err: h.engine.Reset(context.Background(), h.sessionID)}
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width) || height+layout.HeaderHeight+layout.FooterHeight < layout.CompactHeightThreshold
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderTotals(h.summary, cw, compact),
	}
	if h.next != nil && !compact {
		sections = append(sections, renderNextStep(*h.next, cw))
	}
	if !h.llmReady {
		sections = append(sections, renderNotice("⚠ No LLM key set: quizzes come from the built-in bank", cw, false))
	}
	sections = append(sections, renderMenu(menuLabels, h.menu.Selected, cw, compact))
	switch {
	case h.confirming:
		sections = append(sections, renderNotice("Erase all progress for this session? (y/n)", cw, false))
	case h.err != nil:
		sections = append(sections, renderNotice(h.err.Error(), cw, true))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// KeyHints implements screen.KeyHintProvider.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirming {
		return []layout.KeyHint{{Key: "y", Description: "Confirm"}, {Key: "any", Description: "Cancel"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
