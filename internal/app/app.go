package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/engine"
	"github.com/abhisek/smartlearn/internal/router"
	"github.com/abhisek/smartlearn/internal/screen"
	"github.com/abhisek/smartlearn/internal/screens/home"
	"github.com/abhisek/smartlearn/internal/screens/welcome"
	"github.com/abhisek/smartlearn/internal/ui/layout"
)

// Options configures the player.
type Options struct {
	SessionID string

	// LLMReady is false when quizzes and answers come only from the
	// built-in bank.
	LLMReady bool

	// SkipWelcome starts on the home screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	engine    *engine.Engine
	sessionID string
	router    *router.Router
	stats     layout.HeaderStats
	width     int
	height    int
}

// newAppModel creates the root model, starting on the welcome splash.
func newAppModel(e *engine.Engine, opts Options) AppModel {
	homeFactory := func() screen.Screen { return home.New(e, opts.SessionID, opts.LLMReady) }
	var first screen.Screen = welcome.New(homeFactory)
	if opts.SkipWelcome {
		first = homeFactory()
	}
	m := AppModel{
		engine:    e,
		sessionID: opts.SessionID,
		router:    router.New(first),
	}
	m.refreshStats()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

// refreshStats reloads the header numbers. Progress is held in memory
// once the session is loaded, so this is cheap enough to run on every
// navigation.
func (m *AppModel) refreshStats() {
	p, err := m.engine.Progress(context.Background(), m.sessionID)
	if err != nil {
		return
	}
	m.stats = layout.HeaderStats{Quizzes: p.TotalQuizzes, Average: p.AverageQuizScore}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg, router.PopToRootMsg:
		m.refreshStats()
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// defaultHints is the footer for screens without their own hints.
var defaultHints = []layout.KeyHint{
	{Key: "any key", Description: "Continue"},
	{Key: "Ctrl+C", Description: "Quit"},
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	switch {
	case m.width == 0 || m.height == 0:
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
	default:
		v.SetContent(m.render())
	}
	return v
}

func (m AppModel) render() string {
	title, hints := "", defaultHints
	if active := m.router.Active(); active != nil {
		title = active.Title()
		if p, ok := active.(screen.KeyHintProvider); ok {
			hints = p.KeyHints()
		}
	}

	header := layout.RenderHeader(title, m.stats, m.width)
	footer := layout.RenderFooter(hints, m.width)
	body := m.router.View(m.width, layout.BodyHeight(header, footer, m.height))
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

// Run blocks until the player quits.
func Run(e *engine.Engine, opts Options) error {
	if _, err := tea.NewProgram(newAppModel(e, opts)).Run(); err != nil {
		return fmt.Errorf("run player: %w", err)
	}
	return nil
}
