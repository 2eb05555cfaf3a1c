// Package router keeps the player's screens on a stack. Screens never
// hold a reference to the router; they navigate by returning one of the
// messages below from a command.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the current screen. The root screen is never closed.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the current screen for Screen, as when setup
// hands over to the running quiz.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// PopToRootMsg closes everything above the home menu.
type PopToRootMsg struct{}

type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) top() int { return len(r.stack) - 1 }

// Active is the screen that receives input.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[r.top()]
}

func (r *Router) Depth() int { return len(r.stack) }

// Push, Replace and PopToRoot all return the Init command of the screen
// that ends up on top. Pop does not re-initialize the revealed screen.

func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[r.top()] = s
	return s.Init()
}

func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack[r.top()] = nil
		r.stack = r.stack[:r.top()]
	}
	return nil
}

// PopToRoot re-initializes the home screen so its totals reflect the quiz
// that was just finished.
func (r *Router) PopToRoot() tea.Cmd {
	clear(r.stack[1:])
	r.stack = r.stack[:1]
	return r.stack[0].Init()
}

// Update applies navigation messages and passes everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch nav := msg.(type) {
	case PushScreenMsg:
		return r.Push(nav.Screen)
	case ReplaceScreenMsg:
		return r.Replace(nav.Screen)
	case PopScreenMsg:
		return r.Pop()
	case PopToRootMsg:
		return r.PopToRoot()
	}

	if len(r.stack) == 0 {
		return nil
	}
	next, cmd := r.stack[r.top()].Update(msg)
	r.stack[r.top()] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	if s := r.Active(); s != nil {
		return s.View(width, height)
	}
	return ""
}
