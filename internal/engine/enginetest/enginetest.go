// Package enginetest builds engines for tests of packages that sit on top
// of the engine, such as the HTTP API and the terminal player.
package enginetest

import (
	"time"

	"github.com/abhisek/smartlearn/internal/engine"
	"github.com/abhisek/smartlearn/internal/fallback"
	"github.com/abhisek/smartlearn/internal/quiz"
	"github.com/abhisek/smartlearn/internal/runner"
	"github.com/abhisek/smartlearn/internal/session"
)

// Clock is a settable clock.
type Clock struct {
	T time.Time
}

func (c *Clock) Now() time.Time { return c.T }

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// NewClock returns a clock fixed at a known instant.
func NewClock() *Clock {
	return &Clock{T: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

// Offline returns an engine that builds every quiz from the built-in bank
// and answers tutor questions from the offline templates.
func Offline(clk *Clock) *engine.Engine {
	b := quiz.NewBuilder(fallback.Default(), quiz.WithClock(clk.Now))
	r := runner.New(runner.WithClock(clk.Now))
	s := session.NewStore(session.WithClock(clk.Now))
	return engine.New(b, r, s, engine.WithClock(clk.Now))
}
