// Package engine ties the quiz builder, the runner, the session store,
// analytics and the tutor together behind the Quiz and Session APIs.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/abhisek/smartlearn/internal/events"
	"github.com/abhisek/smartlearn/internal/metrics"
	"github.com/abhisek/smartlearn/internal/quiz"
	"github.com/abhisek/smartlearn/internal/runner"
	"github.com/abhisek/smartlearn/internal/session"
	"github.com/abhisek/smartlearn/internal/tutor"
)

type Engine struct {
	builder  *quiz.Builder
	runner   *runner.Runner
	sessions *session.Store
	tutor    tutor.Responder

	metrics   *metrics.Metrics
	publisher events.Publisher
	now       func() time.Time
	logger    *slog.Logger

	mu        sync.Mutex
	generated map[string]int
}

type Option func(*Engine)

// WithTutor sets the responder used by Ask. The default is a tutor
// Service with no responders, which always gives canned answers.
func WithTutor(t tutor.Responder) Option {
	return func(e *Engine) { e.tutor = t }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithPublisher sends an event for every graded attempt.
func WithPublisher(p events.Publisher) Option {
	return func(e *Engine) { e.publisher = p }
}

// WithClock sets the engine's clock. Pass the same clock to the runner and
// the store.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New wires the engine and registers its grading hooks on r.
func New(b *quiz.Builder, r *runner.Runner, s *session.Store, opts ...Option) *Engine {
	e := &Engine{
		builder:   b,
		runner:    r,
		sessions:  s,
		now:       time.Now,
		logger:    slog.Default(),
		generated: make(map[string]int),
	}
	for _, o := range opts {
		o(e)
	}
	if e.tutor == nil {
		e.tutor = tutor.NewService(nil, tutor.WithLogger(e.logger), tutor.WithClock(e.now))
	}

	r.OnGraded(e.recordAttempt)
	r.OnGraded(func(_ context.Context, rep *runner.Report) error {
		e.metrics.QuizGraded(rep.Subject, rep.ScorePercentage, rep.AutoSubmitted)
		return nil
	})
	if e.publisher != nil {
		r.OnGraded(events.Hook(e.publisher, e.now))
	}
	return e
}

// recordAttempt appends the quiz_attempt interaction for a graded report.
// The runner calls it once per attempt.
func (e *Engine) recordAttempt(ctx context.Context, rep *runner.Report) error {
	in := session.NewQuizAttempt(rep.Subject, rep.Topic, rep.ScorePercentage, rep.TimeTakenSeconds, string(rep.Difficulty), e.now())
	in.QuizID = rep.QuizID
	_, err := e.sessions.Append(ctx, rep.SessionID, in)
	return err
}

// ActiveSessions is the number of sessions held in memory.
func (e *Engine) ActiveSessions() int {
	return e.sessions.Len()
}

func (e *Engine) quizzesGenerated(sessionID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generated[sessionID]
}
