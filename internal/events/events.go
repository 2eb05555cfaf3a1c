// Package events publishes graded quiz attempts for downstream consumers.
package events

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/smartlearn/internal/runner"
)

// RoutingQuizGraded is the routing key of QuizGraded events.
const RoutingQuizGraded = "quiz.graded"

// QuizGraded is emitted once per graded attempt.
type QuizGraded struct {
	EventType     string    `json:"event_type"`
	AttemptID     string    `json:"attempt_id"`
	QuizID        string    `json:"quiz_id"`
	SessionID     string    `json:"session_id"`
	Subject       string    `json:"subject"`
	Topic         string    `json:"topic"`
	Difficulty    string    `json:"difficulty"`
	Total         int       `json:"total_questions"`
	Correct       int       `json:"correct_answers"`
	Score         float64   `json:"score_percentage"`
	TimeTaken     int       `json:"time_taken"`
	AutoSubmitted bool      `json:"auto_submitted"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// FromReport builds the event for a grading report.
func FromReport(r *runner.Report, at time.Time) QuizGraded {
	return QuizGraded{
		EventType:     RoutingQuizGraded,
		AttemptID:     r.AttemptID,
		QuizID:        r.QuizID,
		SessionID:     r.SessionID,
		Subject:       r.Subject,
		Topic:         r.Topic,
		Difficulty:    string(r.Difficulty),
		Total:         r.Total,
		Correct:       r.Correct,
		Score:         r.ScorePercentage,
		TimeTaken:     r.TimeTakenSeconds,
		AutoSubmitted: r.AutoSubmitted,
		OccurredAt:    at,
	}
}

type Publisher interface {
	PublishQuizGraded(ctx context.Context, ev QuizGraded) error
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is set.
type NoopPublisher struct{}

func (NoopPublisher) PublishQuizGraded(context.Context, QuizGraded) error { return nil }
func (NoopPublisher) Close() error { return nil }

// MemoryPublisher keeps events in memory.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []QuizGraded
}

func (m *MemoryPublisher) PublishQuizGraded(_ context.Context, ev QuizGraded) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return nil
}

func (m *MemoryPublisher) Close() error { return nil }

// Events returns a copy of what was published.
func (m *MemoryPublisher) Events() []QuizGraded {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]QuizGraded(nil), m.events...)
}

// Hook adapts p to a runner hook.
func Hook(p Publisher, now func() time.Time) runner.Hook {
	return func(ctx context.Context, r *runner.Report) error {
		return p.PublishQuizGraded(ctx, FromReport(r, now()))
	}
}
