package engine

import (
	"context"
	"fmt"

	"github.com/abhisek/smartlearn/internal/fallback"
	"github.com/abhisek/smartlearn/internal/llm"
	"github.com/abhisek/smartlearn/internal/quiz"
	"github.com/abhisek/smartlearn/internal/runner"
)

// Generate builds a quiz for the session and registers it for attempts.
func (e *Engine) Generate(ctx context.Context, sessionID string, p quiz.Params) (*quiz.Quiz, error) {
	if _, err := e.sessions.GetOrCreate(ctx, sessionID); err != nil {
		return nil, err
	}
	q, err := e.builder.Build(llm.WithSession(ctx, sessionID), p)
	if err != nil {
		return nil, err
	}
	e.runner.Register(q)

	e.mu.Lock()
	e.generated[sessionID]++
	e.mu.Unlock()

	e.metrics.QuizBuilt(string(q.Source))
	e.logger.Info("quiz generated", "session", sessionID, "quiz", q.ID, "source", q.Source,
		"generator", q.Generator, "questions", len(q.Questions))
	return q, nil
}

// Quiz returns a registered quiz.
func (e *Engine) Quiz(quizID string) (*quiz.Quiz, error) {
	return e.runner.Quiz(quizID)
}

// Start opens an attempt on a registered quiz for the session.
func (e *Engine) Start(ctx context.Context, sessionID, quizID string) (string, error) {
	if _, err := e.sessions.GetOrCreate(ctx, sessionID); err != nil {
		return "", err
	}
	id, err := e.runner.Start(quizID, sessionID)
	if err != nil {
		return "", fmt.Errorf("start quiz: %w", err)
	}
	return id, nil
}

// Attempt returns the attempt's current state, applying its deadline.
func (e *Engine) Attempt(ctx context.Context, attemptID string) (*runner.Snapshot, error) {
	return e.runner.View(ctx, attemptID)
}

// Owner returns the session that started the attempt. Unlike Attempt it
// neither begins the attempt nor applies its deadline.
func (e *Engine) Owner(attemptID string) (string, error) {
	return e.runner.Owner(attemptID)
}

// Peek returns the attempt as it stands, without side effects.
func (e *Engine) Peek(attemptID string) (*runner.Snapshot, error) {
	return e.runner.Peek(attemptID)
}

func (e *Engine) SetAnswer(ctx context.Context, attemptID string, index int, answer string) (*runner.Snapshot, error) {
	return e.runner.SetAnswer(ctx, attemptID, index, answer)
}

func (e *Engine) ClearAnswer(ctx context.Context, attemptID string, index int) (*runner.Snapshot, error) {
	return e.runner.ClearAnswer(ctx, attemptID, index)
}

// Submit grades the attempt. The quiz_attempt interaction is appended to
// the owning session before Submit returns.
func (e *Engine) Submit(ctx context.Context, attemptID string) (*runner.Report, error) {
	return e.runner.Submit(ctx, attemptID)
}

// SubmitSheet applies a full answer sheet and grades the attempt. The
// sheet is validated as a whole first; see runner.SubmitSheet.
func (e *Engine) SubmitSheet(ctx context.Context, attemptID string, sheet []*string) (*runner.Report, error) {
	return e.runner.SubmitSheet(ctx, attemptID, sheet)
}

// ActiveAttempts lists the session's ungraded attempts.
func (e *Engine) ActiveAttempts(ctx context.Context, sessionID string) []*runner.Snapshot {
	return e.runner.Active(ctx, sessionID)
}

// Catalog lists the subjects and topics quizzes can be built for.
func (e *Engine) Catalog() fallback.Catalog {
	diffs := make([]string, len(quiz.Difficulties))
	for i, d := range quiz.Difficulties {
		diffs[i] = string(d)
	}
	types := make([]string, len(quiz.Types))
	for i, t := range quiz.Types {
		types[i] = string(t)
	}
	return fallback.AvailableQuizzes(diffs, types)
}

// Statistics describes a registered quiz.
func (e *Engine) Statistics(quizID string) (quiz.Stats, error) {
	q, err := e.runner.Quiz(quizID)
	if err != nil {
		return quiz.Stats{}, err
	}
	return quiz.Statistics(q), nil
}
