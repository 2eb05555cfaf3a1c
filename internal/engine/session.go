package engine

import (
	"context"
	"log/slog"

	"github.com/abhisek/smartlearn/internal/analytics"
	"github.com/abhisek/smartlearn/internal/llm"
	"github.com/abhisek/smartlearn/internal/session"
	"github.com/abhisek/smartlearn/internal/tutor"
)

// AskResult is a tutor answer recorded against a session.
type AskResult struct {
	SessionID string `json:"session_id"`
	*tutor.Response
}

// Ask answers a question and records it. The tutor never fails, so an
// error here comes from the session store.
func (e *Engine) Ask(ctx context.Context, sessionID, subject, question string) (*AskResult, error) {
	resp, err := e.tutor.Answer(llm.WithSession(ctx, sessionID), subject, question)
	if err != nil {
		return nil, err
	}
	e.metrics.TutorAnswered(resp.Provider)

	s, err := e.RecordQuestion(ctx, sessionID, subject, question)
	if err != nil {
		return nil, err
	}
	resp.LearningTip = tutor.LearningTip(analytics.Summarize(s, e.now()), analytics.BySubject(s), subject)
	return &AskResult{SessionID: sessionID, Response: resp}, nil
}

// RecordQuestion appends a question interaction.
func (e *Engine) RecordQuestion(ctx context.Context, sessionID, subject, question string) (*session.Session, error) {
	s, err := e.sessions.Append(ctx, sessionID, session.NewQuestion(subject, question, e.now()))
	if err != nil {
		return nil, err
	}
	e.metrics.QuestionAsked(subject)
	return s, nil
}

// RecordQuizAttempt appends a quiz result reported by the client rather
// than graded here. The score is clamped to [0, 100].
func (e *Engine) RecordQuizAttempt(ctx context.Context, sessionID, subject, topic string, score float64, timeTaken int, difficulty string) (*session.Session, error) {
	return e.sessions.Append(ctx, sessionID, session.NewQuizAttempt(subject, topic, score, timeTaken, difficulty, e.now()))
}

// Dashboard is every derived view of a session.
type Dashboard struct {
	SessionID        string                            `json:"session_id"`
	Progress         analytics.ProgressSummary         `json:"progress_summary"`
	SubjectAnalytics map[string]analytics.SubjectStats `json:"subject_analytics"`
	Recommendations  []analytics.Recommendation        `json:"recommendations"`
	RecentActivity   []session.Interaction             `json:"recent_activity"`
	QuizHistory      []session.Interaction             `json:"quiz_history"`
}

func (e *Engine) Dashboard(ctx context.Context, sessionID string) (*Dashboard, error) {
	s, err := e.sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		SessionID:        sessionID,
		Progress:         e.summarize(s),
		SubjectAnalytics: analytics.BySubject(s),
		Recommendations:  analytics.Recommend(s),
		RecentActivity:   analytics.RecentActivity(s, analytics.DefaultRecentLimit),
		QuizHistory:      analytics.QuizHistory(s),
	}, nil
}

func (e *Engine) summarize(s *session.Session) analytics.ProgressSummary {
	sum := analytics.Summarize(s, e.now())
	sum.QuizPerformance.QuizzesGenerated = e.quizzesGenerated(s.ID)
	return sum
}

// Progress returns the session's summary.
func (e *Engine) Progress(ctx context.Context, sessionID string) (analytics.ProgressSummary, error) {
	s, err := e.sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		return analytics.ProgressSummary{}, err
	}
	return e.summarize(s), nil
}

// History returns up to limit interactions, newest first.
func (e *Engine) History(ctx context.Context, sessionID string, limit int) ([]session.Interaction, error) {
	s, err := e.sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return analytics.RecentActivity(s, limit), nil
}

func (e *Engine) QuizHistory(ctx context.Context, sessionID string) ([]session.Interaction, error) {
	s, err := e.sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return analytics.QuizHistory(s), nil
}

func (e *Engine) Recommendations(ctx context.Context, sessionID string) ([]analytics.Recommendation, error) {
	s, err := e.sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return analytics.Recommend(s), nil
}

// Reset drops the session's attempts and empties its history. Resetting a session
// with no history is a no-op.
func (e *Engine) Reset(ctx context.Context, sessionID string) error {
	// Attempts go first so none can be graded into the emptied session.
	dropped := e.runner.Discard(sessionID)
	if _, err := e.sessions.Reset(ctx, sessionID); err != nil {
		return err
	}

	e.mu.Lock()
	delete(e.generated, sessionID)
	e.mu.Unlock()

	e.logger.Info("session reset", slog.String("session", sessionID), slog.Int("attempts_dropped", dropped))
	return nil
}
