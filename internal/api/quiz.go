package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/abhisek/smartlearn/internal/quiz"
	"github.com/abhisek/smartlearn/internal/runner"
	"github.com/go-chi/chi/v5"
)

// quizView is a quiz as shown to a student: correct answers and
// explanations only appear in graded reports.
type quizView struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Subject    string          `json:"subject"`
	Topic      string          `json:"topic"`
	Difficulty quiz.Difficulty `json:"difficulty"`
	Type       quiz.Type       `json:"quiz_type"`
	Questions  []questionView  `json:"questions"`
	TimeLimit  int             `json:"time_limit"`
	CreatedAt  time.Time       `json:"created_at"`
	Source     quiz.Origin     `json:"source"`
}

type questionView struct {
	Number   int      `json:"question_number"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

func newQuizView(q *quiz.Quiz) quizView {
	v := quizView{
		ID:         q.ID,
		Title:      q.Title,
		Subject:    q.Subject,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		Type:       q.Type,
		Questions:  make([]questionView, len(q.Questions)),
		TimeLimit:  q.TimeLimit,
		CreatedAt:  q.CreatedAt,
		Source:     q.Source,
	}
	for i, qu := range q.Questions {
		v.Questions[i] = questionView{Number: i + 1, Question: qu.Prompt, Options: qu.Options}
	}
	return v
}

func (s *Server) availableQuizzes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Catalog())
}

func (s *Server) generateQuiz(w http.ResponseWriter, r *http.Request) {
	var p quiz.Params
	if err := decode(w, r, &p); err != nil {
		s.handleError(w, r, err)
		return
	}
	if p.Count == 0 {
		p.Count = quiz.DefaultQuestions
	}

	sid := SessionID(r.Context())
	q, err := s.engine.Generate(r.Context(), sid, p)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"success":    true,
		"quiz":       newQuizView(q),
		"statistics": quiz.Statistics(q),
		"session_id": sid,
	})
}

func (s *Server) getQuiz(w http.ResponseWriter, r *http.Request) {
	q, err := s.engine.Quiz(chi.URLParam(r, "quizID"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"quiz":       newQuizView(q),
		"statistics": quiz.Statistics(q),
	})
}

func (s *Server) startQuiz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := SessionID(ctx)
	q, err := s.engine.Quiz(chi.URLParam(r, "quizID"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	id, err := s.engine.Start(ctx, sid, q.ID)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	// The clock starts on the first read or answer, not here.
	snap, err := s.engine.Peek(id)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"success":    true,
		"attempt":    snap,
		"quiz":       newQuizView(q),
		"session_id": sid,
	})
}

func (s *Server) activeAttempts(w http.ResponseWriter, r *http.Request) {
	sid := SessionID(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"attempts":   s.engine.ActiveAttempts(r.Context(), sid),
		"session_id": sid,
	})
}

// ownAttempt returns the attempt ID in the URL, hiding attempts that
// belong to another session. It leaves the attempt's state alone.
func (s *Server) ownAttempt(ctx context.Context, r *http.Request) (string, error) {
	id := chi.URLParam(r, "attemptID")
	owner, err := s.engine.Owner(id)
	if err != nil {
		return "", err
	}
	if owner != SessionID(ctx) {
		return "", fmt.Errorf("attempt %s: %w", id, runner.ErrNotFound)
	}
	return id, nil
}

func (s *Server) getAttempt(w http.ResponseWriter, r *http.Request) {
	id, err := s.ownAttempt(r.Context(), r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	snap, err := s.engine.Attempt(r.Context(), id)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func answerIndex(r *http.Request) (int, error) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, &badRequest{msg: "Answer index must be an integer"}
	}
	return i, nil
}

func (s *Server) setAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := s.ownAttempt(ctx, r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	index, err := answerIndex(r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	var body struct {
		Answer *string `json:"answer"`
	}
	if err := decode(w, r, &body); err != nil {
		s.handleError(w, r, err)
		return
	}
	if body.Answer == nil {
		s.handleError(w, r, &badRequest{msg: "answer is required"})
		return
	}

	snap, err := s.engine.SetAnswer(ctx, id, index, *body.Answer)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) clearAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := s.ownAttempt(ctx, r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	index, err := answerIndex(r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	snap, err := s.engine.ClearAnswer(ctx, id, index)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// submitAttempt grades an attempt. The body may carry an answer sheet,
// applied before grading only if every entry is valid; null entries keep
// the current answer.
func (s *Server) submitAttempt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := s.ownAttempt(ctx, r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	var body struct {
		Answers []*string `json:"answers"`
	}
	if err := decode(w, r, &body); err != nil {
		s.handleError(w, r, err)
		return
	}

	rep, err := s.engine.SubmitSheet(ctx, id, body.Answers)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"results":    rep,
		"session_id": rep.SessionID,
	})
}

func (s *Server) recordResult(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Subject   string  `json:"subject"`
		Score     float64 `json:"score"`
		TimeTaken int     `json:"time_taken"`
		QuizData  struct {
			Topic      string `json:"topic"`
			Difficulty string `json:"difficulty"`
		} `json:"quiz_data"`
	}
	if err := decode(w, r, &body); err != nil {
		s.handleError(w, r, err)
		return
	}
	subject := body.Subject
	if subject == "" {
		subject = "General"
	}

	sid := SessionID(r.Context())
	_, err := s.engine.RecordQuizAttempt(r.Context(), sid, subject, body.QuizData.Topic,
		body.Score, body.TimeTaken, body.QuizData.Difficulty)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    "Quiz result recorded successfully",
		"session_id": sid,
	})
}

func (s *Server) quizHistory(w http.ResponseWriter, r *http.Request) {
	sid := SessionID(r.Context())
	hist, err := s.engine.QuizHistory(r.Context(), sid)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"quiz_history": hist,
		"session_id":   sid,
	})
}
