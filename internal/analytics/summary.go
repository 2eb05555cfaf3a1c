// Package analytics derives progress views from a session's log. Every
// function here is pure: the same log gives the same output.
package analytics

import (
	"math"
	"time"

	"github.com/abhisek/smartlearn/internal/session"
)

// Score thresholds shared by the summaries and recommendation rules.
const (
	HighScore        = 80.0
	ImprovementScore = 60.0
	WeakSubjectScore = 70.0
)

// QuizPerformance is the quiz block of a ProgressSummary.
type QuizPerformance struct {
	QuizzesGenerated      int    `json:"quizzes_generated"`
	BestPerformingSubject string `json:"best_performing_subject,omitempty"`
	HighScores            int    `json:"high_scores"`
	ImprovementNeeded     int    `json:"improvement_needed"`
}

// ProgressSummary is the headline view of a session.
type ProgressSummary struct {
	SessionDurationMinutes int             `json:"session_duration_minutes"`
	TotalQuestions         int             `json:"total_questions"`
	TotalQuizzes           int             `json:"total_quizzes"`
	AverageQuizScore       float64         `json:"average_quiz_score"`
	SubjectsExplored       []string        `json:"subjects_explored"`
	MostActiveSubject      string          `json:"most_active_subject,omitempty"`
	QuizPerformance        QuizPerformance `json:"quiz_performance"`
}

// Summarize reads totals from the session's counters and the rest from
// its log. QuizzesGenerated is left for the caller, which owns quiz
// building.
func Summarize(s *session.Session, now time.Time) ProgressSummary {
	subjects := subjectOrder(s.Interactions)
	sum := ProgressSummary{
		TotalQuestions:    s.Counters.TotalQuestions,
		TotalQuizzes:      s.Counters.TotalQuizzes,
		AverageQuizScore:  round2(s.Counters.AverageScore()),
		SubjectsExplored:  subjects,
		MostActiveSubject: mostActive(s.Interactions, subjects),
	}
	if d := now.Sub(s.CreatedAt); d > 0 {
		sum.SessionDurationMinutes = int(d / time.Minute)
	}

	best, bestAvg := "", math.Inf(-1)
	stats := BySubject(s)
	for _, subj := range subjects {
		st := stats[subj]
		if st.QuizAttempts > 0 && st.AverageQuizScore > bestAvg {
			best, bestAvg = subj, st.AverageQuizScore
		}
		sum.QuizPerformance.HighScores += st.HighScores
		sum.QuizPerformance.ImprovementNeeded += st.ImprovementNeeded
	}
	sum.QuizPerformance.BestPerformingSubject = best
	return sum
}

// subjectOrder lists distinct subjects in first-seen order.
func subjectOrder(log []session.Interaction) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, in := range log {
		if !seen[in.Subject] {
			seen[in.Subject] = true
			out = append(out, in.Subject)
		}
	}
	return out
}

// mostActive is the subject with the most interactions. order breaks ties.
func mostActive(log []session.Interaction, order []string) string {
	counts := make(map[string]int, len(order))
	for _, in := range log {
		counts[in.Subject]++
	}
	best, n := "", 0
	for _, subj := range order {
		if counts[subj] > n {
			best, n = subj, counts[subj]
		}
	}
	return best
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
