package tutor

import (
	"fmt"

	"github.com/abhisek/smartlearn/internal/analytics"
)

// LearningTip picks a one-line tip from the student's progress in
// subject.
func LearningTip(sum analytics.ProgressSummary, stats map[string]analytics.SubjectStats, subject string) string {
	switch {
	case sum.TotalQuestions == 0:
		return fmt.Sprintf("Welcome to SmartLearn! Start by asking questions about %s to build your learning profile.", subject)
	case sum.TotalQuestions < 3:
		return fmt.Sprintf("Great start! Keep asking questions about %s to unlock personalized recommendations.", subject)
	}

	if st, ok := stats[subject]; ok && st.QuizAttempts > 0 {
		switch avg := st.AverageQuizScore; {
		case avg >= analytics.HighScore:
			return fmt.Sprintf("Excellent work in %s! You're mastering the concepts. Try more challenging questions.", subject)
		case avg >= analytics.ImprovementScore:
			return fmt.Sprintf("Good progress in %s! Focus on areas where you scored lower to improve.", subject)
		default:
			return fmt.Sprintf("Keep practicing %s! Review the basics and ask for clarification on difficult concepts.", subject)
		}
	}
	return fmt.Sprintf("Keep exploring %s! Every question helps us understand your learning needs better.", subject)
}
