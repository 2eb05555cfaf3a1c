package runner

import (
	"fmt"
	"math"

	"github.com/abhisek/smartlearn/internal/quiz"
)

// QuestionResult is one row of a report's breakdown.
type QuestionResult struct {
	Number        int      `json:"question_number"`
	Prompt        string   `json:"question"`
	StudentAnswer *string  `json:"student_answer"`
	CorrectAnswer string   `json:"correct_answer"`
	IsCorrect     bool     `json:"is_correct"`
	Explanation   string   `json:"explanation,omitempty"`
	Options       []string `json:"options"`
}

// Report is the graded outcome of an attempt.
type Report struct {
	AttemptID  string          `json:"attempt_id"`
	QuizID     string          `json:"quiz_id"`
	SessionID  string          `json:"session_id"`
	Subject    string          `json:"subject"`
	Topic      string          `json:"topic"`
	Difficulty quiz.Difficulty `json:"difficulty_level"`

	Total           int     `json:"total_questions"`
	Correct         int     `json:"correct_answers"`
	Incorrect       int     `json:"incorrect_answers"`
	ScorePercentage float64 `json:"score_percentage"`

	TimeTakenSeconds int  `json:"time_taken"`
	AutoSubmitted    bool `json:"auto_submitted"`

	Breakdown []QuestionResult `json:"question_results"`
	Feedback  []string         `json:"feedback"`
}

// Grade scores answers against q. It is a pure function of its inputs.
// A nil answer is incorrect; an empty quiz scores 0.
func Grade(q *quiz.Quiz, answers []*string, timeTakenSeconds int) *Report {
	r := &Report{
		QuizID:           q.ID,
		Subject:          q.Subject,
		Topic:            q.Topic,
		Difficulty:       q.Difficulty,
		Total:            len(q.Questions),
		TimeTakenSeconds: timeTakenSeconds,
		Breakdown:        make([]QuestionResult, len(q.Questions)),
	}

	var wrong []int
	for i, qu := range q.Questions {
		var ans *string
		if i < len(answers) && answers[i] != nil {
			v := *answers[i]
			ans = &v
		}
		ok := ans != nil && *ans == qu.Correct
		if ok {
			r.Correct++
		} else {
			wrong = append(wrong, i+1)
		}
		r.Breakdown[i] = QuestionResult{
			Number:        i + 1,
			Prompt:        qu.Prompt,
			StudentAnswer: ans,
			CorrectAnswer: qu.Correct,
			IsCorrect:     ok,
			Explanation:   qu.Explanation,
			Options:       append([]string(nil), qu.Options...),
		}
	}
	r.Incorrect = r.Total - r.Correct
	r.ScorePercentage = Score(r.Correct, r.Total)
	r.Feedback = feedback(r.ScorePercentage, q.Subject, wrong)
	return r
}

// Score is 100*correct/total rounded to two decimals, or 0 for total 0.
func Score(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(10000*float64(correct)/float64(total)) / 100
}

// Feedback bands. Scores are compared against the lower bound of each band.
const (
	BandExcellent = 90.0
	BandSolid     = 80.0
	BandOnTrack   = 70.0
	BandProgress  = 50.0
)

var subjectTips = map[string]string{
	"Mathematics": "Practice more problems to improve your mathematical thinking.",
	"Physics":     "Focus on understanding the underlying principles.",
	"Biology":     "Try to connect concepts to real-world examples.",
	"Chemistry":   "Work through reactions step by step and keep track of units.",
	"History":     "Link each event to its causes and consequences.",
	"Geography":   "Use maps and diagrams to anchor what you learn.",
	"English":     "Read widely and practise writing to reinforce the rules.",
}

func feedback(score float64, subject string, wrong []int) []string {
	var out []string
	switch {
	case score >= BandExcellent:
		out = append(out, "Excellent work! You've mastered this topic.",
			"Consider exploring more advanced concepts in this subject.")
	case score >= BandSolid:
		out = append(out, "Great job! You have a solid understanding of this topic.",
			"Review the incorrect answers to strengthen your knowledge.")
	case score >= BandOnTrack:
		out = append(out, "Good effort! You're on the right track.",
			"Focus on the areas where you made mistakes.")
	case score >= BandProgress:
		out = append(out, "You're making progress, but there's room for improvement.",
			"Review the fundamental concepts before moving forward.")
	default:
		out = append(out, "This topic needs more review.",
			"Go back over the basics and ask the tutor for help.")
	}
	if len(wrong) == 0 {
		return out
	}
	if tip, ok := subjectTips[subject]; ok {
		out = append(out, tip)
	}
	for _, n := range wrong {
		out = append(out, fmt.Sprintf("Revisit question %d and read its explanation.", n))
	}
	return out
}
