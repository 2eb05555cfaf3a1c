package runner

import (
	"testing"

	"github.com/abhisek/smartlearn/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answers(vals ...string) []*string {
	out := make([]*string, len(vals))
	for i, v := range vals {
		if v != "" {
			s := v
			out[i] = &s
		}
	}
	return out
}

func TestGrade(t *testing.T) {
	q := sampleQuiz(60)

	tests := []struct {
		name     string
		answers  []*string
		correct  int
		score    float64
		headline string
	}{
		{"all correct", answers("4", "2", "9"), 3, 100, "Excellent work! You've mastered this topic."},
		{"two of three", answers("4", "2", "6"), 2, 66.67, "You're making progress, but there's room for improvement."},
		{"one of three", answers("4", "", ""), 1, 33.33, "This topic needs more review."},
		{"unanswered", answers("", "", ""), 0, 0, "This topic needs more review."},
		{"short answer slice", nil, 0, 0, "This topic needs more review."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := Grade(q, tt.answers, 30)
			assert.Equal(t, tt.correct, rep.Correct)
			assert.Equal(t, 3-tt.correct, rep.Incorrect)
			assert.Equal(t, tt.score, rep.ScorePercentage)
			require.NotEmpty(t, rep.Feedback)
			assert.Equal(t, tt.headline, rep.Feedback[0])
			assert.Len(t, rep.Breakdown, 3)
		})
	}
}

func TestGradeIsDeterministic(t *testing.T) {
	q := sampleQuiz(60)
	a := answers("4", "1", "")
	assert.Equal(t, Grade(q, a, 12), Grade(q, a, 12))
}

func TestGradeEmptyQuiz(t *testing.T) {
	rep := Grade(&quiz.Quiz{Subject: "Physics"}, nil, 0)
	assert.Zero(t, rep.Total)
	assert.Zero(t, rep.ScorePercentage)
	assert.Equal(t, "This topic needs more review.", rep.Feedback[0])
	assert.Len(t, rep.Feedback, 2)
}

func TestGradeFeedbackCallouts(t *testing.T) {
	rep := Grade(sampleQuiz(60), answers("4", "3", ""), 10)
	assert.Equal(t, []string{
		"This topic needs more review.",
		"Go back over the basics and ask the tutor for help.",
		"Practice more problems to improve your mathematical thinking.",
		"Revisit question 2 and read its explanation.",
		"Revisit question 3 and read its explanation.",
	}, rep.Feedback)

	perfect := Grade(sampleQuiz(60), answers("4", "2", "9"), 10)
	assert.Len(t, perfect.Feedback, 2)
}

func TestScoreBands(t *testing.T) {
	tests := []struct {
		correct, total int
		want           float64
	}{
		{0, 0, 0},
		{9, 10, 90},
		{4, 5, 80},
		{7, 10, 70},
		{1, 2, 50},
		{2, 3, 66.67},
		{1, 7, 14.29},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Score(tt.correct, tt.total))
	}
}

func TestStateTransitions(t *testing.T) {
	assert.True(t, canTransition(Created, InProgress))
	assert.True(t, canTransition(InProgress, Submitted))
	assert.True(t, canTransition(Submitted, Graded))
	assert.False(t, canTransition(Graded, Created))
	assert.False(t, canTransition(Created, Submitted))
	assert.False(t, canTransition(InProgress, InProgress))
	assert.Equal(t, "in_progress", InProgress.String())
}
