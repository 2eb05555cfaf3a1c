package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatistics(t *testing.T) {
	q := &Quiz{
		Subject:    "Physics",
		Topic:      "Mechanics",
		Difficulty: Advanced,
		TimeLimit:  480,
		Questions: []Question{
			{Prompt: "Calculate the force on a 2 kg mass accelerating at 3 m/s²."},
			{Prompt: "Explain why objects fall at the same rate in a vacuum."},
			{Prompt: "Compare kinetic and potential energy."},
			{Prompt: "What is the SI unit of force?"},
			{Prompt: "Find the velocity after 2 s."},
		},
	}
	st := Statistics(q)
	assert.Equal(t, 5, st.TotalQuestions)
	assert.Equal(t, map[string]int{
		CategoryProblemSolving:   2,
		CategoryConceptual:       1,
		CategoryCriticalThinking: 1,
		CategoryRecall:           1,
	}, st.QuestionTypes)
	assert.Equal(t, 480, st.EstimatedTime)
	assert.Equal(t, Advanced, st.Difficulty)
}
