package session

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestExtractTopic(t *testing.T) {
	tests := []struct {
		subject, question, want string
	}{
		{"Mathematics", "How do I solve this ALGEBRA problem?", "Algebra"},
		{"Mathematics", "What is a prime number?", "General"},
		{"Physics", "Explain how waves carry energy", "Waves"},
		{"Chemistry", "Why are inorganic salts soluble?", "Inorganic"},
		{"Chemistry", "Name an organic compound", "Organic"},
		{"English", "What is a noun?", "General"},
		{"History", "Causes of World War I", "World"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractTopic(tt.subject, tt.question), tt.question)
	}
}

func TestNewQuizAttemptClamps(t *testing.T) {
	in := NewQuizAttempt("Physics", "", 130, -4, "advanced", t0)
	assert.Equal(t, 100.0, in.Score)
	assert.Equal(t, 0, in.TimeTaken)
	assert.Equal(t, GeneralTopic, in.Topic)

	in = NewQuizAttempt("Physics", "Waves", -1, 30, "beginner", t0)
	assert.Equal(t, 0.0, in.Score)
}

func TestZeroScoreAttemptKeepsScoreInJSON(t *testing.T) {
	raw, err := json.Marshal(NewQuizAttempt("Mathematics", "Algebra", 0, 0, "beginner", t0))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"score_percentage":0`)
	assert.Contains(t, string(raw), `"time_taken_seconds":0`)

	var back Interaction
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, KindQuizAttempt, back.Kind)
	assert.Zero(t, back.Score)
}

func TestProjectMatchesIncrementalCounters(t *testing.T) {
	s := newSession("s", t0)
	log := []Interaction{
		NewQuestion("Mathematics", "algebra?", t0),
		NewQuizAttempt("Mathematics", "Algebra", 80, 100, "beginner", t0.Add(time.Minute)),
		NewQuestion("Physics", "waves?", t0.Add(2*time.Minute)),
		NewQuizAttempt("Physics", "Waves", 45.5, 120, "advanced", t0.Add(3*time.Minute)),
	}
	for i, in := range log {
		s.append(in)
		assert.Equal(t, Project(s.Interactions), s.Counters, "after append %d", i)
	}
	assert.Equal(t, Counters{TotalQuestions: 2, TotalQuizzes: 2, CumulativeScore: 125.5}, s.Counters)
	assert.Equal(t, 62.75, s.Counters.AverageScore())
	assert.Equal(t, t0.Add(3*time.Minute), s.LastActivity)
	assert.Len(t, s.Questions(), 2)
	assert.Len(t, s.QuizAttempts(), 2)
}

func TestFromLog(t *testing.T) {
	log := []Interaction{
		NewQuestion("Biology", "cell walls", t0),
		NewQuizAttempt("Biology", "Cell Biology", 90, 60, "beginner", t0.Add(time.Hour)),
	}
	s := fromLog("s", log, t0.Add(24*time.Hour))
	assert.Equal(t, t0, s.CreatedAt)
	assert.Equal(t, t0.Add(time.Hour), s.LastActivity)
	assert.Equal(t, Project(log), s.Counters)

	empty := fromLog("s", nil, t0)
	assert.Equal(t, t0, empty.CreatedAt)
	assert.Zero(t, empty.Counters)
}

func TestCloneIsIndependent(t *testing.T) {
	s := newSession("s", t0)
	s.append(NewQuestion("Mathematics", "x", t0))
	c := s.Clone()
	c.Interactions[0].Subject = "Physics"
	c.Interactions = append(c.Interactions, NewQuestion("Physics", "y", t0))
	assert.Equal(t, "Mathematics", s.Interactions[0].Subject)
	assert.Len(t, s.Interactions, 1)
}
