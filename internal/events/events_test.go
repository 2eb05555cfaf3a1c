package events

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/abhisek/smartlearn/internal/quiz"
	"github.com/abhisek/smartlearn/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func sampleReport() *runner.Report {
	return &runner.Report{
		AttemptID:        "att-1",
		QuizID:           "quiz-1",
		SessionID:        "sess-1",
		Subject:          "Physics",
		Topic:            "Waves",
		Difficulty:       quiz.Advanced,
		Total:            4,
		Correct:          3,
		ScorePercentage:  75,
		TimeTakenSeconds: 120,
		AutoSubmitted:    true,
	}
}

func TestFromReport(t *testing.T) {
	ev := FromReport(sampleReport(), t0)
	assert.Equal(t, QuizGraded{
		EventType:     RoutingQuizGraded,
		AttemptID:     "att-1",
		QuizID:        "quiz-1",
		SessionID:     "sess-1",
		Subject:       "Physics",
		Topic:         "Waves",
		Difficulty:    "advanced",
		Total:         4,
		Correct:       3,
		Score:         75,
		TimeTaken:     120,
		AutoSubmitted: true,
		OccurredAt:    t0,
	}, ev)
}

func TestHookPublishes(t *testing.T) {
	pub := &MemoryPublisher{}
	hook := Hook(pub, func() time.Time { return t0 })

	require.NoError(t, hook(context.Background(), sampleReport()))
	evs := pub.Events()
	require.Len(t, evs, 1)
	assert.Equal(t, "att-1", evs[0].AttemptID)

	assert.NoError(t, Hook(NoopPublisher{}, time.Now)(context.Background(), sampleReport()))
}

func TestAMQPPublisher(t *testing.T) {
	url := os.Getenv("SMARTLEARN_TEST_AMQP_URL")
	if url == "" {
		t.Skip("SMARTLEARN_TEST_AMQP_URL not set")
	}
	pub, err := DialAMQP(url, "smartlearn.test", nil)
	require.NoError(t, err)
	defer pub.Close()

	require.NoError(t, pub.PublishQuizGraded(context.Background(), FromReport(sampleReport(), t0)))
}

func TestDialAMQPBadURL(t *testing.T) {
	_, err := DialAMQP("not-a-url", "", nil)
	assert.Error(t, err)
}
