package engine

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/smartlearn/internal/events"
	"github.com/abhisek/smartlearn/internal/fallback"
	"github.com/abhisek/smartlearn/internal/llm"
	"github.com/abhisek/smartlearn/internal/metrics"
	"github.com/abhisek/smartlearn/internal/quiz"
	"github.com/abhisek/smartlearn/internal/runner"
	"github.com/abhisek/smartlearn/internal/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

const algebraDraft = `{
	"title": "Algebra Warm-up",
	"questions": [
		{"question": "Solve x + 2 = 5.", "options": ["1", "2", "3", "4"], "correct_option": "3", "explanation": "Subtract 2 from both sides."},
		{"question": "What is 2(x + 1) when x = 2?", "options": ["4", "5", "6", "8"], "correct_option": "6", "explanation": "2 times 3 is 6."},
		{"question": "Which expression equals 3x + 3x?", "options": ["6x", "9x", "3x^2", "6x^2"], "correct_option": "6x", "explanation": "Add like terms."}
	]
}`

type fixture struct {
	engine  *Engine
	clock   *fakeClock
	mock    *llm.MockProvider
	events  *events.MemoryPublisher
	runner  *runner.Runner
	session *session.Store
}

func newFixture(t *testing.T, responses ...llm.MockResponse) *fixture {
	t.Helper()
	clk := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	mock := llm.NewMockProvider(responses...)
	b := quiz.NewBuilder(fallback.Default(),
		quiz.WithSources(quiz.NewLLMSource(mock, quiz.DefaultLLMConfig())),
		quiz.WithClock(clk.Now))
	r := runner.New(runner.WithClock(clk.Now))
	s := session.NewStore(session.WithClock(clk.Now))
	pub := &events.MemoryPublisher{}
	e := New(b, r, s,
		WithClock(clk.Now),
		WithPublisher(pub),
		WithMetrics(metrics.New(prometheus.NewRegistry(), s.Len)))
	return &fixture{engine: e, clock: clk, mock: mock, events: pub, runner: r, session: s}
}

func algebraParams() quiz.Params {
	return quiz.Params{Subject: "Mathematics", Topic: "Algebra", Difficulty: "beginner", Type: "concept_check", Count: 3}
}

func TestScenarioAllCorrect(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, llm.MockResponse{Content: json.RawMessage(algebraDraft)})
	e := f.engine

	_, err := e.RecordQuizAttempt(ctx, "s1", "Mathematics", "Geometry", 50, 200, "beginner")
	require.NoError(t, err)
	before, err := e.Dashboard(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 1, before.Progress.TotalQuizzes)

	q, err := e.Generate(ctx, "s1", algebraParams())
	require.NoError(t, err)
	assert.Equal(t, quiz.OriginGenerated, q.Source)
	assert.Equal(t, "Algebra Warm-up", q.Title)
	require.Len(t, q.Questions, 3)

	attemptID, err := e.Start(ctx, "s1", q.ID)
	require.NoError(t, err)
	for i, qu := range q.Questions {
		_, err := e.SetAnswer(ctx, attemptID, i, qu.Correct)
		require.NoError(t, err)
	}
	f.clock.Advance(45 * time.Second)

	rep, err := e.Submit(ctx, attemptID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, rep.ScorePercentage)
	assert.Equal(t, 3, rep.Correct)
	assert.Equal(t, 45, rep.TimeTakenSeconds)

	after, err := e.Dashboard(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, before.Progress.TotalQuizzes+1, after.Progress.TotalQuizzes)
	assert.Equal(t, 75.0, after.Progress.AverageQuizScore)
	assert.Equal(t, 1, after.Progress.QuizPerformance.QuizzesGenerated)
	require.NotEmpty(t, after.QuizHistory)
	assert.Equal(t, q.ID, after.QuizHistory[0].QuizID)
	assert.Equal(t, "Algebra", after.QuizHistory[0].Topic)

	require.Len(t, f.events.Events(), 1)
	assert.Equal(t, attemptID, f.events.Events()[0].AttemptID)
}

func TestScenarioWrongAndUnanswered(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, llm.MockResponse{Content: json.RawMessage(algebraDraft)})
	e := f.engine

	q, err := e.Generate(ctx, "s1", algebraParams())
	require.NoError(t, err)
	attemptID, err := e.Start(ctx, "s1", q.ID)
	require.NoError(t, err)

	var wrong string
	for _, o := range q.Questions[0].Options {
		if o != q.Questions[0].Correct {
			wrong = o
			break
		}
	}
	_, err = e.SetAnswer(ctx, attemptID, 0, wrong)
	require.NoError(t, err)

	rep, err := e.Submit(ctx, attemptID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep.ScorePercentage)
	require.Len(t, rep.Breakdown, 3)
	for _, qr := range rep.Breakdown {
		assert.False(t, qr.IsCorrect)
	}
	assert.Equal(t, wrong, *rep.Breakdown[0].StudentAnswer)
	assert.Nil(t, rep.Breakdown[1].StudentAnswer)
	assert.Nil(t, rep.Breakdown[2].StudentAnswer)
}

func TestScenarioTimeLimitAutoSubmit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := f.engine

	f.runner.Register(&quiz.Quiz{
		ID:         "timed",
		Subject:    "Physics",
		Topic:      "Waves",
		Difficulty: quiz.Intermediate,
		TimeLimit:  60,
		Questions: []quiz.Question{
			{Prompt: "Unit of frequency?", Options: []string{"Hz", "N", "J", "W"}, Correct: "Hz"},
			{Prompt: "Waves transfer?", Options: []string{"Matter", "Energy"}, Correct: "Energy"},
			{Prompt: "Sound is a?", Options: []string{"Longitudinal wave", "Transverse wave"}, Correct: "Longitudinal wave"},
		},
	})
	attemptID, err := e.Start(ctx, "s1", "timed")
	require.NoError(t, err)
	_, err = e.SetAnswer(ctx, attemptID, 0, "Hz")
	require.NoError(t, err)

	f.clock.Advance(61 * time.Second)
	snap, err := e.Attempt(ctx, attemptID)
	require.NoError(t, err)
	assert.Equal(t, runner.Graded, snap.State)
	assert.True(t, snap.AutoSubmitted)
	require.NotNil(t, snap.Report)
	assert.Equal(t, 60, snap.Report.TimeTakenSeconds)
	assert.Equal(t, 1, snap.Report.Correct)

	hist, err := e.QuizHistory(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, 60, hist[0].TimeTaken)
	assert.Equal(t, 33.33, hist[0].Score)
}

func TestDoubleSubmitAppendsOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, llm.MockResponse{Content: json.RawMessage(algebraDraft)})
	e := f.engine

	q, err := e.Generate(ctx, "s1", algebraParams())
	require.NoError(t, err)
	attemptID, err := e.Start(ctx, "s1", q.ID)
	require.NoError(t, err)
	_, err = e.SetAnswer(ctx, attemptID, 0, q.Questions[0].Correct)
	require.NoError(t, err)

	first, err := e.Submit(ctx, attemptID)
	require.NoError(t, err)
	_, err = e.Submit(ctx, attemptID)
	assert.ErrorIs(t, err, runner.ErrInvalidState)

	snap, err := e.Attempt(ctx, attemptID)
	require.NoError(t, err)
	assert.Equal(t, first, snap.Report)

	s, err := f.session.Snapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Counters.TotalQuizzes)
	assert.Len(t, f.events.Events(), 1)

	_, err = e.SetAnswer(ctx, attemptID, 1, q.Questions[1].Correct)
	assert.ErrorIs(t, err, runner.ErrInvalidState)
}

func TestGenerateFallsBackWhenGeneratorFails(t *testing.T) {
	f := newFixture(t, llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	q, err := f.engine.Generate(context.Background(), "s1", algebraParams())
	require.NoError(t, err)
	assert.Equal(t, quiz.OriginFallback, q.Source)
	assert.Len(t, q.Questions, 3)
	assert.Equal(t, 570, q.TimeLimit)
}

func TestGenerateValidation(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.Generate(context.Background(), "s1", quiz.Params{Subject: " ", Topic: "Algebra"})
	var verr *quiz.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "subject", verr.Field)
	assert.Zero(t, f.mock.CallCount())
}

func TestStartUnknownQuiz(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.Start(context.Background(), "s1", "nope")
	assert.ErrorIs(t, err, runner.ErrNotFound)
}

func TestAskRecordsQuestion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res, err := f.engine.Ask(ctx, "s1", "Mathematics", "How does algebra work?")
	require.NoError(t, err)
	assert.Equal(t, "s1", res.SessionID)
	assert.True(t, res.Fallback)
	assert.Contains(t, res.LearningTip, "Great start!")

	dash, err := f.engine.Dashboard(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, dash.Progress.TotalQuestions)
	require.Len(t, dash.RecentActivity, 1)
	assert.Equal(t, "Algebra", dash.RecentActivity[0].Topic)
	assert.Equal(t, "Mathematics", dash.Progress.MostActiveSubject)
}

func TestRecordQuizAttemptClampsScore(t *testing.T) {
	f := newFixture(t)
	s, err := f.engine.RecordQuizAttempt(context.Background(), "s1", "Physics", "Optics", 150, 30, "advanced")
	require.NoError(t, err)
	assert.Equal(t, 100.0, s.Counters.CumulativeScore)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, llm.MockResponse{Content: json.RawMessage(algebraDraft)})
	e := f.engine

	q, err := e.Generate(ctx, "s1", algebraParams())
	require.NoError(t, err)
	attemptID, err := e.Start(ctx, "s1", q.ID)
	require.NoError(t, err)
	_, err = e.RecordQuestion(ctx, "s1", "Mathematics", "algebra")
	require.NoError(t, err)

	require.NoError(t, e.Reset(ctx, "s1"))
	_, err = e.Attempt(ctx, attemptID)
	assert.ErrorIs(t, err, runner.ErrNotFound)

	dash, err := e.Dashboard(ctx, "s1")
	require.NoError(t, err)
	assert.Zero(t, dash.Progress.TotalQuestions)
	assert.Zero(t, dash.Progress.QuizPerformance.QuizzesGenerated)
	assert.Empty(t, dash.RecentActivity)

	require.NoError(t, e.Reset(ctx, "never-used"))
	assert.Equal(t, 2, e.ActiveSessions())
}

func TestResetDropsExpiredAttempts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, llm.MockResponse{Content: json.RawMessage(algebraDraft)})
	e := f.engine

	q, err := e.Generate(ctx, "s1", algebraParams())
	require.NoError(t, err)
	attemptID, err := e.Start(ctx, "s1", q.ID)
	require.NoError(t, err)
	_, err = e.SetAnswer(ctx, attemptID, 0, q.Questions[0].Correct)
	require.NoError(t, err)
	f.clock.Advance(time.Duration(q.TimeLimit+10) * time.Second)

	require.NoError(t, e.Reset(ctx, "s1"))
	assert.Empty(t, e.ActiveAttempts(ctx, "s1"))
	_, err = e.Submit(ctx, attemptID)
	assert.ErrorIs(t, err, runner.ErrNotFound)

	hist, err := e.QuizHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, hist)
	assert.Empty(t, f.events.Events())
}

func TestSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := f.engine

	var wg sync.WaitGroup
	for _, id := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 25 {
				_, err := e.RecordQuestion(ctx, id, "Physics", "waves")
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	for _, id := range []string{"a", "b", "c", "d"} {
		p, err := e.Progress(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 25, p.TotalQuestions)
	}
}

func TestCatalogAndStatistics(t *testing.T) {
	f := newFixture(t, llm.MockResponse{Content: json.RawMessage(algebraDraft)})
	cat := f.engine.Catalog()
	assert.Equal(t, []string{"beginner", "intermediate", "advanced"}, cat.Difficulties)
	assert.Contains(t, cat.QuizTypes, "real_world_application")

	q, err := f.engine.Generate(context.Background(), "s1", algebraParams())
	require.NoError(t, err)
	st, err := f.engine.Statistics(q.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, st.TotalQuestions)

	_, err = f.engine.Statistics("missing")
	assert.ErrorIs(t, err, runner.ErrNotFound)
}
