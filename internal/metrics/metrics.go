// Package metrics holds the Prometheus collectors for the engine and the
// HTTP server. A nil *Metrics is valid and records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	quizzesBuilt   *prometheus.CounterVec
	quizzesGraded  *prometheus.CounterVec
	quizScore      *prometheus.HistogramVec
	questionsAsked *prometheus.CounterVec
	tutorAnswers   *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// New registers the collectors with reg. activeSessions, when set, is
// sampled for the active sessions gauge.
func New(reg prometheus.Registerer, activeSessions func() int) *Metrics {
	f := promauto.With(reg)
	m := &Metrics{
		quizzesBuilt: f.NewCounterVec(prometheus.CounterOpts{
			Name: "smartlearn_quizzes_built_total",
			Help: "Quizzes built, by question source",
		}, []string{"source"}),
		quizzesGraded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "smartlearn_quiz_attempts_graded_total",
			Help: "Graded quiz attempts, by subject and whether the deadline submitted them",
		}, []string{"subject", "auto_submitted"}),
		quizScore: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "smartlearn_quiz_score_percentage",
			Help:    "Score of graded quiz attempts",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}, []string{"subject"}),
		questionsAsked: f.NewCounterVec(prometheus.CounterOpts{
			Name: "smartlearn_questions_asked_total",
			Help: "Tutor questions recorded, by subject",
		}, []string{"subject"}),
		tutorAnswers: f.NewCounterVec(prometheus.CounterOpts{
			Name: "smartlearn_tutor_answers_total",
			Help: "Tutor answers, by provider",
		}, []string{"provider"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "smartlearn_http_requests_total",
			Help: "HTTP requests, by route, method and status",
		}, []string{"route", "method", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "smartlearn_http_request_duration_seconds",
			Help:    "Time spent serving HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
	if activeSessions != nil {
		f.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "smartlearn_active_sessions",
			Help: "Sessions held in memory",
		}, func() float64 { return float64(activeSessions()) })
	}
	return m
}

func (m *Metrics) QuizBuilt(source string) {
	if m == nil {
		return
	}
	m.quizzesBuilt.WithLabelValues(source).Inc()
}

func (m *Metrics) QuizGraded(subject string, score float64, auto bool) {
	if m == nil {
		return
	}
	m.quizzesGraded.WithLabelValues(subject, strconv.FormatBool(auto)).Inc()
	m.quizScore.WithLabelValues(subject).Observe(score)
}

func (m *Metrics) QuestionAsked(subject string) {
	if m == nil {
		return
	}
	m.questionsAsked.WithLabelValues(subject).Inc()
}

func (m *Metrics) TutorAnswered(provider string) {
	if m == nil {
		return
	}
	m.tutorAnswers.WithLabelValues(provider).Inc()
}

func (m *Metrics) HTTPRequest(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(d.Seconds())
}
