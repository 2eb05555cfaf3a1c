// Package api exposes the engine over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/abhisek/smartlearn/internal/engine"
	"github.com/abhisek/smartlearn/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds the HTTP-facing settings.
type Config struct {
	AllowedOrigins []string
	RequestTimeout time.Duration

	// Gatherer serves /metrics when set.
	Gatherer prometheus.Gatherer
}

// Server holds the handlers' dependencies.
type Server struct {
	engine   *engine.Engine
	sessions *Sessions
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

func NewServer(e *engine.Engine, sessions *Sessions, m *metrics.Metrics, opts ...Option) *Server {
	s := &Server{
		engine:   e,
		sessions: sessions,
		metrics:  m,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Handler builds the router.
func (s *Server) Handler(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, s.logRequests, middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", HeaderSessionID},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/health", s.health)
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/quiz/available", s.availableQuizzes)

		r.Group(func(r chi.Router) {
			r.Use(s.sessions.Middleware)

			r.Post("/ask", s.ask)

			r.Route("/quiz", func(r chi.Router) {
				r.Post("/generate", s.generateQuiz)
				r.Post("/result", s.recordResult)
				r.Get("/history", s.quizHistory)
				r.Get("/{quizID}", s.getQuiz)
				r.Post("/{quizID}/start", s.startQuiz)
			})

			r.Route("/attempts", func(r chi.Router) {
				r.Get("/", s.activeAttempts)
				r.Get("/{attemptID}", s.getAttempt)
				r.Put("/{attemptID}/answers/{index}", s.setAnswer)
				r.Delete("/{attemptID}/answers/{index}", s.clearAnswer)
				r.Post("/{attemptID}/submit", s.submitAttempt)
			})

			r.Route("/learning", func(r chi.Router) {
				r.Get("/dashboard", s.dashboard)
				r.Get("/history", s.history)
				r.Get("/recommendations", s.recommendations)
			})

			r.Post("/session/reset", s.resetSession)
		})
	})
	return r
}

// logRequests logs each request and records it in the HTTP metrics under
// its route pattern.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := s.now().Sub(start)
		s.metrics.HTTPRequest(route, r.Method, status, d)
		s.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Duration("duration", d),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "healthy",
		"active_sessions": s.engine.ActiveSessions(),
		"timestamp":       s.now().UTC(),
	})
}
