package tutor

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/smartlearn/internal/fallback"
)

// FallbackProvider names the canned responder in Response.Provider.
const FallbackProvider = "fallback"

// Service chains responders and never fails.
type Service struct {
	responders []Responder
	logger     *slog.Logger
	now        func() time.Time
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService tries responders in the given order. With none, every
// answer is canned.
func NewService(responders []Responder, opts ...Option) *Service {
	s := &Service{responders: responders, logger: slog.Default(), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Answer returns the first responder's answer that succeeds, else the
// canned answer for the subject.
func (s *Service) Answer(ctx context.Context, subject, question string) (*Response, error) {
	for i, r := range s.responders {
		if ctx.Err() != nil {
			break
		}
		resp, err := r.Answer(ctx, subject, question)
		if err == nil {
			return resp, nil
		}
		s.logger.Warn("tutor responder failed", "index", i, "subject", subject, "err", err)
	}
	return s.canned(subject, question), nil
}

func (s *Service) canned(subject, question string) *Response {
	p := fallback.PracticeFor(subject)
	return &Response{
		Answer:       fallback.Answer(subject, question),
		QuizQuestion: p.Question,
		QuizOptions:  p.Options,
		QuizAnswer:   p.Answer,
		Subject:      subject,
		Provider:     FallbackProvider,
		Fallback:     true,
		Timestamp:    s.now(),
	}
}
