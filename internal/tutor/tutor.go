// Package tutor answers student questions. The Service tries its
// responders in order and falls back to canned content, so a caller
// always gets an answer.
package tutor

import (
	"context"
	"time"
)

// Response is what the student sees for one question.
type Response struct {
	Answer       string    `json:"answer"`
	QuizQuestion string    `json:"quiz_question"`
	QuizOptions  []string  `json:"quiz_options"`
	QuizAnswer   string    `json:"quiz_answer"`
	LearningTip  string    `json:"learning_tip,omitempty"`
	Subject      string    `json:"subject"`
	Provider     string    `json:"ai_provider"`
	Fallback     bool      `json:"fallback"`
	Timestamp    time.Time `json:"timestamp"`
}

// Responder produces an answer for a subject question.
type Responder interface {
	Answer(ctx context.Context, subject, question string) (*Response, error)
}

// Config tunes LLM tutoring requests.
type Config struct {
	MaxTokens   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{MaxTokens: 1500, Temperature: 0.7}
}
