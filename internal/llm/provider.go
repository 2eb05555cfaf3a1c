package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured content from a language model.
// Quiz generation and tutoring both go through this interface, so any
// backend (or a chain of backends) can serve either purpose.
type Provider interface {
	// Generate runs a single completion. When req.Schema is set the
	// returned Content is JSON that has been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID identifies the model behind this provider.
	ModelID() string
}

// Request is a single completion request.
type Request struct {
	// System frames the model's role, e.g. a subject tutor.
	System string

	// Messages is the conversation. SmartLearn sends a single user turn.
	Messages []Message

	// Schema, when set, asks the provider for JSON matching it.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the sender of a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema used for structured output.
type Schema struct {
	// Name is kebab-case and doubles as the validation cache key,
	// e.g. "quiz-questions".
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model output for a Request.
type Response struct {
	// Content is validated JSON when a Schema was requested, otherwise the
	// raw model text.
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage is token accounting for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
