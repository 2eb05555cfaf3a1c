package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/smartlearn/internal/llm"
)

// LLMConfig tunes LLMSource requests.
type LLMConfig struct {
	// MaxTokensPerQuestion is scaled by the requested count.
	MaxTokensPerQuestion int
	Temperature          float64
}

func DefaultLLMConfig() LLMConfig {
	return LLMConfig{MaxTokensPerQuestion: 300, Temperature: 0.7}
}

// LLMSource generates questions with an LLM provider, typically an
// llm.Chain.
type LLMSource struct {
	provider llm.Provider
	config   LLMConfig
}

func NewLLMSource(provider llm.Provider, cfg LLMConfig) *LLMSource {
	return &LLMSource{provider: provider, config: cfg}
}

func (s *LLMSource) Name() string {
	return "llm:" + s.provider.ModelID()
}

type draftOutput struct {
	Title     string      `json:"title"`
	Questions []Candidate `json:"questions"`
}

func (s *LLMSource) Generate(ctx context.Context, p Params) (*Draft, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuizGen)

	req := llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(p)}},
		Schema:      QuestionsSchema,
		MaxTokens:   s.config.MaxTokensPerQuestion*p.Count + 200,
		Temperature: s.config.Temperature,
	}
	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var out draftOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return &Draft{Title: out.Title, Candidates: out.Questions}, nil
}
