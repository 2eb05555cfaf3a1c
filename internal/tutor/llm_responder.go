package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/abhisek/smartlearn/internal/fallback"
	"github.com/abhisek/smartlearn/internal/llm"
)

// LLMResponder asks an LLM provider for a schema-constrained answer.
type LLMResponder struct {
	provider llm.Provider
	cfg      Config
	now      func() time.Time
}

func NewLLMResponder(provider llm.Provider, cfg Config) *LLMResponder {
	return &LLMResponder{provider: provider, cfg: cfg, now: time.Now}
}

type answerOutput struct {
	Answer   string `json:"answer"`
	Practice struct {
		Question string   `json:"question"`
		Options  []string `json:"options"`
		Correct  string   `json:"correct_answer"`
	} `json:"practice_question"`
}

func (r *LLMResponder) Answer(ctx context.Context, subject, question string) (*Response, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeTutor)

	resp, err := r.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(subject, question)}},
		Schema:      AnswerSchema,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("tutor answer: %w", err)
	}

	var out answerOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse tutor response: %w", err)
	}
	if strings.TrimSpace(out.Answer) == "" {
		return nil, &llm.ErrInvalidResponse{Err: errors.New("empty tutor answer")}
	}

	res := &Response{
		Answer:       normalizeAnswer(subject, out.Answer),
		QuizQuestion: out.Practice.Question,
		QuizOptions:  out.Practice.Options,
		QuizAnswer:   out.Practice.Correct,
		Subject:      subject,
		Provider:     resp.Model,
		Timestamp:    r.now(),
	}
	// A broken practice question is swapped for the canned one rather than
	// throwing the explanation away.
	if !validPractice(out.Practice.Question, out.Practice.Options, out.Practice.Correct) {
		p := fallback.PracticeFor(subject)
		res.QuizQuestion, res.QuizOptions, res.QuizAnswer = p.Question, p.Options, p.Answer
	}
	return res, nil
}

func validPractice(question string, options []string, correct string) bool {
	if strings.TrimSpace(question) == "" || len(options) < 2 {
		return false
	}
	seen := make(map[string]bool, len(options))
	for _, o := range options {
		if o == "" || seen[o] {
			return false
		}
		seen[o] = true
	}
	return slices.Contains(options, correct)
}
