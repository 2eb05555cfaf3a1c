package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func openAIStub(t *testing.T, status int, body map[string]any) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)

	conf := openai.DefaultConfig("test-key")
	conf.BaseURL = srv.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(conf), model: "gpt-4o-mini"}
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func tutorRequest() Request {
	return Request{
		System:    "You are a patient tutor.",
		Messages:  []Message{{Role: RoleUser, Content: "Explain photosynthesis."}},
		MaxTokens: 256,
	}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	p := openAIStub(t, http.StatusOK, chatCompletion(`{"answer":"Plants convert light to sugar."}`, "stop"))

	resp, err := p.Generate(context.Background(), tutorRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 || resp.Usage.TotalTokens != 65 {
		t.Fatalf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" || resp.Model != "gpt-4o-mini" {
		t.Fatalf("stop=%q model=%q", resp.StopReason, resp.Model)
	}
}

func TestOpenAIProvider_Truncated(t *testing.T) {
	p := openAIStub(t, http.StatusOK, chatCompletion(`{"answer":"Plants conv`, "length"))

	_, err := p.Generate(context.Background(), tutorRequest())
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_SchemaViolation(t *testing.T) {
	p := openAIStub(t, http.StatusOK, chatCompletion(`{"reply":"wrong field"}`, "stop"))

	req := tutorRequest()
	req.Schema = &Schema{Name: "tutor-answer", Definition: map[string]any{
		"type":       "object",
		"properties": map[string]any{"answer": map[string]any{"type": "string"}},
		"required":   []any{"answer"},
	}}
	_, err := p.Generate(context.Background(), req)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_HTTPErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"429 is a rate limit", http.StatusTooManyRequests, func(err error) bool {
			var rl *ErrRateLimit
			return errors.As(err, &rl)
		}},
		{"500 is unavailable", http.StatusInternalServerError, func(err error) bool {
			var u *ErrProviderUnavailable
			return errors.As(err, &u)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := openAIStub(t, tt.status, map[string]any{
				"error": map[string]any{"type": "server_error", "message": "nope"},
			})
			_, err := p.Generate(context.Background(), tutorRequest())
			if err == nil || !tt.check(err) {
				t.Fatalf("unexpected error %T (%v)", err, err)
			}
			if !IsUnavailable(err) {
				t.Fatalf("IsUnavailable(%v) = false", err)
			}
		})
	}
}

func TestOpenAIMessages_PrependsSystem(t *testing.T) {
	msgs := openaiMessages(tutorRequest())
	if len(msgs) != 2 || msgs[0].Role != openai.ChatMessageRoleSystem {
		t.Fatalf("messages = %+v", msgs)
	}
}

func TestNewOpenAIProvider_ResolvesFriendlyName(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-mini"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-4.1-mini" {
		t.Fatalf("ModelID() = %q", p.ModelID())
	}
	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"}); err == nil {
		t.Fatal("expected error for missing key")
	}
}
