package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/smartlearn/internal/store"
)

// recordingRepo captures appended events. Read methods are not used here.
type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, ev store.LLMRequestEventData) error {
	r.events = append(r.events, ev)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"answer":"42"}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	p := WithLogging(mock, "openai", repo)

	ctx := WithSession(WithPurpose(context.Background(), PurposeTutor), "sess-9")
	req := Request{
		System:   "Be brief.",
		Messages: []Message{{Role: RoleUser, Content: "Meaning of life?"}},
		Schema:   &Schema{Name: "tutor-answer", Definition: map[string]any{"type": "object"}},
	}
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "openai" || ev.Purpose != PurposeTutor || ev.SessionID != "sess-9" {
		t.Fatalf("event tags = %+v", ev)
	}
	if !ev.Success || ev.InputTokens != 12 || ev.OutputTokens != 7 || ev.ResponseBody != `{"answer":"42"}` {
		t.Fatalf("event = %+v", ev)
	}
	for _, want := range []string{"[system]\nBe brief.", "[user]\nMeaning of life?", "[schema: tutor-answer]"} {
		if !strings.Contains(ev.RequestBody, want) {
			t.Errorf("request body missing %q:\n%s", want, ev.RequestBody)
		}
	}
}

func TestLogging_RecordsFailureAndKeepsError(t *testing.T) {
	repo := &recordingRepo{}
	p := WithLogging(NewMockProvider(MockResponse{Err: &ErrRateLimit{}}), "anthropic", repo)

	_, err := p.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}
	if len(repo.events) != 1 || repo.events[0].Success || repo.events[0].ErrorMessage == "" {
		t.Fatalf("events = %+v", repo.events)
	}
	if repo.events[0].Model != "mock" {
		t.Fatalf("model = %q, want the inner model ID", repo.events[0].Model)
	}
}

func TestLogging_RepoFailureDoesNotFailCall(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), "gemini", repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("ModelID() = %q", p.ModelID())
	}
}
