package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       OpenRouterConfig
		wantErr   bool
		wantModel string
	}{
		{
			name:      "vendor-qualified model kept as is",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku"},
			wantModel: "anthropic/claude-3-haiku",
		},
		{
			name:      "friendly OpenAI name is not resolved",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "gpt-mini"},
			wantModel: "gpt-mini",
		},
		{
			name:      "custom base URL",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "openai/gpt-4o-mini", BaseURL: "https://router.example/v1"},
			wantModel: "openai/gpt-4o-mini",
		},
		{
			name:    "missing key",
			cfg:     OpenRouterConfig{Model: "openai/gpt-4o-mini"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.ModelID() != tt.wantModel {
				t.Errorf("ModelID() = %q, want %q", p.ModelID(), tt.wantModel)
			}
		})
	}
}

func TestLookupCost_StripsVendorPrefix(t *testing.T) {
	c := LookupCost("openai/gpt-4o-mini")
	if c == nil {
		t.Fatal("expected pricing for openai/gpt-4o-mini")
	}
	if got := c.Cost(1_000_000, 1_000_000); got != 0.75 {
		t.Fatalf("Cost = %v, want 0.75", got)
	}
	if LookupCost("acme/unknown-model") != nil {
		t.Fatal("expected nil pricing for unknown model")
	}
}
