package llm

import (
	"reflect"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	withKeys := DefaultConfig()
	withKeys.OpenAI.APIKey = "sk-openai"
	withKeys.Anthropic.APIKey = "sk-ant"

	tests := []struct {
		name    string
		chain   []string
		base    Config
		wantErr string
	}{
		{"empty chain", nil, withKeys, "no LLM provider"},
		{"keys present", []string{"openai", "anthropic"}, withKeys, ""},
		{"mock needs no key", []string{"mock"}, DefaultConfig(), ""},
		{"missing gemini key", []string{"openai", "gemini"}, withKeys, "SMARTLEARN_GEMINI_API_KEY"},
		{"unknown provider", []string{"openai", "cohere"}, withKeys, "unknown LLM provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.base
			cfg.Chain = tt.chain
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseChain(t *testing.T) {
	got := ParseChain(" OpenAI, ,anthropic ,gemini")
	want := []string{"openai", "anthropic", "gemini"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseChain = %v, want %v", got, want)
	}
	if ParseChain("") != nil {
		t.Fatal("empty input should yield a nil chain")
	}
}

func clearProviderEnv(t *testing.T) {
	for _, k := range []string{
		"SMARTLEARN_LLM_CHAIN",
		"SMARTLEARN_OPENAI_API_KEY", "SMARTLEARN_ANTHROPIC_API_KEY",
		"SMARTLEARN_GEMINI_API_KEY", "SMARTLEARN_OPENROUTER_API_KEY",
		"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_ExplicitChain(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("SMARTLEARN_LLM_CHAIN", "anthropic,openai")
	t.Setenv("SMARTLEARN_ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("SMARTLEARN_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if !reflect.DeepEqual(cfg.Chain, []string{"anthropic", "openai"}) {
		t.Fatalf("chain = %v", cfg.Chain)
	}
	if cfg.Anthropic.APIKey != "sk-ant" || cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("cfg = %+v", cfg)
	}
	// openai is listed but has no key.
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestConfigFromEnv_DiscoversVendorKeys(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg := ConfigFromEnv()
	if !reflect.DeepEqual(cfg.Chain, []string{"openai", "gemini"}) {
		t.Fatalf("chain = %v, want openai then gemini", cfg.Chain)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDiscoverConfig_NoKeys(t *testing.T) {
	clearProviderEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no provider to be discovered")
	}
}
