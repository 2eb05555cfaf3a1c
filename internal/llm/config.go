package llm

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted in Config.Chain.
const (
	NameOpenAI     = "openai"
	NameAnthropic  = "anthropic"
	NameGemini     = "gemini"
	NameOpenRouter = "openrouter"
	NameMock       = "mock"
)

// Config describes the provider chain and per-backend settings.
type Config struct {
	// Chain lists providers in the order they are tried. The first entry
	// that answers wins; later entries are fallbacks.
	Chain []string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call on one chain member,
	// retries included.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig controls WithRetry backoff.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns defaults with an empty chain.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "openai/gpt-4o-mini"},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv reads SMARTLEARN_* variables over DefaultConfig.
// SMARTLEARN_LLM_CHAIN is a comma-separated provider list; when it is unset
// the chain is discovered from whichever API keys are present.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	vars := []struct {
		key string
		dst *string
	}{
		{"SMARTLEARN_OPENAI_API_KEY", &cfg.OpenAI.APIKey},
		{"SMARTLEARN_OPENAI_MODEL", &cfg.OpenAI.Model},
		{"SMARTLEARN_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL},
		{"SMARTLEARN_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey},
		{"SMARTLEARN_ANTHROPIC_MODEL", &cfg.Anthropic.Model},
		{"SMARTLEARN_GEMINI_API_KEY", &cfg.Gemini.APIKey},
		{"SMARTLEARN_GEMINI_MODEL", &cfg.Gemini.Model},
		{"SMARTLEARN_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey},
		{"SMARTLEARN_OPENROUTER_MODEL", &cfg.OpenRouter.Model},
		{"SMARTLEARN_OPENROUTER_BASE_URL", &cfg.OpenRouter.BaseURL},
	}
	for _, v := range vars {
		if s := os.Getenv(v.key); s != "" {
			*v.dst = s
		}
	}

	if chain := os.Getenv("SMARTLEARN_LLM_CHAIN"); chain != "" {
		cfg.Chain = ParseChain(chain)
		return cfg
	}

	discovered, _ := DiscoverConfig()
	mergeKeys(&cfg, discovered)
	for _, name := range []string{NameOpenAI, NameAnthropic, NameGemini, NameOpenRouter} {
		if cfg.apiKey(name) != "" {
			cfg.Chain = append(cfg.Chain, name)
		}
	}
	return cfg
}

// DiscoverConfig probes the vendors' standard key variables (OPENAI_API_KEY
// and friends). OpenAI is tried first, then Anthropic, Gemini and
// OpenRouter. It reports false when no key is found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	probes := []struct {
		env  string
		name string
		dst  *string
	}{
		{"OPENAI_API_KEY", NameOpenAI, &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", NameAnthropic, &cfg.Anthropic.APIKey},
		{"GEMINI_API_KEY", NameGemini, &cfg.Gemini.APIKey},
		{"OPENROUTER_API_KEY", NameOpenRouter, &cfg.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			*p.dst = k
			cfg.Chain = append(cfg.Chain, p.name)
		}
	}
	return cfg, len(cfg.Chain) > 0
}

// ParseChain splits a comma-separated provider list, dropping blanks.
func ParseChain(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks every chain member is known and has its key set.
func (c Config) Validate() error {
	if len(c.Chain) == 0 {
		return errors.New("no LLM provider configured (set SMARTLEARN_LLM_CHAIN or a provider API key)")
	}
	for _, name := range c.Chain {
		switch name {
		case NameMock:
		case NameOpenAI, NameAnthropic, NameGemini, NameOpenRouter:
			if c.apiKey(name) == "" {
				return fmt.Errorf("SMARTLEARN_%s_API_KEY is required for the %s provider", strings.ToUpper(name), name)
			}
		default:
			return fmt.Errorf("unknown LLM provider: %q", name)
		}
	}
	return nil
}

func (c Config) apiKey(name string) string {
	switch name {
	case NameOpenAI:
		return c.OpenAI.APIKey
	case NameAnthropic:
		return c.Anthropic.APIKey
	case NameGemini:
		return c.Gemini.APIKey
	case NameOpenRouter:
		return c.OpenRouter.APIKey
	}
	return ""
}

// mergeKeys fills keys missing from dst with those found in src.
func mergeKeys(dst *Config, src Config) {
	if dst.OpenAI.APIKey == "" {
		dst.OpenAI.APIKey = src.OpenAI.APIKey
	}
	if dst.Anthropic.APIKey == "" {
		dst.Anthropic.APIKey = src.Anthropic.APIKey
	}
	if dst.Gemini.APIKey == "" {
		dst.Gemini.APIKey = src.Gemini.APIKey
	}
	if dst.OpenRouter.APIKey == "" {
		dst.OpenRouter.APIKey = src.OpenRouter.APIKey
	}
}
