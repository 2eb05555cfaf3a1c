package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/smartlearn/internal/store"
)

// NewProvider builds the configured chain. Each member is wrapped as
// retry → logging → backend, so every attempt is recorded as an event.
// eventRepo may be nil, in which case calls are not recorded.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	members := make([]Provider, 0, len(cfg.Chain))
	for _, name := range cfg.Chain {
		base, err := newBackend(ctx, name, cfg)
		if err != nil {
			return nil, fmt.Errorf("initializing %s provider: %w", name, err)
		}
		if name == NameMock {
			members = append(members, base)
			continue
		}
		p := base
		if eventRepo != nil {
			p = WithLogging(p, name, eventRepo)
		}
		members = append(members, WithRetry(p, cfg.Retry))
	}

	if len(members) == 1 {
		return members[0], nil
	}
	return NewChain(cfg.Timeout, members...), nil
}

// NewProviderFromEnv is NewProvider over ConfigFromEnv.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	return NewProvider(ctx, ConfigFromEnv(), eventRepo)
}

func newBackend(ctx context.Context, name string, cfg Config) (Provider, error) {
	switch name {
	case NameAnthropic:
		return NewAnthropicProvider(cfg.Anthropic)
	case NameOpenAI:
		return NewOpenAIProvider(cfg.OpenAI)
	case NameGemini:
		return NewGeminiProvider(ctx, cfg.Gemini)
	case NameOpenRouter:
		return NewOpenRouterProvider(cfg.OpenRouter)
	case NameMock:
		return NewMockProvider(), nil
	}
	return nil, fmt.Errorf("unknown LLM provider: %q", name)
}
