package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration. When usage is
// non-nil the provider is wrapped with usage recording. No retry layer
// exists: a failed request surfaces immediately to the caller.
func NewProvider(ctx context.Context, cfg Config, usage *UsageLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		cfg.OpenAI.Timeout = cfg.Timeout
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		cfg.Anthropic.Timeout = cfg.Timeout
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		cfg.Gemini.Timeout = cfg.Timeout
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		cfg.OpenRouter.Timeout = cfg.Timeout
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if usage != nil {
		return WithRecording(base, usage), nil
	}
	return base, nil
}

// NewProviderFromEnv resolves configuration from the environment and
// builds the provider. A missing credential surfaces here as
// *ErrMissingCredential so startup can abort with a clear message.
func NewProviderFromEnv(ctx context.Context, usage *UsageLog) (Provider, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, usage)
}
