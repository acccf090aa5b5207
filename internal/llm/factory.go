package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/edostudy/internal/platform/logger"
	"github.com/abhisek/edostudy/internal/store"
)

// NewProvider creates the base Provider selected by cfg. It does not add
// middleware; see EnvSource for the wired-up variant.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.ProviderConfig)
	case "openai":
		base, err = NewOpenAIProvider(cfg.ProviderConfig)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.ProviderConfig)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.ProviderConfig)
	case "mock":
		return NewMockProvider().Repeat(MockResponse{Text: devMockReply}), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return base, nil
}

// Source hands out a Provider for a single call.
type Source interface {
	Provider(ctx context.Context) (Provider, error)
}

// EnvSource resolves the provider from the MODEL_* environment on every
// call and wraps it with audit logging. A missing key surfaces as
// ErrNotConfigured.
type EnvSource struct {
	Events store.EventRepo // optional
	Log    *logger.Logger
}

func (s EnvSource) Provider(ctx context.Context) (Provider, error) {
	base, err := NewProvider(ctx, ConfigFromEnv())
	if err != nil {
		return nil, err
	}
	return WithLogging(base, s.Events, s.Log), nil
}

// StaticSource always returns the same provider.
type StaticSource struct {
	P Provider
}

func (s StaticSource) Provider(context.Context) (Provider, error) {
	if s.P == nil {
		return nil, ErrNotConfigured
	}
	return s.P, nil
}

// devMockReply is what the "mock" provider answers with, so the evaluate
// endpoint can be exercised locally without a key.
const devMockReply = `{"points_hit": [], "points_missed": [], "score": 0, "total": 0, ` +
	`"praise": "Mock grader: thanks for your answer!", ` +
	`"hint": "Set MODEL_PROVIDER and MODEL_API_KEY for real feedback.", "model_answer": ""}`
