package llm

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvProvider = "MODEL_PROVIDER"
	EnvAPIKey   = "MODEL_API_KEY"
	EnvModel    = "MODEL_NAME"
	EnvBaseURL  = "MODEL_BASE_URL"
)

// Config selects and configures one provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter", "mock".
	Provider string

	ProviderConfig
}

// ProviderConfig is the per-provider connection settings.
type ProviderConfig struct {
	APIKey string
	// Model is a friendly name ("claude-sonnet") or a raw model ID.
	Model string
	// BaseURL optionally overrides the API endpoint (anthropic, openai, openrouter).
	BaseURL string
}

// defaultModels is the model used when MODEL_NAME is unset.
var defaultModels = map[string]string{
	"anthropic":  "claude-sonnet",
	"openai":     "gpt-4o-mini",
	"gemini":     "gemini-flash",
	"openrouter": "anthropic/claude-sonnet-4.5",
}

// DefaultConfig returns a Config for the Anthropic provider with no key.
func DefaultConfig() Config {
	return Config{
		Provider:       "anthropic",
		ProviderConfig: ProviderConfig{Model: defaultModels["anthropic"]},
	}
}

// ConfigFromEnv builds a Config from the MODEL_* environment variables.
// It is called per evaluation, so a key exported after startup is honored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := strings.ToLower(strings.TrimSpace(os.Getenv(EnvProvider))); p != "" {
		cfg.Provider = p
		cfg.Model = defaultModels[p]
	}
	cfg.APIKey = strings.TrimSpace(os.Getenv(EnvAPIKey))
	if m := strings.TrimSpace(os.Getenv(EnvModel)); m != "" {
		cfg.Model = m
	}
	cfg.BaseURL = strings.TrimSpace(os.Getenv(EnvBaseURL))

	return cfg
}

// Validate checks that the selected provider is known and has a key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic", "openai", "gemini", "openrouter":
		if c.APIKey == "" {
			return fmt.Errorf("%s is required for the %s provider: %w", EnvAPIKey, c.Provider, ErrNotConfigured)
		}
	case "mock":
	default:
		return fmt.Errorf("unknown model provider: %q", c.Provider)
	}
	return nil
}
