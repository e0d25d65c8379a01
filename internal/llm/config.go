package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the provider.
type Config struct {
	// Provider is "anthropic", "openai", "gemini" or "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic settings.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI settings. BaseURL overrides the endpoint
// for compatible APIs.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig holds Gemini settings.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// RetryConfig tunes transient-failure retries.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns sensible defaults with no keys set.
func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// FromEnv builds a Config from KUMORA_* environment variables, falling
// back to defaults for anything unset.
func FromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("KUMORA_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if k := os.Getenv("KUMORA_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("KUMORA_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}
	if k := os.Getenv("KUMORA_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("KUMORA_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("KUMORA_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}
	if k := os.Getenv("KUMORA_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("KUMORA_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	// With no explicit provider key, fall back to the conventional
	// unprefixed env vars so the tool works out of the box.
	if cfg.keyFor(cfg.Provider) == "" {
		if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
			cfg.Provider = "anthropic"
			cfg.Anthropic.APIKey = k
		} else if k := os.Getenv("OPENAI_API_KEY"); k != "" {
			cfg.Provider = "openai"
			cfg.OpenAI.APIKey = k
		} else if k := os.Getenv("GEMINI_API_KEY"); k != "" {
			cfg.Provider = "gemini"
			cfg.Gemini.APIKey = k
		}
	}

	return cfg
}

func (c Config) keyFor(provider string) string {
	switch provider {
	case "anthropic":
		return c.Anthropic.APIKey
	case "openai":
		return c.OpenAI.APIKey
	case "gemini":
		return c.Gemini.APIKey
	default:
		return ""
	}
}

// Validate checks the selected provider has its key.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic", "openai", "gemini":
		if c.keyFor(c.Provider) == "" {
			return fmt.Errorf("no API key configured for the %s provider (set KUMORA_%s_API_KEY)",
				c.Provider, envName(c.Provider))
		}
	case "mock":
		// No key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

func envName(provider string) string {
	switch provider {
	case "anthropic":
		return "ANTHROPIC"
	case "openai":
		return "OPENAI"
	default:
		return "GEMINI"
	}
}
