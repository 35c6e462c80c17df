// Package inference is the boundary to external sentiment services. Each
// provider adapter maps its own response scheme to a canonical pair of
// positive/negative probabilities; everything downstream works on those.
package inference

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Probs is the canonical provider output: raw probabilities for each side,
// before normalization.
type Probs struct {
	Positive float64
	Negative float64
}

// Provider is the narrow interface every sentiment backend implements.
// Implementations are safe for concurrent use.
type Provider interface {
	// Name returns the provider name, also used as the rate-limiter key.
	Name() string

	// Infer sends text to the sentiment endpoint and returns raw
	// probabilities. Transport and non-2xx failures come back as errors;
	// the caller decides whether that fails an item or a batch.
	Infer(ctx context.Context, text string) (Probs, error)
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "huggingface", "openai", "gemini"
	Provider string

	// Endpoint is the full inference URL (HuggingFace-style providers).
	Endpoint string

	// Token is the bearer token or API key.
	Token string

	// Model name, where the provider takes one.
	Model string

	// Timeout per inference call.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "huggingface",
		Timeout:  30 * time.Second,
	}
}

// NewProvider builds the adapter for the configured backend.
func NewProvider(cfg Config) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "huggingface", "hf":
		return NewHuggingFaceProvider(cfg)

	case "openai":
		return NewOpenAIProvider(cfg)

	case "gemini":
		return NewGeminiProvider(cfg)

	default:
		return nil, fmt.Errorf("unknown inference provider: %s (supported: huggingface, openai, gemini)", cfg.Provider)
	}
}
