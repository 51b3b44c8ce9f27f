package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"interviewhub/config"
)

// Sentinel failures reported by the text generation providers. Their messages
// carry the "rate limit" and "API key" markers the evaluation error mapping
// looks for, so wrapped and plain-text provider failures classify the same way.
var (
	ErrRateLimited   = errors.New("rate limit exceeded")
	ErrInvalidAPIKey = errors.New("API key missing or rejected")
)

// TextGenerator turns a prompt into free text.
type TextGenerator interface {
	// Name is the provider name used in user-facing error messages.
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewTextGenerator builds the provider selected in the configuration.
func NewTextGenerator(cfg *config.Config) (TextGenerator, error) {
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(cfg.LLM.Model, *cfg.LLM.Temperature, cfg.LLM.APIKeyEnv, cfg.LLM.BaseURL), nil
	case config.ProviderGemini:
		return NewGeminiGenerator(cfg.LLM.Model, *cfg.LLM.Temperature, cfg.LLM.APIKeyEnv), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.LLM.Provider)
	}
}

// apiKeyFromEnv reads the credential at call time so a rotated or newly
// exported key is picked up without a restart.
func apiKeyFromEnv(name string) (string, error) {
	key := strings.TrimSpace(os.Getenv(name))
	if key == "" {
		return "", fmt.Errorf("%w: %s is not set", ErrInvalidAPIKey, name)
	}
	return key, nil
}

func wrapProviderStatus(status int, err error) error {
	switch status {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrInvalidAPIKey, err)
	default:
		return err
	}
}
