// Package llm wraps the generative text backends (Ollama and
// OpenAI-compatible APIs) behind a single Provider interface.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/Atyab124/Automated-Newsletter/internal/config"
)

// Request is a single generation call.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
}

// Provider generates text from a prompt.
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// NewProvider builds the provider selected by configuration.
func NewProvider(cfg config.LLMConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "ollama":
		return NewOllamaClient(cfg.Ollama.BaseURL, cfg.Ollama.Model, cfg.Timeout), nil
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("openai api key not configured")
		}
		return NewOpenAIClient(cfg.OpenAI, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
