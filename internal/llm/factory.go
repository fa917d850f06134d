package llm

import (
	"errors"
	"fmt"
	"strings"
)

type ProviderType string

const (
	ProviderOllama ProviderType = "ollama"
	ProviderOpenAI ProviderType = "openai"
)

const (
	DefaultOpenAIBaseURL = "https://api.deepseek.com"
	DefaultOpenAIModel   = "deepseek-reasoner"
	DefaultOllamaBaseURL = "http://localhost:11434"
	DefaultOllamaModel   = "qwen2.5-coder"
)

var ErrMissingAPIKey = errors.New("API key is required for AI analysis")

type ProviderConfig struct {
	Type    ProviderType
	Model   string
	BaseURL string
	APIKey  string
}

// NewProvider builds the provider for config.Type. An empty model or base URL
// takes that provider's default.
func NewProvider(config ProviderConfig) (Provider, error) {
	switch config.Type {
	case ProviderOpenAI:
		if strings.TrimSpace(config.APIKey) == "" {
			return nil, ErrMissingAPIKey
		}
		baseURL := orDefault(config.BaseURL, DefaultOpenAIBaseURL)
		return NewOpenAIProvider(baseURL, orDefault(config.Model, DefaultOpenAIModel), config.APIKey), nil
	case ProviderOllama:
		baseURL := orDefault(config.BaseURL, DefaultOllamaBaseURL)
		return NewOllamaProvider(baseURL, orDefault(config.Model, DefaultOllamaModel)), nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s (supported: %s)", config.Type, strings.Join(SupportedProviders, ", "))
	}
}

func orDefault(value, fallback string) string {
	value = strings.TrimRight(strings.TrimSpace(value), "/")
	if value == "" {
		return fallback
	}
	return value
}
