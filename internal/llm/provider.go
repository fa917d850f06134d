package llm

import "context"

type Provider interface {
	GetModel() string
	Generate(ctx context.Context, system, prompt string) (string, error)
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Sampling settings shared by every provider.
const (
	defaultTemperature = 0.2
	defaultTopP        = 0.9
	defaultMaxTokens   = 2000
)

var SupportedProviders = []string{string(ProviderOpenAI), string(ProviderOllama)}
