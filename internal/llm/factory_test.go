package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider(ProviderConfig{Type: ProviderOpenAI, Model: "deepseek-reasoner", BaseURL: "https://api.deepseek.com/", APIKey: "k"})
	require.NoError(t, err)
	openai, ok := provider.(*OpenAIProvider)
	require.True(t, ok)
	assert.Equal(t, "https://api.deepseek.com", openai.baseURL)

	provider, err = NewProvider(ProviderConfig{Type: ProviderOllama, Model: "qwen2.5-coder", BaseURL: "http://localhost:11434"})
	require.NoError(t, err)
	assert.Equal(t, "qwen2.5-coder", provider.GetModel())
}

func TestNewProvider_Defaults(t *testing.T) {
	tests := []struct {
		name            string
		config          ProviderConfig
		expectedBaseURL string
		expectedModel   string
	}{
		{
			name:            "openai",
			config:          ProviderConfig{Type: ProviderOpenAI, APIKey: "k"},
			expectedBaseURL: DefaultOpenAIBaseURL,
			expectedModel:   DefaultOpenAIModel,
		},
		{
			name:            "ollama",
			config:          ProviderConfig{Type: ProviderOllama},
			expectedBaseURL: DefaultOllamaBaseURL,
			expectedModel:   DefaultOllamaModel,
		},
		{
			name:            "ollama keeps explicit values",
			config:          ProviderConfig{Type: ProviderOllama, Model: "llama3", BaseURL: "http://gpu-box:11434/"},
			expectedBaseURL: "http://gpu-box:11434",
			expectedModel:   "llama3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.config)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedModel, provider.GetModel())

			switch p := provider.(type) {
			case *OpenAIProvider:
				assert.Equal(t, tt.expectedBaseURL, p.baseURL)
			case *OllamaProvider:
				assert.Equal(t, tt.expectedBaseURL, p.baseURL)
			default:
				t.Fatalf("unexpected provider type %T", provider)
			}
		})
	}
}

func TestNewProvider_Errors(t *testing.T) {
	_, err := NewProvider(ProviderConfig{Type: ProviderOpenAI, Model: "m", APIKey: "  "})
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = NewProvider(ProviderConfig{Type: "anthropic"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported provider type: anthropic")
}
