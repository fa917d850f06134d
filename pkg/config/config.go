package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultProvider   = "openai"
	DefaultAddr       = ":8080"
	DefaultReportPath = "codesift_report.md"
)

type Config struct {
	LLM    LLMConfig    `json:"llm" yaml:"llm"`
	Server ServerConfig `json:"server" yaml:"server"`
	Report ReportConfig `json:"report" yaml:"report"`
}

type LLMConfig struct {
	Provider string `json:"provider" yaml:"provider"`
	Model    string `json:"model" yaml:"model"`
	BaseURL  string `json:"base_url" yaml:"base_url"`
	APIKey   string `json:"api_key" yaml:"api_key"`
}

type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

type ReportConfig struct {
	Path string `json:"path" yaml:"path"`
}

// Default leaves the model and base URL empty; the LLM factory fills them in
// for whichever provider ends up selected.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider: DefaultProvider,
		},
		Server: ServerConfig{Addr: DefaultAddr},
		Report: ReportConfig{Path: DefaultReportPath},
	}
}

// LoadConfig reads a YAML or JSON config file on top of the defaults and then
// applies environment overrides. A .env file in the working directory is
// loaded first when present.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// LoadOrDefault behaves like LoadConfig but treats a missing file as an empty one.
func LoadOrDefault(filename string) (*Config, error) {
	cfg, err := LoadConfig(filename)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		applyEnv(cfg)
		return cfg, nil
	}
	return cfg, err
}

func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	if apiKey := firstEnv("CODESIFT_API_KEY", "DEEPSEEK_API_KEY"); apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}
	if provider := os.Getenv("CODESIFT_LLM_PROVIDER"); provider != "" {
		cfg.LLM.Provider = provider
	}
	if model := os.Getenv("CODESIFT_LLM_MODEL"); model != "" {
		cfg.LLM.Model = model
	}
	if baseURL := os.Getenv("CODESIFT_LLM_BASE_URL"); baseURL != "" {
		cfg.LLM.BaseURL = baseURL
	}
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}
