package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/agusespa/codesift/internal/llm"
	"github.com/agusespa/codesift/internal/review"
	"github.com/agusespa/codesift/pkg/config"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags (-ldflags "-X main.version=...").
var version = "dev"

type rootOptions struct {
	configPath string
	debug      bool
	cfg        *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "codesift",
		Short: "Codesift - quick code quality feedback",
		Long: `Codesift reviews source code with an optional AI reviewer and falls back
to fast line-based heuristics for JavaScript, TypeScript, Python and Java
whenever the AI path is disabled or fails.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.debug {
				logger.SetLevel(charmlog.DebugLevel)
			}
			cfg, err := config.LoadOrDefault(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config from %s: %w", opts.configPath, err)
			}
			opts.cfg = cfg
			logger.Debug("config loaded", "path", opts.configPath, "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
			return nil
		},
	}
	root.SetVersionTemplate("codesift version {{.Version}}\n")

	root.PersistentFlags().StringVar(&opts.configPath, "config", "codesift.yaml",
		"path to a YAML or JSON config file (optional)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false,
		"enable debug logging")

	root.AddCommand(newAnalyzeCmd(opts))
	root.AddCommand(newStagedCmd(opts))
	root.AddCommand(newServeCmd(opts))

	return root
}

// newService builds the review service. When AI is requested but the provider
// cannot be built, reviews still run and report the rule-based fallback.
func newService(cfg *config.Config, ai bool) *review.Service {
	opts := []review.Option{review.WithLogger(logger)}
	if !ai {
		return review.NewService(opts...)
	}

	provider, err := llm.NewProvider(llm.ProviderConfig{
		Type:    llm.ProviderType(cfg.LLM.Provider),
		Model:   cfg.LLM.Model,
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
	})
	if err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			logger.Warn("AI analysis requested but no API key is set (CODESIFT_API_KEY or DEEPSEEK_API_KEY)")
		} else {
			logger.Warn("AI analysis unavailable", "err", err)
		}
		return review.NewService(append(opts, review.WithAnalyzer(review.Unavailable(err)))...)
	}

	logger.Debug("AI analysis enabled", "provider", cfg.LLM.Provider, "model", provider.GetModel())
	return review.NewService(append(opts, review.WithAnalyzer(review.NewAIAnalyzer(provider, logger)))...)
}

func discardIfNil(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
