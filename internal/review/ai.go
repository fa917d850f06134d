package review

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"

	"github.com/agusespa/codesift/internal/llm"
	"github.com/agusespa/codesift/internal/prompts"
	"github.com/agusespa/codesift/internal/types"
	"github.com/agusespa/codesift/internal/utils"
)

// Analyzer produces a model-backed analysis for a piece of code.
type Analyzer interface {
	Analyze(ctx context.Context, code, language string) (types.AIAnalysis, error)
}

// AIAnalyzer asks an LLM provider for a structured review.
type AIAnalyzer struct {
	provider llm.Provider
	logger   *charmlog.Logger
}

func NewAIAnalyzer(provider llm.Provider, logger *charmlog.Logger) *AIAnalyzer {
	if logger == nil {
		logger = discardLogger()
	}
	return &AIAnalyzer{provider: provider, logger: logger}
}

// Analyze returns an error only when the model could not be reached or sent
// nothing back. A reply without a usable JSON object is still accepted as a
// degraded, single-issue analysis.
func (a *AIAnalyzer) Analyze(ctx context.Context, code, language string) (types.AIAnalysis, error) {
	system, err := prompts.BuildSystemPrompt(language)
	if err != nil {
		return types.AIAnalysis{}, err
	}
	prompt, err := prompts.BuildUserPrompt(language, code)
	if err != nil {
		return types.AIAnalysis{}, err
	}

	a.logger.Debug("requesting AI analysis", "model", a.provider.GetModel(), "language", language)

	reply, err := a.provider.Generate(ctx, system, prompt)
	if err != nil {
		return types.AIAnalysis{}, fmt.Errorf("AI request failed: %w", err)
	}

	analysis, err := utils.ParseAnalysisFromResponse(reply)
	if err != nil {
		return types.AIAnalysis{}, err
	}
	if analysis.Degraded {
		a.logger.Warn("AI reply was not structured, keeping it as text", "model", a.provider.GetModel())
	}

	return analysis, nil
}

type unavailableAnalyzer struct {
	err error
}

// Unavailable returns an Analyzer that always fails with err. It stands in
// when the AI path was requested but could not be configured, so reviews
// still report the fallback.
func Unavailable(err error) Analyzer {
	return unavailableAnalyzer{err: err}
}

func (u unavailableAnalyzer) Analyze(context.Context, string, string) (types.AIAnalysis, error) {
	return types.AIAnalysis{}, u.err
}
