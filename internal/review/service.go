// Package review turns raw code into labelled reviews. It prefers an AI
// analysis when one is configured and falls back to the rule-based engine
// whenever the AI path is unavailable or fails.
package review

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/agusespa/codesift/internal/engine"
	"github.com/agusespa/codesift/internal/types"
	"github.com/agusespa/codesift/internal/utils"
)

var ErrNoCode = errors.New("no code to analyze")

const (
	FallbackExplanation = "AI analysis failed, using rule-based analysis as fallback."
	DisabledExplanation = "Rule-based analysis (AI disabled)."
)

type Request struct {
	Code     string
	Language string
	Path     string
}

type Service struct {
	analyzer    Analyzer
	logger      *charmlog.Logger
	concurrency int
}

type Option func(*Service)

// WithAnalyzer enables the AI path. A nil analyzer leaves it disabled.
func WithAnalyzer(a Analyzer) Option {
	return func(s *Service) { s.analyzer = a }
}

func WithLogger(l *charmlog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithConcurrency bounds how many files are reviewed at once.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{
		logger:      discardLogger(),
		concurrency: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) AIEnabled() bool {
	return s.analyzer != nil
}

// Review analyzes one piece of code. AI failures are logged and never returned.
func (s *Service) Review(ctx context.Context, req Request) (*types.Review, error) {
	if strings.TrimSpace(req.Code) == "" {
		return nil, ErrNoCode
	}

	if s.analyzer != nil {
		analysis, err := s.analyzer.Analyze(ctx, req.Code, req.Language)
		if err == nil {
			return &types.Review{
				AnalysisResult: analysis.AnalysisResult,
				Explanation:    analysis.Explanation,
				Source:         types.SourceAI,
				Language:       req.Language,
				Path:           req.Path,
			}, nil
		}
		s.logger.Warn("AI analysis failed, falling back to rules", "path", req.Path, "language", req.Language, "err", err)
	}

	explanation := DisabledExplanation
	if s.analyzer != nil {
		explanation = FallbackExplanation
	}

	return &types.Review{
		AnalysisResult: engine.Analyze(req.Code, req.Language),
		Explanation:    explanation,
		Source:         types.SourceHeuristic,
		Language:       req.Language,
		Path:           req.Path,
	}, nil
}

// ReviewAll reviews every request concurrently. Results keep the order of reqs.
func (s *Service) ReviewAll(ctx context.Context, reqs []Request) ([]*types.Review, error) {
	reviews := make([]*types.Review, len(reqs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, req := range reqs {
		g.Go(func() error {
			r, err := s.Review(gCtx, req)
			if err != nil {
				return fmt.Errorf("%s: %w", displayPath(req.Path), err)
			}
			reviews[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.logger.Debug("reviews complete", "count", len(reviews), "ai", s.AIEnabled())
	return reviews, nil
}

// LoadFiles reads paths into requests. An empty language means the language
// is detected from each file's extension.
func LoadFiles(paths []string, language string) ([]Request, error) {
	reqs := make([]Request, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}

		lang := language
		if lang == "" {
			lang = utils.DetectLanguageFromFilePath(path)
		}
		reqs = append(reqs, Request{Code: string(content), Language: lang, Path: path})
	}
	return reqs, nil
}

// Sources maps each request path to its code, for report excerpts.
func Sources(reqs []Request) map[string]string {
	sources := make(map[string]string, len(reqs))
	for _, req := range reqs {
		sources[req.Path] = req.Code
	}
	return sources
}

func displayPath(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}

func discardLogger() *charmlog.Logger {
	return charmlog.New(io.Discard)
}
