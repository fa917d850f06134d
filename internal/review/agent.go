package review

import (
	"context"
	"fmt"
	"io"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/agusespa/codesift/internal/engine"
	"github.com/agusespa/codesift/internal/tools"
	"github.com/agusespa/codesift/internal/types"
	"github.com/agusespa/codesift/internal/utils"
)

// Agent runs the staged-changes workflow: it reviews every staged file and
// reports only what touches lines added by the change.
type Agent struct {
	service    *Service
	registry   *tools.Registry
	reportPath string
	out        io.Writer
	logger     *charmlog.Logger
}

func NewAgent(service *Service, registry *tools.Registry, reportPath string, out io.Writer, logger *charmlog.Logger) *Agent {
	if logger == nil {
		logger = discardLogger()
	}
	if out == nil {
		out = io.Discard
	}
	return &Agent{
		service:    service,
		registry:   registry,
		reportPath: reportPath,
		out:        out,
		logger:     logger,
	}
}

// ReviewStagedChanges returns the filtered reviews. A report is written only
// when at least one issue remains.
func (a *Agent) ReviewStagedChanges(ctx context.Context) ([]*types.Review, error) {
	fmt.Fprintln(a.out, "Starting code review on staged changes...")

	stagedOutput, err := a.registry.Get(tools.ToolNameGitStagedFiles).Execute(map[string]any{})
	if err != nil {
		return nil, err
	}

	changedFiles := utils.ParseFileList(stagedOutput)

	fmt.Fprint(a.out, "Files to be reviewed:")
	if len(changedFiles) == 0 {
		fmt.Fprintln(a.out, "   ✕ no staged changes found - use 'git add' to stage files for review")
		return []*types.Review{}, nil
	}

	diff, err := a.registry.Get(tools.ToolNameGitDiff).Execute(map[string]any{})
	if err != nil {
		return nil, err
	}
	added, err := utils.AddedLines(diff)
	if err != nil {
		return nil, err
	}

	reqs, err := a.collectRequests(changedFiles)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(a.out)

	if len(reqs) == 0 {
		fmt.Fprintln(a.out, "   ✕ none of the staged files are in a recognized language")
		return []*types.Review{}, nil
	}

	reviews, err := a.service.ReviewAll(ctx, reqs)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, rv := range reviews {
		FilterToAddedLines(rv, added[rv.Path])
		total += len(rv.Issues)
	}

	if total == 0 {
		PrintSummary(a.out, reviews, "")
		return reviews, nil
	}

	report := NewReportGenerator(Sources(reqs)).GenerateMarkdownReport(reviews)
	_, err = a.registry.Get(tools.ToolNameWriteFile).Execute(map[string]any{
		"filename": a.reportPath,
		"content":  report,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write markdown code review: %w", err)
	}

	PrintSummary(a.out, reviews, a.reportPath)
	return reviews, nil
}

func (a *Agent) collectRequests(files []string) ([]Request, error) {
	readTool := a.registry.Get(tools.ToolNameReadFile)

	var reqs []Request
	for _, file := range files {
		language := utils.DetectLanguageFromFilePath(file)
		if language == "" {
			fmt.Fprintf(a.out, "\n   - %s (skipped)", file)
			continue
		}

		content, err := readTool.Execute(map[string]any{"filename": file})
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", file, err)
		}
		if strings.TrimSpace(content) == "" {
			a.logger.Debug("skipping empty staged file", "path", file)
			continue
		}

		fmt.Fprintf(a.out, "\n   ✓ %s", file)
		reqs = append(reqs, Request{Code: content, Language: language, Path: file})
	}
	return reqs, nil
}

// FilterToAddedLines drops issues on lines the change did not add. File-level
// issues are always kept. Heuristic scores are recomputed for what remains;
// AI scores are the model's own judgement and stay as reported.
func FilterToAddedLines(rv *types.Review, added map[int]bool) {
	kept := make([]types.Issue, 0, len(rv.Issues))
	for _, issue := range rv.Issues {
		if issue.Line == 0 || added[issue.Line] {
			kept = append(kept, issue)
		}
	}
	rv.Issues = kept

	if rv.Source == types.SourceHeuristic {
		rv.OverallScore = engine.Score(kept)
	}
}
