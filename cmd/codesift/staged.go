package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/agusespa/codesift/internal/review"
	"github.com/agusespa/codesift/internal/tools"
	"github.com/agusespa/codesift/pkg/config"
)

type stagedParams struct {
	dir    string
	ai     bool
	cfg    *config.Config
	stdout io.Writer
}

func newStagedCmd(opts *rootOptions) *cobra.Command {
	var ai bool

	cmd := &cobra.Command{
		Use:   "staged",
		Short: "Review staged git changes",
		Long: `Review every staged file in a recognized language and report only the
issues that fall on lines added by the change. A markdown report is written
when issues remain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStaged(cmd.Context(), stagedParams{
				dir:    ".",
				ai:     ai,
				cfg:    opts.cfg,
				stdout: cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().BoolVar(&ai, "ai", false,
		"ask the configured LLM first and fall back to heuristics on failure")

	return cmd
}

func runStaged(ctx context.Context, p stagedParams) error {
	if p.cfg == nil {
		p.cfg = config.Default()
	}

	if err := review.CheckReportIgnored(".gitignore", p.cfg.Report.Path); err != nil {
		return err
	}

	agent := review.NewAgent(newService(p.cfg, p.ai), tools.NewDefaultRegistry(p.dir), p.cfg.Report.Path, p.stdout, logger)
	_, err := agent.ReviewStagedChanges(ctx)
	return err
}
