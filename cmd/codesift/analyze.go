package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/agusespa/codesift/internal/review"
	"github.com/agusespa/codesift/pkg/config"
	"github.com/agusespa/codesift/pkg/spinner"
)

// analyzeParams holds the parsed flags for the analyze command.
type analyzeParams struct {
	files      []string
	language   string
	format     string
	ai         bool
	reportPath string
	cfg        *config.Config
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var (
		language   string
		format     string
		ai         bool
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Analyze source files or stdin",
		Long: `Analyze one or more source files and print the issues found with a
quality score per file. With no files, or with "-", the code is read from
stdin and --lang is required.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), analyzeParams{
				files:      args,
				language:   language,
				format:     format,
				ai:         ai,
				reportPath: reportPath,
				cfg:        opts.cfg,
				stdin:      cmd.InOrStdin(),
				stdout:     cmd.OutOrStdout(),
				stderr:     cmd.ErrOrStderr(),
			})
		},
	}

	cmd.Flags().StringVarP(&language, "lang", "l", "",
		"language of the code (default: detected from the file extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "text",
		"output format: text, json or markdown")
	cmd.Flags().BoolVar(&ai, "ai", false,
		"ask the configured LLM first and fall back to heuristics on failure")
	cmd.Flags().StringVar(&reportPath, "report", "",
		"also write a markdown report to this path")

	return cmd
}

func runAnalyze(ctx context.Context, p analyzeParams) error {
	format, err := review.ParseFormat(p.format)
	if err != nil {
		return err
	}
	if p.cfg == nil {
		p.cfg = config.Default()
	}

	reqs, err := loadRequests(p)
	if err != nil {
		return err
	}

	service := newService(p.cfg, p.ai)

	var spin *spinner.Spinner
	if p.ai && format == review.FormatText {
		spin = spinner.NewWithWriter(discardIfNil(p.stderr), "Analyzing code...")
		spin.Start()
	}
	reviews, err := service.ReviewAll(ctx, reqs)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		if errors.Is(err, review.ErrNoCode) {
			return fmt.Errorf("nothing to analyze: %w", err)
		}
		return err
	}

	sources := review.Sources(reqs)
	if err := review.Write(p.stdout, format, reviews, sources); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if p.reportPath != "" {
		report := review.NewReportGenerator(sources).GenerateMarkdownReport(reviews)
		if err := os.WriteFile(p.reportPath, []byte(report), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	if format == review.FormatText {
		review.PrintSummary(p.stdout, reviews, p.reportPath)
	}

	return nil
}

func loadRequests(p analyzeParams) ([]review.Request, error) {
	if len(p.files) == 0 || (len(p.files) == 1 && p.files[0] == "-") {
		if p.language == "" {
			return nil, errors.New("--lang is required when reading from stdin")
		}
		code, err := io.ReadAll(p.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []review.Request{{Code: string(code), Language: p.language}}, nil
	}

	if slices.Contains(p.files, "-") {
		return nil, errors.New(`"-" cannot be combined with file arguments`)
	}
	return review.LoadFiles(p.files, p.language)
}
