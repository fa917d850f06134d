package tools

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

type GitDiffTool struct {
	Dir string
}

func (t *GitDiffTool) Name() string {
	return string(ToolNameGitDiff)
}

func (t *GitDiffTool) Description() string {
	return "Get the diff for staged changes (git diff --staged)"
}

func (t *GitDiffTool) Execute(args map[string]any) (string, error) {
	output, err := runGit(t.Dir, "diff", "--staged", "--no-color", "--no-ext-diff")
	if err != nil {
		return "", fmt.Errorf("failed to get staged diff: %w", err)
	}

	return output, nil
}

type GitStagedFilesTool struct {
	Dir string
}

func (t *GitStagedFilesTool) Name() string {
	return string(ToolNameGitStagedFiles)
}

func (t *GitStagedFilesTool) Description() string {
	return "Get list of staged files (git diff --staged --name-only)"
}

// Execute lists staged paths, leaving out deletions since there is nothing
// left on disk to analyze.
func (t *GitStagedFilesTool) Execute(args map[string]any) (string, error) {
	output, err := runGit(t.Dir, "diff", "--staged", "--name-only", "--diff-filter=d")
	if err != nil {
		return "", fmt.Errorf("failed to get staged files: %w", err)
	}

	return output, nil
}

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(output), nil
}
