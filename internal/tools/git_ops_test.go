package tools

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// initRepo creates a throwaway repository with one staged and one unstaged file.
func initRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}

	run("init", "-q")
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("const a = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("unstaged\n"), 0644); err != nil {
		t.Fatal(err)
	}
	run("add", "app.js")
	return dir
}

func TestGitDiffTool_Name(t *testing.T) {
	tool := &GitDiffTool{}
	if tool.Name() != "git_diff" {
		t.Errorf("Expected name 'git_diff', got %s", tool.Name())
	}
}

func TestGitDiffTool_Description(t *testing.T) {
	tool := &GitDiffTool{}
	desc := tool.Description()
	if !strings.Contains(strings.ToLower(desc), "diff") {
		t.Errorf("Expected description to contain 'diff', got: %s", desc)
	}
}

func TestGitStagedFilesTool_Name(t *testing.T) {
	tool := &GitStagedFilesTool{}
	if tool.Name() != "git_staged_files" {
		t.Errorf("Expected name 'git_staged_files', got %s", tool.Name())
	}
}

func TestGitStagedFilesTool_Description(t *testing.T) {
	tool := &GitStagedFilesTool{}
	desc := tool.Description()
	if !strings.Contains(strings.ToLower(desc), "staged files") {
		t.Errorf("Expected description to contain 'staged files', got: %s", desc)
	}
}

func TestGitDiffTool_Execute(t *testing.T) {
	dir := initRepo(t)
	tool := &GitDiffTool{Dir: dir}

	result, err := tool.Execute(map[string]any{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.Contains(result, "+const a = 1") {
		t.Errorf("Expected staged content in diff, got: %s", result)
	}
	if strings.Contains(result, "notes.txt") {
		t.Errorf("Expected unstaged file to be absent, got: %s", result)
	}
}

func TestGitStagedFilesTool_Execute(t *testing.T) {
	dir := initRepo(t)
	tool := &GitStagedFilesTool{Dir: dir}

	result, err := tool.Execute(map[string]any{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if strings.TrimSpace(result) != "app.js" {
		t.Errorf("Expected only app.js, got: %q", result)
	}
}

func TestGitDiffTool_Execute_NotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	tool := &GitDiffTool{Dir: t.TempDir()}

	_, err := tool.Execute(map[string]any{})
	if err == nil {
		t.Fatal("Expected error outside a repository")
	}
	if !strings.Contains(err.Error(), "failed to get staged diff") {
		t.Errorf("Expected wrapped error, got: %v", err)
	}
}
