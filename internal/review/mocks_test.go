package review

import (
	"context"
	"errors"

	"github.com/agusespa/codesift/internal/tools"
	"github.com/agusespa/codesift/internal/types"
)

type mockProvider struct {
	response   string
	err        error
	lastSystem string
	lastPrompt string
}

func (m *mockProvider) GetModel() string {
	return "test-model"
}

func (m *mockProvider) Generate(ctx context.Context, system, prompt string) (string, error) {
	m.lastSystem = system
	m.lastPrompt = prompt
	return m.response, m.err
}

type mockAnalyzer struct {
	analysis types.AIAnalysis
	err      error
}

func (m *mockAnalyzer) Analyze(ctx context.Context, code, language string) (types.AIAnalysis, error) {
	return m.analysis, m.err
}

type mockTool struct {
	name    string
	execute func(args map[string]any) (string, error)
}

func (m *mockTool) Name() string        { return m.name }
func (m *mockTool) Description() string { return "mock " + m.name }
func (m *mockTool) Execute(args map[string]any) (string, error) {
	return m.execute(args)
}

type mockWriteTool struct {
	calls        int
	lastFilename string
	lastContent  string
}

func (m *mockWriteTool) Name() string        { return string(tools.ToolNameWriteFile) }
func (m *mockWriteTool) Description() string { return "mock write" }
func (m *mockWriteTool) Execute(args map[string]any) (string, error) {
	m.calls++
	m.lastFilename, _ = args["filename"].(string)
	m.lastContent, _ = args["content"].(string)
	return "ok", nil
}

func newMockRegistry(staged, diff string, files map[string]string, writer *mockWriteTool) *tools.Registry {
	r := tools.NewRegistry()
	r.Register(tools.ToolNameGitStagedFiles, &mockTool{
		name:    string(tools.ToolNameGitStagedFiles),
		execute: func(map[string]any) (string, error) { return staged, nil },
	})
	r.Register(tools.ToolNameGitDiff, &mockTool{
		name:    string(tools.ToolNameGitDiff),
		execute: func(map[string]any) (string, error) { return diff, nil },
	})
	r.Register(tools.ToolNameReadFile, &mockTool{
		name: string(tools.ToolNameReadFile),
		execute: func(args map[string]any) (string, error) {
			content, ok := files[args["filename"].(string)]
			if !ok {
				return "", errors.New("file not found")
			}
			return content, nil
		},
	})
	r.Register(tools.ToolNameWriteFile, writer)
	return r
}
