package tools

import "fmt"

// Tool is a side-effecting operation the review agent can run.
type Tool interface {
	Name() string
	Description() string
	Execute(args map[string]any) (string, error)
}

type ToolName string

const (
	ToolNameGitDiff        ToolName = "git_diff"
	ToolNameGitStagedFiles ToolName = "git_staged_files"
	ToolNameReadFile       ToolName = "read_file"
	ToolNameWriteFile      ToolName = "write_file"
)

type Registry struct {
	tools map[ToolName]Tool
}

func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[ToolName]Tool),
	}
}

// NewDefaultRegistry wires the git and file tools rooted at dir.
func NewDefaultRegistry(dir string) *Registry {
	r := NewRegistry()
	r.Register(ToolNameGitDiff, &GitDiffTool{Dir: dir})
	r.Register(ToolNameGitStagedFiles, &GitStagedFilesTool{Dir: dir})
	r.Register(ToolNameReadFile, &ReadFileTool{Dir: dir})
	r.Register(ToolNameWriteFile, &WriteFileTool{Dir: dir})
	return r
}

func (r *Registry) Register(name ToolName, tool Tool) {
	r.tools[name] = tool
}

func (r *Registry) Get(name ToolName) Tool {
	tool, exists := r.tools[name]
	if !exists {
		panic(fmt.Sprintf("BUG: Requested tool '%s' not found in Registry", name))
	}
	return tool
}
