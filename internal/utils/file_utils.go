package utils

import (
	"path/filepath"
	"strings"
)

// languageByExtension maps file extensions to the language identifiers the
// analyzers understand; anything else is still usable as a fence label.
var languageByExtension = map[string]string{
	"go":         "go",
	"js":         "javascript",
	"mjs":        "javascript",
	"cjs":        "javascript",
	"jsx":        "javascript",
	"ts":         "typescript",
	"mts":        "typescript",
	"tsx":        "typescript",
	"py":         "python",
	"java":       "java",
	"c":          "c",
	"h":          "c",
	"cpp":        "cpp",
	"cc":         "cpp",
	"cxx":        "cpp",
	"hpp":        "cpp",
	"cs":         "csharp",
	"php":        "php",
	"rb":         "ruby",
	"rs":         "rust",
	"swift":      "swift",
	"kt":         "kotlin",
	"scala":      "scala",
	"sh":         "bash",
	"bash":       "bash",
	"zsh":        "bash",
	"ps1":        "powershell",
	"sql":        "sql",
	"html":       "html",
	"css":        "css",
	"scss":       "scss",
	"xml":        "xml",
	"json":       "json",
	"yaml":       "yaml",
	"yml":        "yaml",
	"toml":       "toml",
	"md":         "markdown",
	"dockerfile": "dockerfile",
	"mk":         "makefile",
}

// DetectLanguageFromFilePath returns the language identifier for a path, or
// "" when the extension is unknown.
func DetectLanguageFromFilePath(filePath string) string {
	base := strings.ToLower(filepath.Base(filePath))
	switch base {
	case "dockerfile":
		return "dockerfile"
	case "makefile":
		return "makefile"
	}

	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if ext == "" {
		return ""
	}
	return languageByExtension[ext]
}

// ParseFileList splits newline separated git output into unique paths.
func ParseFileList(output string) []string {
	files := []string{}
	seen := make(map[string]bool)

	for line := range strings.SplitSeq(strings.TrimSpace(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		files = append(files, line)
	}

	return files
}
