package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguageFromFilePath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"src/index.js", "javascript"},
		{"components/App.jsx", "javascript"},
		{"lib/util.ts", "typescript"},
		{"ui/View.TSX", "typescript"},
		{"scripts/run.py", "python"},
		{"src/main/java/Main.java", "java"},
		{"cmd/main.go", "go"},
		{"Dockerfile", "dockerfile"},
		{"build/Makefile", "makefile"},
		{"README", ""},
		{"archive.xyz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectLanguageFromFilePath(tt.path))
		})
	}
}

func TestParseFileList(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{"empty input", "", []string{}},
		{"single file", "file1.go", []string{"file1.go"}},
		{"multiple files", "file1.go\nfile2.go\nfile3.go", []string{"file1.go", "file2.go", "file3.go"}},
		{"surrounding spaces", "  file1.go  \n  file2.go\nfile3.go  ", []string{"file1.go", "file2.go", "file3.go"}},
		{"blank lines", "file1.go\n\nfile2.go\n\n", []string{"file1.go", "file2.go"}},
		{"duplicates", "a.py\nb.py\na.py", []string{"a.py", "b.py"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ParseFileList(tt.input))
		})
	}
}
