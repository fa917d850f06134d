package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sourcegraph/go-diff/diff"
)

// FileChanges describes the new side of one file in a unified diff.
type FileChanges struct {
	Path   string
	Added  map[int]bool
	Delete bool
}

// ParseDiff reads a multi-file unified diff such as `git diff --staged`.
func ParseDiff(diffText string) ([]FileChanges, error) {
	fileDiffs, err := diff.ParseMultiFileDiff([]byte(diffText))
	if err != nil {
		return nil, fmt.Errorf("failed to parse diff: %w", err)
	}

	changes := make([]FileChanges, 0, len(fileDiffs))
	for _, fd := range fileDiffs {
		fc := FileChanges{
			Path:   cleanDiffPath(fd.NewName),
			Added:  make(map[int]bool),
			Delete: fd.NewName == "/dev/null",
		}
		if fc.Delete {
			fc.Path = cleanDiffPath(fd.OrigName)
		}

		for _, hunk := range fd.Hunks {
			markAddedLines(fc.Added, hunk)
		}
		changes = append(changes, fc)
	}

	return changes, nil
}

// AddedLines maps every surviving file in the diff to its added line numbers.
func AddedLines(diffText string) (map[string]map[int]bool, error) {
	changes, err := ParseDiff(diffText)
	if err != nil {
		return nil, err
	}

	added := make(map[string]map[int]bool, len(changes))
	for _, fc := range changes {
		if fc.Delete {
			continue
		}
		added[fc.Path] = fc.Added
	}
	return added, nil
}

// markAddedLines walks the hunk body without a line length limit; minified
// sources routinely exceed bufio.Scanner's token size.
func markAddedLines(added map[int]bool, hunk *diff.Hunk) {
	line := int(hunk.NewStartLine)
	body := bytes.TrimSuffix(hunk.Body, []byte("\n"))
	if len(body) == 0 {
		return
	}
	for _, text := range bytes.Split(body, []byte("\n")) {
		if len(text) == 0 {
			line++
			continue
		}
		switch text[0] {
		case '+':
			added[line] = true
			line++
		case ' ':
			line++
		}
	}
}

func cleanDiffPath(name string) string {
	name = strings.TrimSpace(name)
	for _, prefix := range []string{"a/", "b/"} {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimPrefix(name, prefix)
		}
	}
	return name
}
