package engine

import (
	"strings"

	"github.com/agusespa/codesift/internal/types"
)

func analyzePython(lines []Line) []types.Issue {
	var issues []types.Issue

	for i, line := range lines {
		t := line.Trimmed

		// Only the next physical line is inspected; a blank line before the
		// docstring still counts as missing.
		if strings.HasPrefix(t, "def ") && !strings.HasPrefix(t, "def _") {
			if i+1 >= len(lines) || !strings.HasPrefix(lines[i+1].Trimmed, `"""`) {
				issues = append(issues, types.Issue{
					Kind:        types.KindSuggestion,
					Title:       "Missing docstring",
					Description: "Public functions should have docstrings to describe their purpose.",
					Line:        line.Number(),
					Severity:    types.SeverityLow,
				})
			}
		}

		if strings.Contains(t, "print(") {
			issues = append(issues, types.Issue{
				Kind:        types.KindInfo,
				Title:       "Print statement found",
				Description: "Consider using logging instead of print for production code.",
				Line:        line.Number(),
				Severity:    types.SeverityLow,
			})
		}
	}

	return issues
}
