package engine

import (
	"unicode/utf8"

	"github.com/agusespa/codesift/internal/types"
)

const maxLineLength = 120

func analyzeGeneral(lines []Line) []types.Issue {
	var issues []types.Issue

	for _, line := range lines {
		if utf8.RuneCountInString(line.Raw) > maxLineLength {
			issues = append(issues, types.Issue{
				Kind:        types.KindSuggestion,
				Title:       "Long line detected",
				Description: "Consider breaking this line into multiple lines for better readability.",
				Line:        line.Number(),
				Severity:    types.SeverityLow,
			})
		}

		if containsAny(line.Trimmed, "TODO", "FIXME") {
			issues = append(issues, types.Issue{
				Kind:        types.KindInfo,
				Title:       "TODO comment found",
				Description: "Remember to address this TODO item before finalizing the code.",
				Line:        line.Number(),
				Severity:    types.SeverityLow,
			})
		}
	}

	return issues
}
