package engine

import (
	"strings"

	"github.com/agusespa/codesift/internal/types"
)

var ecmaControlMarkers = []string{"if ", "for ", "while ", "function ", "class ", "else"}

func analyzeECMA(lines []Line) []types.Issue {
	var issues []types.Issue

	for _, line := range lines {
		t := line.Trimmed
		n := line.Number()

		if ecmaMissingSemicolon(t) {
			issues = append(issues, types.Issue{
				Kind:        types.KindWarning,
				Title:       "Missing semicolon",
				Description: "Consider adding a semicolon for consistency and to avoid potential issues.",
				Line:        n,
				Severity:    types.SeverityLow,
			})
		}

		if strings.Contains(t, "var ") {
			issues = append(issues, types.Issue{
				Kind:        types.KindSuggestion,
				Title:       "Use let or const instead of var",
				Description: "Modern JavaScript prefers let or const over var for better scoping.",
				Line:        n,
				Severity:    types.SeverityLow,
			})
		}

		if strings.Contains(t, "console.log") {
			issues = append(issues, types.Issue{
				Kind:        types.KindInfo,
				Title:       "Console.log found",
				Description: "Consider removing console.log statements before production.",
				Line:        n,
				Severity:    types.SeverityLow,
			})
		}

		if strings.Contains(t, "function ") && !strings.Contains(t, "function*") {
			issues = append(issues, types.Issue{
				Kind:        types.KindSuggestion,
				Title:       "Consider using arrow function",
				Description: "Arrow functions provide more concise syntax and lexical this binding.",
				Line:        n,
				Severity:    types.SeverityLow,
			})
		}
	}

	return issues
}

// ecmaMissingSemicolon applies every exclusion first and only then asks whether
// the line looks like an assignment or a return.
func ecmaMissingSemicolon(t string) bool {
	if t == "" || hasAnySuffix(t, ";", "{", "}") || isLineComment(t) {
		return false
	}
	if containsAny(t, ecmaControlMarkers...) {
		return false
	}
	return strings.Contains(t, "=") || strings.HasPrefix(t, "return ")
}

func isLineComment(t string) bool {
	return strings.HasPrefix(t, "//") || strings.HasPrefix(t, "/*")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
