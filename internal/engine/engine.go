// Package engine is the offline, rule-based code analyzer. It scans source
// line by line with pattern heuristics instead of parsing, so its findings are
// approximate by nature. It never performs I/O and keeps no state between calls,
// which makes Analyze safe to call concurrently.
package engine

import "github.com/agusespa/codesift/internal/types"

// Analyze runs the rule set selected by language over source and scores the result.
func Analyze(source, language string) types.AnalysisResult {
	lines := SplitLines(source)
	issues := RuleSetFor(language).run(lines)
	if issues == nil {
		issues = []types.Issue{}
	}

	return types.AnalysisResult{
		Issues:       issues,
		OverallScore: Score(issues),
	}
}
