package engine

import "github.com/agusespa/codesift/internal/types"

const (
	maxScore          = 100
	errorPenalty      = 15
	warningPenalty    = 8
	suggestionPenalty = 3
)

// Score maps an issue list to a quality score in [0, 100]. Only the number of
// issues per kind matters; info issues are free.
func Score(issues []types.Issue) int {
	counts := types.CountByKind(issues)

	score := maxScore
	score -= counts[types.KindError] * errorPenalty
	score -= counts[types.KindWarning] * warningPenalty
	score -= counts[types.KindSuggestion] * suggestionPenalty

	return max(0, min(maxScore, score))
}
