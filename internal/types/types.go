package types

// IssueKind is the coarse category of an issue. It drives the scoring weight.
type IssueKind string

const (
	KindError      IssueKind = "error"
	KindWarning    IssueKind = "warning"
	KindSuggestion IssueKind = "suggestion"
	KindInfo       IssueKind = "info"
)

func (k IssueKind) Valid() bool {
	switch k {
	case KindError, KindWarning, KindSuggestion, KindInfo:
		return true
	}
	return false
}

// Severity is used for display emphasis only.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Issue represents a single flagged observation about the analyzed code.
// Line is 1-based; zero means the issue refers to the whole file.
type Issue struct {
	Kind        IssueKind `json:"type" yaml:"type"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Line        int       `json:"line,omitempty" yaml:"line,omitempty"`
	Severity    Severity  `json:"severity" yaml:"severity"`
}

// AnalysisResult is the outcome of one analysis run, heuristic or AI.
// Issues keep detection order.
type AnalysisResult struct {
	Issues       []Issue `json:"issues"`
	OverallScore int     `json:"overallScore"`
}

// AIAnalysis is the shape returned by the AI collaborator.
// Degraded is set when the reply carried no usable JSON and was kept as text.
type AIAnalysis struct {
	AnalysisResult
	Explanation string `json:"explanation"`
	Degraded    bool   `json:"-"`
}

// Source labels where a review result came from.
type Source string

const (
	SourceAI        Source = "ai"
	SourceHeuristic Source = "heuristic"
)

// Review is the labelled outcome returned to users of the review service.
type Review struct {
	AnalysisResult
	Explanation string `json:"explanation"`
	Source      Source `json:"source"`
	Language    string `json:"language,omitempty"`
	Path        string `json:"path,omitempty"`
}

// CountByKind tallies issues per kind.
func CountByKind(issues []Issue) map[IssueKind]int {
	counts := make(map[IssueKind]int, 4)
	for _, issue := range issues {
		counts[issue.Kind]++
	}
	return counts
}
