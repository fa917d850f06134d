package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/agusespa/codesift/internal/types"
)

const (
	defaultAIScore       = 50
	degradedAIScore      = 75
	degradedExcerptLimit = 500
	defaultExplanation   = "Analysis completed"
	degradedExplanation  = "AI provided text analysis instead of structured data"
)

var ErrEmptyResponse = errors.New("no response from AI")

type FormatViolationError struct {
	Response string
	Reason   string
}

func (e *FormatViolationError) Error() string {
	return fmt.Sprintf("format violation: %s. Response: %s", e.Reason, e.Response)
}

func IsFormatViolation(err error) bool {
	var violation *FormatViolationError
	return errors.As(err, &violation)
}

type rawAnalysis struct {
	Issues       json.RawMessage `json:"issues"`
	OverallScore json.RawMessage `json:"overallScore"`
	Explanation  json.RawMessage `json:"explanation"`
}

type rawIssue struct {
	Type        json.RawMessage `json:"type"`
	Title       json.RawMessage `json:"title"`
	Description json.RawMessage `json:"description"`
	Line        json.RawMessage `json:"line"`
	Severity    json.RawMessage `json:"severity"`
}

// maxIssueLine bounds model-supplied line numbers; anything larger is treated
// as file-level.
const maxIssueLine = 1_000_000

// ParseAnalysisFromResponse turns a model reply into an analysis. Replies that
// carry no usable JSON object still produce a single-issue result with
// Degraded set.
func ParseAnalysisFromResponse(reply string) (types.AIAnalysis, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return types.AIAnalysis{}, ErrEmptyResponse
	}

	analysis, err := decodeAnalysis(reply)
	if err != nil {
		if IsFormatViolation(err) {
			return degradedAnalysis(reply), nil
		}
		return types.AIAnalysis{}, err
	}

	return analysis, nil
}

// decodeAnalysis decodes the JSON object embedded in reply. Fields with the
// wrong shape fall back to their defaults.
func decodeAnalysis(reply string) (types.AIAnalysis, error) {
	jsonContent := extractJSON(reply)
	if jsonContent == "" {
		return types.AIAnalysis{}, &FormatViolationError{
			Response: truncateString(reply, degradedExcerptLimit),
			Reason:   "no JSON found in AI response",
		}
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(jsonContent), &raw); err != nil {
		return types.AIAnalysis{}, &FormatViolationError{
			Response: truncateString(reply, degradedExcerptLimit),
			Reason:   err.Error(),
		}
	}

	return types.AIAnalysis{
		AnalysisResult: types.AnalysisResult{
			Issues:       decodeIssues(raw.Issues),
			OverallScore: decodeScore(raw.OverallScore),
		},
		Explanation: decodeExplanation(raw.Explanation),
	}, nil
}

// degradedAnalysis wraps free-form model text as a single informational issue.
func degradedAnalysis(reply string) types.AIAnalysis {
	return types.AIAnalysis{
		AnalysisResult: types.AnalysisResult{
			Issues: []types.Issue{{
				Kind:        types.KindInfo,
				Title:       "AI Analysis Available",
				Description: truncateString(reply, degradedExcerptLimit),
				Severity:    types.SeverityLow,
			}},
			OverallScore: degradedAIScore,
		},
		Explanation: degradedExplanation,
		Degraded:    true,
	}
}

// decodeIssues decodes entries one at a time so a malformed entry only loses
// the fields it got wrong. Entries that are not objects are skipped.
func decodeIssues(data json.RawMessage) []types.Issue {
	var entries []json.RawMessage
	if len(data) == 0 || json.Unmarshal(data, &entries) != nil {
		return []types.Issue{}
	}

	issues := make([]types.Issue, 0, len(entries))
	for _, entry := range entries {
		var r rawIssue
		if json.Unmarshal(entry, &r) != nil {
			continue
		}

		issue := types.Issue{
			Kind:        types.IssueKind(strings.ToLower(decodeString(r.Type))),
			Title:       decodeString(r.Title),
			Description: decodeString(r.Description),
			Line:        decodeLine(r.Line),
			Severity:    types.Severity(strings.ToLower(decodeString(r.Severity))),
		}
		if !issue.Kind.Valid() {
			issue.Kind = types.KindInfo
		}
		if !issue.Severity.Valid() {
			issue.Severity = types.SeverityLow
		}
		issues = append(issues, issue)
	}
	return issues
}

func decodeString(data json.RawMessage) string {
	var s string
	if len(data) == 0 || json.Unmarshal(data, &s) != nil {
		return ""
	}
	return s
}

// decodeLine returns 0 (file-level) for anything that is not a number within
// [1, maxIssueLine].
func decodeLine(data json.RawMessage) int {
	var line float64
	if len(data) == 0 || json.Unmarshal(data, &line) != nil {
		return 0
	}
	if line < 1 || line > maxIssueLine {
		return 0
	}
	return int(line)
}

func decodeScore(data json.RawMessage) int {
	var score float64
	if len(data) == 0 || json.Unmarshal(data, &score) != nil {
		return defaultAIScore
	}
	return int(math.Round(math.Max(0, math.Min(100, score))))
}

func decodeExplanation(data json.RawMessage) string {
	var explanation string
	if len(data) == 0 || json.Unmarshal(data, &explanation) != nil || explanation == "" {
		return defaultExplanation
	}
	return explanation
}

// extractJSON returns the span from the first '{' to the last '}', preferring
// the contents of a fenced code block when the reply has one.
func extractJSON(response string) string {
	response = strings.TrimSpace(response)

	if strings.Contains(response, "```") {
		if extracted := extractFromCodeBlock(response); strings.HasPrefix(extracted, "{") {
			response = extracted
		}
	}

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end < start {
		return ""
	}

	return response[start : end+1]
}

func extractFromCodeBlock(response string) string {
	lines := strings.Split(response, "\n")
	inCodeBlock := false
	var jsonLines []string

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			if inCodeBlock {
				break
			}
			inCodeBlock = true
			continue
		}
		if inCodeBlock {
			jsonLines = append(jsonLines, line)
		}
	}

	return strings.TrimSpace(strings.Join(jsonLines, "\n"))
}

func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
