package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agusespa/codesift/internal/types"
)

func TestParseAnalysisFromResponse_ValidJSON(t *testing.T) {
	reply := `{
		"issues": [
			{
				"type": "error",
				"title": "Null dereference",
				"description": "user may be nil",
				"line": 5,
				"severity": "high"
			}
		],
		"overallScore": 82,
		"explanation": "Mostly fine"
	}`

	analysis, err := ParseAnalysisFromResponse(reply)
	require.NoError(t, err)

	require.Len(t, analysis.Issues, 1)
	assert.Equal(t, types.Issue{
		Kind:        types.KindError,
		Title:       "Null dereference",
		Description: "user may be nil",
		Line:        5,
		Severity:    types.SeverityHigh,
	}, analysis.Issues[0])
	assert.Equal(t, 82, analysis.OverallScore)
	assert.Equal(t, "Mostly fine", analysis.Explanation)
}

func TestParseAnalysisFromResponse_JSONWithText(t *testing.T) {
	reply := `Here is my review:

{"issues": [], "overallScore": 95, "explanation": "Clean"}

Let me know if you need more.`

	analysis, err := ParseAnalysisFromResponse(reply)
	require.NoError(t, err)
	assert.Empty(t, analysis.Issues)
	assert.Equal(t, 95, analysis.OverallScore)
	assert.Equal(t, "Clean", analysis.Explanation)
}

func TestParseAnalysisFromResponse_CodeBlock(t *testing.T) {
	reply := "Result:\n```json\n" +
		`{"issues": [{"type": "warning", "title": "Shadowed variable", "description": "x", "severity": "medium"}], "overallScore": 88}` +
		"\n```\nThat's {all}."

	analysis, err := ParseAnalysisFromResponse(reply)
	require.NoError(t, err)
	require.Len(t, analysis.Issues, 1)
	assert.Equal(t, types.KindWarning, analysis.Issues[0].Kind)
	assert.Equal(t, 0, analysis.Issues[0].Line)
	assert.Equal(t, 88, analysis.OverallScore)
	assert.Equal(t, "Analysis completed", analysis.Explanation)
}

func TestParseAnalysisFromResponse_Sanitizes(t *testing.T) {
	tests := []struct {
		name          string
		reply         string
		expectedScore int
		expectedCount int
	}{
		{"score above range", `{"issues": [], "overallScore": 140}`, 100, 0},
		{"score below range", `{"issues": [], "overallScore": -3}`, 0, 0},
		{"fractional score", `{"issues": [], "overallScore": 72.6}`, 73, 0},
		{"score as string", `{"issues": [], "overallScore": "90"}`, 50, 0},
		{"missing score", `{"issues": []}`, 50, 0},
		{"issues not an array", `{"issues": "none", "overallScore": 60}`, 60, 0},
		{"missing issues", `{"overallScore": 60}`, 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := ParseAnalysisFromResponse(tt.reply)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedScore, analysis.OverallScore)
			assert.Len(t, analysis.Issues, tt.expectedCount)
			assert.NotNil(t, analysis.Issues)
		})
	}
}

func TestParseAnalysisFromResponse_NormalizesIssueFields(t *testing.T) {
	reply := `{"issues": [
		{"type": "ERROR", "title": "a", "severity": "HIGH", "line": 3},
		{"type": "bug", "title": "b", "severity": "critical", "line": -1}
	], "overallScore": 70}`

	analysis, err := ParseAnalysisFromResponse(reply)
	require.NoError(t, err)
	require.Len(t, analysis.Issues, 2)

	assert.Equal(t, types.KindError, analysis.Issues[0].Kind)
	assert.Equal(t, types.SeverityHigh, analysis.Issues[0].Severity)
	assert.Equal(t, 3, analysis.Issues[0].Line)

	assert.Equal(t, types.KindInfo, analysis.Issues[1].Kind)
	assert.Equal(t, types.SeverityLow, analysis.Issues[1].Severity)
	assert.Equal(t, 0, analysis.Issues[1].Line)
}

func TestParseAnalysisFromResponse_MalformedEntryKeepsOthers(t *testing.T) {
	reply := `{"issues": [
		{"type": "error", "title": "Null dereference", "description": "x may be nil", "line": 3, "severity": "high"},
		{"type": "warning", "title": "Unused variable", "description": "y is never read", "line": "7", "severity": "medium"},
		"not an object",
		{"type": 5, "title": ["t"], "description": "wrong types", "line": 2, "severity": null}
	], "overallScore": 60}`

	analysis, err := ParseAnalysisFromResponse(reply)
	require.NoError(t, err)
	assert.False(t, analysis.Degraded)
	assert.Equal(t, 60, analysis.OverallScore)

	assert.Equal(t, []types.Issue{
		{Kind: types.KindError, Title: "Null dereference", Description: "x may be nil", Line: 3, Severity: types.SeverityHigh},
		{Kind: types.KindWarning, Title: "Unused variable", Description: "y is never read", Severity: types.SeverityMedium},
		{Kind: types.KindInfo, Description: "wrong types", Line: 2, Severity: types.SeverityLow},
	}, analysis.Issues)
}

func TestParseAnalysisFromResponse_LineBounds(t *testing.T) {
	tests := []struct {
		line     string
		expected int
	}{
		{"12", 12},
		{"1e20", 0},
		{"1000001", 0},
		{"0", 0},
		{"2.9", 2},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			reply := `{"issues": [{"type": "info", "title": "t", "line": ` + tt.line + `}], "overallScore": 90}`

			analysis, err := ParseAnalysisFromResponse(reply)
			require.NoError(t, err)
			require.Len(t, analysis.Issues, 1)
			assert.Equal(t, tt.expected, analysis.Issues[0].Line)
		})
	}
}

func TestParseAnalysisFromResponse_FreeText(t *testing.T) {
	reply := "The code looks reasonable overall, but consider adding tests."

	analysis, err := ParseAnalysisFromResponse(reply)
	require.NoError(t, err)

	require.Len(t, analysis.Issues, 1)
	assert.Equal(t, "AI Analysis Available", analysis.Issues[0].Title)
	assert.Equal(t, types.KindInfo, analysis.Issues[0].Kind)
	assert.Equal(t, reply, analysis.Issues[0].Description)
	assert.Equal(t, 75, analysis.OverallScore)
	assert.Equal(t, "AI provided text analysis instead of structured data", analysis.Explanation)
	assert.True(t, analysis.Degraded)
}

func TestParseAnalysisFromResponse_BrokenJSONDegrades(t *testing.T) {
	reply := strings.Repeat("x", 600) + ` {"issues": [ }`

	analysis, err := ParseAnalysisFromResponse(reply)
	require.NoError(t, err)
	require.Len(t, analysis.Issues, 1)
	assert.Equal(t, strings.Repeat("x", 500)+"...", analysis.Issues[0].Description)
}

func TestParseAnalysisFromResponse_Empty(t *testing.T) {
	_, err := ParseAnalysisFromResponse("   ")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestDecodeAnalysis_FormatViolation(t *testing.T) {
	_, err := decodeAnalysis("no json here")
	require.Error(t, err)
	assert.True(t, IsFormatViolation(err))
	assert.Contains(t, err.Error(), "no JSON found in AI response")
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`{"a": 1}`, `{"a": 1}`},
		{`Text before {"a": {"b": 2}} text after`, `{"a": {"b": 2}}`},
		{`No JSON here`, ``},
		{"} backwards {", ``},
		{"Code block:\n```\n" + `{"a": 1}` + "\n```\nEnd", `{"a": 1}`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, extractJSON(tt.input), "input %q", tt.input)
	}
}
