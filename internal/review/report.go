package review

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agusespa/codesift/internal/types"
	"github.com/agusespa/codesift/internal/utils"
)

// ReportGenerator renders reviews as a markdown document. Sources maps a
// review path to the code it was produced from and is used for excerpts.
type ReportGenerator struct {
	Sources map[string]string
}

func NewReportGenerator(sources map[string]string) *ReportGenerator {
	if sources == nil {
		sources = map[string]string{}
	}
	return &ReportGenerator{Sources: sources}
}

func (r *ReportGenerator) GenerateMarkdownReport(reviews []*types.Review) string {
	var b strings.Builder
	b.WriteString("# Code Review Report\n\n")

	var all []types.Issue
	for _, rv := range reviews {
		all = append(all, rv.Issues...)
		r.writeReview(&b, rv)
	}

	counts := types.CountByKind(all)
	fmt.Fprintf(&b, "\n**Summary:** %d errors, %d warnings, %d suggestions, %d info\n",
		counts[types.KindError], counts[types.KindWarning], counts[types.KindSuggestion], counts[types.KindInfo])

	return b.String()
}

func (r *ReportGenerator) writeReview(b *strings.Builder, rv *types.Review) {
	fmt.Fprintf(b, "## `%s`\n", displayPath(rv.Path))
	if rv.Language != "" {
		fmt.Fprintf(b, "**Language:** %s\n", rv.Language)
	}
	fmt.Fprintf(b, "**Score:** %d/100 (%s)\n", rv.OverallScore, rv.Source)
	if rv.Explanation != "" {
		fmt.Fprintf(b, "**Explanation:** %s\n", rv.Explanation)
	}
	b.WriteString("\n")

	if len(rv.Issues) == 0 {
		b.WriteString("No issues found.\n\n---\n\n")
		return
	}

	lines := strings.Split(r.Sources[rv.Path], "\n")
	fence := utils.DetectLanguageFromFilePath(rv.Path)
	if fence == "" {
		fence = rv.Language
	}

	for _, issue := range rv.Issues {
		fmt.Fprintf(b, "### %s %s: %s\n", kindIcon(issue.Kind), issue.Kind, issue.Title)
		if issue.Line > 0 {
			fmt.Fprintf(b, "**Location:** Line %d\n", issue.Line)
		} else {
			b.WriteString("**Location:** File\n")
		}
		fmt.Fprintf(b, "**Severity:** %s\n\n", issue.Severity)
		b.WriteString(issue.Description + "\n\n")

		if _, ok := r.Sources[rv.Path]; ok && issue.Line > 0 && issue.Line <= len(lines) {
			fmt.Fprintf(b, "```%s\n%s\n```\n\n", fence, lines[issue.Line-1])
		}
	}
	b.WriteString("---\n\n")
}

func kindIcon(kind types.IssueKind) string {
	switch kind {
	case types.KindError:
		return "🔴"
	case types.KindWarning:
		return "🟡"
	case types.KindSuggestion:
		return "🔵"
	default:
		return "⚪️"
	}
}

var (
	headingStyle    = lipgloss.NewStyle().Bold(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warningStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	mutedStyle      = lipgloss.NewStyle().Faint(true)
	passStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// PrintSummary writes a short terminal summary. reportPath is mentioned only
// when a report was written.
func PrintSummary(w io.Writer, reviews []*types.Review, reportPath string) {
	var all []types.Issue
	for _, rv := range reviews {
		all = append(all, rv.Issues...)
	}
	counts := types.CountByKind(all)

	fmt.Fprintln(w, "---")
	if len(all) == 0 {
		fmt.Fprintln(w, passStyle.Render("✅ Code review passed - no issues found"))
	} else {
		fmt.Fprintf(w, "%s %s, %s, %s, %s\n",
			headingStyle.Render("⚠️ Code review didn't pass -"),
			errorStyle.Render(fmt.Sprintf("%d errors", counts[types.KindError])),
			warningStyle.Render(fmt.Sprintf("%d warnings", counts[types.KindWarning])),
			suggestionStyle.Render(fmt.Sprintf("%d suggestions", counts[types.KindSuggestion])),
			mutedStyle.Render(fmt.Sprintf("%d info", counts[types.KindInfo])))
	}
	if reportPath != "" {
		fmt.Fprintf(w, "💾 Detailed report saved to %s\n", reportPath)
	}
}
