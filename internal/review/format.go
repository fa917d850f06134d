package review

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/agusespa/codesift/internal/types"
)

type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatMarkdown:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or markdown)", s)
}

// Write renders reviews to w. A single review is emitted as a bare JSON
// object so the output matches the HTTP response body.
func Write(w io.Writer, format Format, reviews []*types.Review, sources map[string]string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(reviews) == 1 {
			return enc.Encode(reviews[0])
		}
		return enc.Encode(reviews)
	case FormatMarkdown:
		_, err := io.WriteString(w, NewReportGenerator(sources).GenerateMarkdownReport(reviews))
		return err
	default:
		return writeText(w, reviews)
	}
}

func writeText(w io.Writer, reviews []*types.Review) error {
	for _, rv := range reviews {
		if _, err := fmt.Fprintf(w, "%s  score %d/100  [%s]\n", headingStyle.Render(displayPath(rv.Path)), rv.OverallScore, rv.Source); err != nil {
			return err
		}
		if rv.Explanation != "" {
			fmt.Fprintf(w, "  %s\n", mutedStyle.Render(rv.Explanation))
		}
		for _, issue := range rv.Issues {
			location := "file"
			if issue.Line > 0 {
				location = fmt.Sprintf("line %d", issue.Line)
			}
			fmt.Fprintf(w, "  %s %-10s %-8s %s: %s\n", kindIcon(issue.Kind), issue.Kind, location, issue.Title, issue.Description)
		}
	}
	return nil
}
