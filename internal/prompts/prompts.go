package prompts

import (
	"fmt"
	"strings"
	"text/template"
)

type PromptData struct {
	Language string
	Code     string
}

var templates = template.Must(template.New("prompts").Parse(systemPromptTemplate))

func init() {
	template.Must(templates.New("user").Parse(userPromptTemplate))
}

// BuildSystemPrompt returns the reviewer instructions and the JSON contract
// the reply has to follow.
func BuildSystemPrompt(language string) (string, error) {
	return execute("prompts", PromptData{Language: language})
}

// BuildUserPrompt wraps the code under review in a fenced block.
func BuildUserPrompt(language, code string) (string, error) {
	return execute("user", PromptData{Language: language, Code: code})
}

func execute(name string, data PromptData) (string, error) {
	var result strings.Builder
	if err := templates.ExecuteTemplate(&result, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return result.String(), nil
}

const systemPromptTemplate = `You are an expert code reviewer and analyzer. Analyze the provided {{.Language}} code and identify:

1. Syntax errors (high severity)
2. Logic errors and bugs (high/medium severity)
3. Performance issues (medium severity)
4. Code style and best practices (low severity)
5. Security vulnerabilities (high severity)
6. Maintainability concerns (medium/low severity)

For each issue found, provide:
- Type: "error", "warning", "suggestion", or "info"
- Title: Brief issue name
- Description: Detailed explanation and how to fix
- Line number (if applicable)
- Severity: "high", "medium", or "low"

Also provide an overall code quality score from 0-100 and a brief explanation.

Respond in JSON format:
{
  "issues": [
    {
      "type": "error|warning|suggestion|info",
      "title": "Issue title",
      "description": "Detailed description and fix suggestion",
      "line": 5,
      "severity": "high|medium|low"
    }
  ],
  "overallScore": 85,
  "explanation": "Brief overall assessment"
}`

const userPromptTemplate = "Please analyze this {{.Language}} code:\n\n```{{.Language}}\n{{.Code}}\n```"
