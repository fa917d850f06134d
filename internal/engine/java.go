package engine

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agusespa/codesift/internal/types"
)

var (
	javaReturnTypes = []string{"int ", "String ", "void ", "boolean ", "double ", "float "}

	javaStructuralKeywords = []string{
		"class ", "public static", "private static", "protected static",
		"if (", "for (", "while (", "else", "try", "catch", "finally",
	}

	javaCallSite = regexp.MustCompile(`\w+\s*\(`)
)

const (
	javaLoopLookahead   = 3
	suffixArrayBugMatch = "suffixMax[0] = arr[n-1]"
)

// methodTracker follows a single open method body. It lives for one pass
// over one source and cannot represent nested methods: an inner declaration
// restarts tracking and the outer method is forgotten.
type methodTracker struct {
	open      bool
	startLine int
	nonVoid   bool
	hasReturn bool
	balance   int
}

func (m *methodTracker) start(line Line) {
	m.open = true
	m.startLine = line.Number()
	m.nonVoid = !strings.Contains(line.Trimmed, "void")
	m.hasReturn = false
	m.balance = 0
}

// step feeds one line into an open method and reports the method start line
// when the body closed without a return in a non-void method.
func (m *methodTracker) step(line Line) (missingReturnAt int, missing bool) {
	if !m.open {
		return 0, false
	}

	m.balance += strings.Count(line.Raw, "{")
	m.balance -= strings.Count(line.Raw, "}")

	if strings.Contains(line.Trimmed, "return ") {
		m.hasReturn = true
	}

	if m.balance > 0 {
		return 0, false
	}

	missingReturnAt, missing = m.startLine, m.nonVoid && !m.hasReturn
	m.open = false
	m.startLine = 0
	return missingReturnAt, missing
}

func isJavaMethodDeclaration(t string) bool {
	return strings.Contains(t, "public ") && containsAny(t, javaReturnTypes...) && strings.Contains(t, "(")
}

func analyzeJava(lines []Line) []types.Issue {
	var issues []types.Issue
	var tracker methodTracker
	opens, closes := 0, 0

	for i, line := range lines {
		t := line.Trimmed
		n := line.Number()

		if isJavaMethodDeclaration(t) {
			tracker.start(line)
		}

		if at, missing := tracker.step(line); missing {
			issues = append(issues, types.Issue{
				Kind:        types.KindError,
				Title:       "Missing return statement",
				Description: "Non-void method must have a return statement",
				Line:        at,
				Severity:    types.SeverityHigh,
			})
		}

		if isPotentialInfiniteLoop(lines, i) {
			issues = append(issues, types.Issue{
				Kind:        types.KindError,
				Title:       "Potential infinite loop",
				Description: "While loop may not have proper termination condition or loop variable modification",
				Line:        n,
				Severity:    types.SeverityHigh,
			})
		}

		if strings.Contains(t, suffixArrayBugMatch) {
			issues = append(issues, types.Issue{
				Kind:        types.KindError,
				Title:       "Array index error",
				Description: "Should be suffixMax[n-1] = arr[n-1] for suffix array initialization",
				Line:        n,
				Severity:    types.SeverityHigh,
			})
		}

		opens += strings.Count(line.Raw, "{")
		closes += strings.Count(line.Raw, "}")

		if javaMissingSemicolon(t) {
			issues = append(issues, types.Issue{
				Kind:        types.KindError,
				Title:       "Missing semicolon",
				Description: "Java statements must end with a semicolon",
				Line:        n,
				Severity:    types.SeverityHigh,
			})
		}

		if name, ok := javaClassName(t); ok && startsLower(name) {
			issues = append(issues, types.Issue{
				Kind:        types.KindWarning,
				Title:       "Class naming convention",
				Description: "Class names should start with an uppercase letter (PascalCase).",
				Line:        n,
				Severity:    types.SeverityMedium,
			})
		}

		if strings.Contains(t, "System.out.println") {
			issues = append(issues, types.Issue{
				Kind:        types.KindInfo,
				Title:       "System.out.println found",
				Description: "Consider using a logging framework instead of System.out.println.",
				Line:        n,
				Severity:    types.SeverityLow,
			})
		}
	}

	if opens > closes {
		issues = append(issues, types.Issue{
			Kind:        types.KindError,
			Title:       "Missing closing brace",
			Description: "One or more methods/classes are missing closing braces",
			Line:        len(lines),
			Severity:    types.SeverityHigh,
		})
	}

	return issues
}

// isPotentialInfiniteLoop flags a while( line with no visible counter update
// when none of the next three lines step, break or return either.
func isPotentialInfiniteLoop(lines []Line, i int) bool {
	t := lines[i].Trimmed
	if !strings.Contains(t, "while(") || containsAny(t, "++", "--", "i+", "i-") {
		return false
	}

	end := min(len(lines), i+1+javaLoopLookahead)
	window := make([]string, 0, javaLoopLookahead)
	for _, next := range lines[i+1 : end] {
		window = append(window, next.Raw)
	}
	body := strings.Join(window, " ")

	return !containsAny(body, "++", "--", "break", "return")
}

func javaMissingSemicolon(t string) bool {
	if t == "" || isLineComment(t) || strings.HasPrefix(t, "*") {
		return false
	}
	if hasAnySuffix(t, "{", "}", ";") || containsAny(t, javaStructuralKeywords...) {
		return false
	}
	return containsAny(t, "System.out.println", "=", "return") || javaCallSite.MatchString(t)
}

// javaClassName returns the token after the first "class ", cut at the next
// whitespace or opening brace.
func javaClassName(t string) (string, bool) {
	parts := strings.Split(t, "class ")
	if len(parts) < 2 {
		return "", false
	}
	name := parts[1]
	if end := strings.IndexFunc(name, func(r rune) bool { return unicode.IsSpace(r) || r == '{' }); end >= 0 {
		name = name[:end]
	}
	return name, name != ""
}

func startsLower(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return r != utf8.RuneError && unicode.ToUpper(r) != r
}
