package engine

import "github.com/agusespa/codesift/internal/types"

// RuleSet identifies one of the language rule sets.
type RuleSet int

const (
	RuleSetGeneral RuleSet = iota
	RuleSetECMA
	RuleSetPython
	RuleSetJava
)

func (r RuleSet) String() string {
	switch r {
	case RuleSetECMA:
		return "ecma"
	case RuleSetPython:
		return "python"
	case RuleSetJava:
		return "java"
	default:
		return "general"
	}
}

// RuleSetFor maps a free-form language identifier to its rule set.
// Unknown identifiers fall back to the general rules.
func RuleSetFor(language string) RuleSet {
	switch language {
	case "javascript", "typescript":
		return RuleSetECMA
	case "python":
		return RuleSetPython
	case "java":
		return RuleSetJava
	default:
		return RuleSetGeneral
	}
}

func (r RuleSet) run(lines []Line) []types.Issue {
	switch r {
	case RuleSetECMA:
		return analyzeECMA(lines)
	case RuleSetPython:
		return analyzePython(lines)
	case RuleSetJava:
		return analyzeJava(lines)
	default:
		return analyzeGeneral(lines)
	}
}
