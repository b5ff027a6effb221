package utils

import (
	"encoding/json"
	"regexp"
	"strings"
)

// RepairOutcome records how far the repair pipeline had to go to turn an
// LLM answer into usable JSON.
type RepairOutcome int

const (
	// RepairParsed means the extracted object parsed as-is.
	RepairParsed RepairOutcome = iota
	// RepairRepaired means structural fixes were needed before parsing.
	RepairRepaired
	// RepairFellBack means no valid JSON could be recovered.
	RepairFellBack
)

func (o RepairOutcome) String() string {
	switch o {
	case RepairParsed:
		return "parsed"
	case RepairRepaired:
		return "repaired"
	default:
		return "fell_back"
	}
}

var trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)

// StripCodeFences removes Markdown code-fence markers the model tends to
// wrap JSON answers in.
func StripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ExtractJSONObject pulls a JSON object out of free-form model output.
// It strips code fences, cuts the substring from the first "{" to the last
// "}", and parses; on failure it applies RepairJSON and tries once more.
// The returned outcome tells the caller whether to trust the result or
// substitute a fallback payload.
func ExtractJSONObject(raw string) (string, RepairOutcome) {
	cleaned := StripCodeFences(raw)

	candidate := cleaned
	if start := strings.Index(cleaned, "{"); start >= 0 {
		if end := strings.LastIndex(cleaned, "}"); end > start {
			candidate = cleaned[start : end+1]
		} else {
			candidate = cleaned[start:]
		}
	}

	if json.Valid([]byte(candidate)) {
		return candidate, RepairParsed
	}

	repaired := RepairJSON(candidate)
	if json.Valid([]byte(repaired)) {
		return repaired, RepairRepaired
	}

	return "", RepairFellBack
}

// RepairJSON applies the structural fixes that cover the defects seen in
// practice: trailing commas before a closing brace/bracket, and truncated
// output missing its closers. Open scopes are tracked with a stack so
// closers are appended in nesting order; a string cut off mid-value is
// terminated first. Callers must re-validate the result.
func RepairJSON(s string) string {
	s = trailingCommaPattern.ReplaceAllString(s, "$1")

	var stack []byte
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}':
			if n := len(stack); n > 0 && stack[n-1] == '{' {
				stack = stack[:n-1]
			}
		case ']':
			if n := len(stack); n > 0 && stack[n-1] == '[' {
				stack = stack[:n-1]
			}
		}
	}

	if inString {
		s += `"`
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			s += "}"
		} else {
			s += "]"
		}
	}

	return s
}
