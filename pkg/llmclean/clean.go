// Package llmclean strips reasoning blocks and markup from raw model output
// and isolates the JSON payload the caller expects.
package llmclean

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	thinkBlockRe = regexp.MustCompile(`(?s)<think>.*?</think>`)
	fenceRe      = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)\\s*```")
)

// StripReasoning drops <think> blocks and surrounding whitespace, leaving
// free text untouched otherwise.
func StripReasoning(raw string) string {
	return strings.TrimSpace(thinkBlockRe.ReplaceAllString(raw, ""))
}

// Clean returns the best-effort JSON substring of raw.
//
// Reasoning blocks are dropped first. A fenced code block wins over
// everything else; otherwise the span from the first opening brace/bracket
// to the last closing one is returned when it is valid JSON. Anything else
// comes back trimmed. Clean never fails.
func Clean(raw string) string {
	text := thinkBlockRe.ReplaceAllString(raw, "")

	trimmed := strings.TrimSpace(text)
	if trimmed != "" && json.Valid([]byte(trimmed)) {
		return trimmed
	}

	if m := fenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	if candidate, ok := jsonSpan(text); ok {
		return candidate
	}

	return trimmed
}

// jsonSpan returns text between the first '{' or '[' and the last '}' or ']'
// when that span parses as JSON.
func jsonSpan(text string) (string, bool) {
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return "", false
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return "", false
	}
	candidate := strings.TrimSpace(text[start : end+1])
	if !json.Valid([]byte(candidate)) {
		return "", false
	}
	return candidate, true
}
