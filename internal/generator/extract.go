package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
)

// ErrNoJSON means the response text contained no JSON object at all.
var ErrNoJSON = errors.New("no JSON object found in response")

// MalformedJSONError means a JSON-looking span was found but did not parse,
// even after stripping markdown code fences.
type MalformedJSONError struct {
	Err error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed JSON in response: %v", e.Err)
}

func (e *MalformedJSONError) Unwrap() error { return e.Err }

// ExtractJSON pulls the first JSON object out of free-form LLM text and
// unmarshals it into v. The span runs from the first '{' to the last '}'.
// On a strict-parse failure the markdown code fences are stripped and the
// parse is retried once. That retry is the maximum tolerated repair; anything
// worse should surface as provider format drift, not be papered over.
func ExtractJSON(text string, v any) error {
	fragment, ok := braceSpan(text)
	if !ok {
		return ErrNoJSON
	}

	if err := json.Unmarshal([]byte(fragment), v); err == nil {
		return nil
	}

	cleaned, ok := braceSpan(stripCodeFences(text))
	if ok {
		if err := json.Unmarshal([]byte(cleaned), v); err == nil {
			return nil
		}
	}

	err := json.Unmarshal([]byte(fragment), v)
	log.Printf("WARNING: unparseable JSON fragment: %.200s", fragment)
	return &MalformedJSONError{Err: err}
}

// braceSpan returns the greedy first-'{' to last-'}' span of s.
func braceSpan(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}

func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
