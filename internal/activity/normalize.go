package activity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NormalizationError reports that a completion could not be coerced into
// valid JSON. Attempted holds the text given to the final parse so the
// failure can be logged and diagnosed.
type NormalizationError struct {
	Attempted string
	Err       error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("could not parse activity JSON: %v", e.Err)
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}

// Normalize coerces raw model output into a Parsed activity. It applies
// only cheap deterministic heuristics, in order: trim, code-fence strip,
// strict parse, then a single quote-repair retry. Anything the heuristics
// cannot handle is a NormalizationError; there is no generic JSON repair.
func Normalize(raw string) (Parsed, error) {
	text := strings.TrimSpace(raw)
	text = stripFences(text)

	var parsed Parsed
	if err := json.Unmarshal([]byte(text), &parsed); err == nil {
		return parsed, nil
	} else if !strings.Contains(text, "'") || strings.Contains(text, `"`) {
		return nil, &NormalizationError{Attempted: text, Err: err}
	}

	// The model sometimes emits Python-style literals. Swapping quotes is
	// only safe when no double quotes exist to collide with.
	repaired := strings.ReplaceAll(text, "'", `"`)
	if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
		return nil, &NormalizationError{Attempted: repaired, Err: err}
	}
	return parsed, nil
}

// stripFences extracts the content between the first pair of triple
// backticks when the text starts with a fence, tolerating a "json" tag.
func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	body := strings.TrimPrefix(text, "```")
	body = strings.TrimPrefix(body, "json")
	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}
