package normalization

import (
	"strings"
)

func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// TrimInputString keeps case; used for free-text fields like messages and
// vocabulary words where case is meaningful.
func TrimInputString(input string) string {
	return strings.TrimSpace(input)
}
