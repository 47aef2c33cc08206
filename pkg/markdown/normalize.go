package markdown

import (
	"regexp"
	"strings"
)

var excessBlankLines = regexp.MustCompile(`\n{3,}`)

// Normalize cleans up model output while preserving markdown formatting:
// line endings become plain LF, runs of 3+ newlines collapse to a single
// blank line, and surrounding whitespace is trimmed. Idempotent.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = excessBlankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
