package docparse

import (
	"regexp"
	"strings"
)

// SeedResult holds the structured fields extracted from an import/improve
// response. Title and Description are empty when the model did not emit the
// corresponding header; Content is always populated.
type SeedResult struct {
	Title       string
	Description string
	Content     string
}

var (
	titleRe = regexp.MustCompile(`(?m)^TITLE:\s*(.+)$`)
	descRe  = regexp.MustCompile(`(?m)^DESCRIPTION:\s*(.+)$`)

	titleLineRe = regexp.MustCompile(`(?m)^TITLE:[^\n]*\n?`)
	descLineRe  = regexp.MustCompile(`(?m)^DESCRIPTION:[^\n]*\n?\n?`)
)

// ParseSeedResponse locates the optional TITLE:/DESCRIPTION: header lines of
// an import response and strips them from the body. A response without either
// header degrades gracefully: the whole text becomes the content.
func ParseSeedResponse(response string) SeedResult {
	result := SeedResult{}

	if m := titleRe.FindStringSubmatch(response); len(m) == 2 {
		result.Title = strings.TrimSpace(m[1])
	}
	if m := descRe.FindStringSubmatch(response); len(m) == 2 {
		result.Description = strings.TrimSpace(m[1])
	}

	// Only the header occurrence is stripped; the improved document itself
	// may legitimately contain TITLE:/DESCRIPTION: lines further down.
	cleaned := stripFirstMatch(titleLineRe, response)
	cleaned = stripFirstMatch(descLineRe, cleaned)
	result.Content = strings.TrimSpace(cleaned)

	return result
}

func stripFirstMatch(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}
