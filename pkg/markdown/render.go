package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML stays disabled so pasted or model-emitted markup is never
// rendered as-is; goldmark replaces it with placeholder comments.
var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Render converts markdown to sanitized HTML.
func Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
