package markdown

import (
	"strings"
	"testing"
)

func TestRenderHeadingsAndParagraphs(t *testing.T) {
	html, err := Render("# Title\n\nSome body text")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(html, "<h1>Title</h1>") {
		t.Errorf("missing heading in output: %q", html)
	}
	if !strings.Contains(html, "<p>Some body text</p>") {
		t.Errorf("missing paragraph in output: %q", html)
	}
}

func TestRenderGFMTable(t *testing.T) {
	source := "| Case | Result |\n| --- | --- |\n| login | pass |"

	html, err := Render(source)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(html, "<table>") {
		t.Errorf("table not rendered: %q", html)
	}
	if !strings.Contains(html, "<td>login</td>") {
		t.Errorf("table cell not rendered: %q", html)
	}
}

func TestRenderDropsRawHTML(t *testing.T) {
	html, err := Render("before\n\n<script>alert(1)</script>\n\nafter")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if strings.Contains(html, "<script>") {
		t.Errorf("raw HTML leaked into output: %q", html)
	}
}
