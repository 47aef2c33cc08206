package docparse

import (
	"testing"
)

func TestParseSeedResponse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantDesc  string
		wantBody  string
	}{
		{
			name:      "full header",
			input:     "TITLE: Payment Service\nDESCRIPTION: How payments flow through the system\n\n# Payment Service\n\nBody",
			wantTitle: "Payment Service",
			wantDesc:  "How payments flow through the system",
			wantBody:  "# Payment Service\n\nBody",
		},
		{
			name:      "title only",
			input:     "TITLE: Payment Service\n\n# Doc",
			wantTitle: "Payment Service",
			wantDesc:  "",
			wantBody:  "# Doc",
		},
		{
			name:      "no header at all",
			input:     "# Plain Document\n\nNothing else",
			wantTitle: "",
			wantDesc:  "",
			wantBody:  "# Plain Document\n\nNothing else",
		},
		{
			name:      "header not at line start is ignored",
			input:     "See TITLE: something inline\n\n# Doc",
			wantTitle: "",
			wantDesc:  "",
			wantBody:  "See TITLE: something inline\n\n# Doc",
		},
		{
			name:      "extra whitespace around values",
			input:     "TITLE:   Spaced Out  \nDESCRIPTION:  desc text \n\ncontent",
			wantTitle: "Spaced Out",
			wantDesc:  "desc text",
			wantBody:  "content",
		},
		{
			name:      "header lines inside the body survive",
			input:     "TITLE: Style Guide\nDESCRIPTION: How to write headers\n\n# Style Guide\n\nUse this format:\nTITLE: <your title>\nDESCRIPTION: <your description>",
			wantTitle: "Style Guide",
			wantDesc:  "How to write headers",
			wantBody:  "# Style Guide\n\nUse this format:\nTITLE: <your title>\nDESCRIPTION: <your description>",
		},
		{
			name:      "empty input",
			input:     "",
			wantTitle: "",
			wantDesc:  "",
			wantBody:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSeedResponse(tt.input)

			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", got.Description, tt.wantDesc)
			}
			if got.Content != tt.wantBody {
				t.Errorf("Content = %q, want %q", got.Content, tt.wantBody)
			}
		})
	}
}
