package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstLineHeadingRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		wantError bool
	}{
		{"empty file", "", false},
		{"only blank lines", "\n\n   \n\t\n", false},
		{"h1 on first line", "# Title\nBody", false},
		{"h1 after blank lines", "\n\n# Title\n", false},
		{"h1 after whitespace-only lines", "   \n\t\n# Title", false},
		{"h1 with crlf", "# Title\r\nBody\r\n", false},
		{"body only", "Body only", true},
		{"h2 first", "## Section\n", true},
		{"missing space", "#Title\n", true},
		{"indented heading", "  # Title\n", true},
		{"setext heading", "Title\n=====\n", true},
		{"front matter", "---\ntitle: x\n---\n# Title\n", true},
		{"hash alone", "#\n", true},
		{"heading later", "intro\n# Title\n", true},
		{"h1 after form feed", "\f# Title\n", false},
		{"h1 after line separator", "\u2028# Title", false},
		{"h1 after text and paragraph separator", "intro\u2029# Title", true},
		{"byte order mark before h1", "\ufeff# Title\n", true},
	}

	rule := NewFirstLineHeadingRule()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			errs := applyToFile(t, rule, "/repo/docs/page.md", tt.content, nil)
			if !tt.wantError {
				assert.Empty(t, errs)
				return
			}

			require.Len(t, errs, 1)
			assert.Equal(t, "/repo/docs/page.md: Missing h1 title at start of file", errs[0].String())
			assert.Equal(t, IDFirstLineHeading, errs[0].RuleID)
		})
	}
}

func TestFirstLineHeadingRule_NilFile(t *testing.T) {
	t.Parallel()

	rule := NewFirstLineHeadingRule()
	errs := applyToPackage(t, rule, nil, nil)
	assert.Empty(t, errs)
}
