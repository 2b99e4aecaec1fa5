package rules

import (
	"strings"

	"github.com/yaklabco/repolint/pkg/lint"
)

// headingPrefix is the only accepted title marker. Other heading levels and
// setext headings are deliberately rejected.
const headingPrefix = "# "

// FirstLineHeadingRule checks that documents begin with a top-level heading.
type FirstLineHeadingRule struct {
	lint.BaseRule
}

// NewFirstLineHeadingRule creates a new first line heading rule.
func NewFirstLineHeadingRule() *FirstLineHeadingRule {
	return &FirstLineHeadingRule{
		BaseRule: lint.NewBaseRule(
			IDFirstLineHeading,
			"first-line-heading",
			"First non-blank line in a document should be a top-level \"# \" heading",
			[]string{tagDocs},
			lint.ScopeFile,
		),
	}
}

// Apply checks the first line with non-whitespace content.
func (r *FirstLineHeadingRule) Apply(ctx *lint.RuleContext) ([]lint.ValidationError, error) {
	if ctx.File == nil || len(ctx.File.Lines) == 0 {
		return nil, nil
	}

	for _, line := range ctx.File.Lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, headingPrefix) {
			return nil, nil
		}
		return []lint.ValidationError{
			lint.NewValidationError(r.ID(), ctx.File.DisplayPath, "Missing h1 title at start of file"),
		}, nil
	}

	// Only whitespace.
	return nil, nil
}
