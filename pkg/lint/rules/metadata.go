package rules

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/repolint/pkg/lint"
)

// Defaults for ModuleTagRule options.
const (
	defaultModuleMarker = "@module"
	defaultMinLines     = 10
	defaultScanLines    = 20
)

// ModuleTagRule checks that non-trivial TypeScript sources declare an
// @module metadata tag near the top of the file.
//
// Options:
//   - marker: substring to look for (default "@module")
//   - min_lines: files with at most this many lines are exempt (default 10)
//   - scan_lines: number of leading lines searched (default 20)
//   - skip_patterns: file-name substrings that exempt a file
//   - extensions: extensions the tag is enforced for (default [".ts"])
type ModuleTagRule struct {
	lint.BaseRule
}

// NewModuleTagRule creates a new module tag rule.
func NewModuleTagRule() *ModuleTagRule {
	return &ModuleTagRule{
		BaseRule: lint.NewBaseRule(
			IDModuleTag,
			"module-tag",
			"TypeScript sources longer than 10 lines should carry an @module tag in their first 20 lines",
			[]string{tagStyle},
			lint.ScopeFile,
		),
	}
}

// defaultSkipPatterns are test, spec and config file-name markers.
func defaultSkipPatterns() []string {
	return []string{".test.", ".spec.", ".config.", "vitest.config"}
}

// Apply checks the file for the module marker.
func (r *ModuleTagRule) Apply(ctx *lint.RuleContext) ([]lint.ValidationError, error) {
	file := ctx.File
	if file == nil || len(file.Lines) == 0 || file.IsBlank() {
		return nil, nil
	}

	name := file.Name()
	for _, pattern := range ctx.OptionStringSlice("skip_patterns", defaultSkipPatterns()) {
		if strings.Contains(name, pattern) {
			return nil, nil
		}
	}

	if !isEnforcedSource(name, ctx.OptionStringSlice("extensions", []string{".ts"})) {
		return nil, nil
	}

	if len(file.Lines) <= ctx.OptionInt("min_lines", defaultMinLines) {
		return nil, nil
	}

	marker := ctx.OptionString("marker", defaultModuleMarker)
	scan := min(ctx.OptionInt("scan_lines", defaultScanLines), len(file.Lines))
	for _, line := range file.Lines[:max(scan, 0)] {
		if strings.Contains(line, marker) {
			return nil, nil
		}
	}

	msg := fmt.Sprintf("Missing %s metadata tag. Add a comment like: // %s: package-name", marker, marker)
	return []lint.ValidationError{
		lint.NewValidationError(r.ID(), file.DisplayPath, msg),
	}, nil
}

// isEnforcedSource reports whether name has one of the extensions and is not
// a declaration file (e.g. "types.d.ts").
func isEnforcedSource(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	if !slices.Contains(extensions, ext) {
		return false
	}
	return !strings.HasSuffix(strings.TrimSuffix(name, ext), ".d")
}
