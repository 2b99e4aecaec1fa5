package rules

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tsSource builds a TypeScript source with n lines, putting marker on line
// markerLine (1-based). markerLine 0 omits the marker.
func tsSource(n, markerLine int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		if i == markerLine {
			b.WriteString("// @module: core\n")
			continue
		}
		fmt.Fprintf(&b, "export const v%d = %d;\n", i, i)
	}
	return b.String()
}

func TestModuleTagRule_MarkerWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		lines      int
		markerLine int
		wantError  bool
	}{
		{"ten lines no marker", 10, 0, false},
		{"eleven lines no marker", 11, 0, true},
		{"marker on line one", 30, 1, false},
		{"marker on line twenty", 30, 20, false},
		{"marker on line twenty-one", 30, 21, true},
		{"short file marker beyond end", 5, 0, false},
	}

	rule := NewModuleTagRule()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			errs := applyToFile(t, rule, "/repo/packages/core/src/index.ts", tsSource(tt.lines, tt.markerLine), nil)
			if !tt.wantError {
				assert.Empty(t, errs)
				return
			}

			require.Len(t, errs, 1)
			assert.Equal(t,
				"/repo/packages/core/src/index.ts: Missing @module metadata tag. Add a comment like: // @module: package-name",
				errs[0].String())
		})
	}
}

func TestModuleTagRule_Exemptions(t *testing.T) {
	t.Parallel()

	long := tsSource(40, 0)
	rule := NewModuleTagRule()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"empty", "index.ts", ""},
		{"whitespace only", "index.ts", strings.Repeat("   \n", 30)},
		{"test file", "index.test.ts", long},
		{"spec file", "index.spec.ts", long},
		{"config file", "eslint.config.ts", long},
		{"vitest config", "vitest.config.mts.ts", long},
		{"declaration file", "types.d.ts", long},
		{"tsx component", "Button.tsx", long},
		{"other extension", "index.js", long},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Empty(t, applyToFile(t, rule, "/repo/packages/core/src/"+tt.file, tt.content, nil))
		})
	}
}

func TestModuleTagRule_CaseSensitive(t *testing.T) {
	t.Parallel()

	content := "// @Module: core\n" + tsSource(20, 0)
	errs := applyToFile(t, NewModuleTagRule(), "/repo/a.ts", content, nil)
	assert.Len(t, errs, 1)
}

func TestModuleTagRule_Options(t *testing.T) {
	t.Parallel()

	rule := NewModuleTagRule()

	t.Run("custom marker", func(t *testing.T) {
		t.Parallel()
		content := "/** @package core */\n" + tsSource(20, 0)
		opts := map[string]any{"marker": "@package"}
		assert.Empty(t, applyToFile(t, rule, "/repo/a.ts", content, opts))

		errs := applyToFile(t, rule, "/repo/a.ts", tsSource(20, 1), opts)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message, "Missing @package metadata tag")
	})

	t.Run("thresholds", func(t *testing.T) {
		t.Parallel()
		opts := map[string]any{"min_lines": 3, "scan_lines": 2}
		assert.Len(t, applyToFile(t, rule, "/repo/a.ts", tsSource(4, 3), opts), 1)
		assert.Empty(t, applyToFile(t, rule, "/repo/a.ts", tsSource(4, 2), opts))
		assert.Empty(t, applyToFile(t, rule, "/repo/a.ts", tsSource(3, 0), opts))
	})

	t.Run("enforce tsx", func(t *testing.T) {
		t.Parallel()
		opts := map[string]any{"extensions": []any{".ts", ".tsx"}}
		assert.Len(t, applyToFile(t, rule, "/repo/Button.tsx", tsSource(40, 0), opts), 1)
	})

	t.Run("empty skip patterns", func(t *testing.T) {
		t.Parallel()
		opts := map[string]any{"skip_patterns": []any{}}
		assert.Len(t, applyToFile(t, rule, "/repo/index.test.ts", tsSource(40, 0), opts), 1)
	})
}
