package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/repolint/internal/cli"
	"github.com/yaklabco/repolint/pkg/reporter"
)

func TestDocs_FailsOnMissingHeading(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"docs/a.md": "# Title\nBody",
		"docs/b.md": "Body only",
	})

	stdout, _, err := execute(cli.NewRootCommand(testInfo), "docs", "--root", root, "--color", "never")
	require.ErrorIs(t, err, cli.ErrValidationFailed)

	assert.Equal(t,
		"Documentation validation failed:\n"+
			"  - "+filepath.Join("docs", "b.md")+": Missing h1 title at start of file\n",
		stdout)
}

func TestDocs_Pass(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{"docs/a.md": "# Title\n"})

	stdout, _, err := execute(cli.NewDocsCommand(testInfo), "--root", root, "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, "Documentation validation passed.\n", stdout)
}

func TestDocs_MissingDirectory(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(cli.NewDocsCommand(testInfo), "--root", t.TempDir(), "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, "Warning: docs/ directory does not exist yet\n", stdout)
}

func TestStyle_MissingPackagesDirectory(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(cli.NewStyleCommand(testInfo), "--root", t.TempDir(), "--color", "never")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stdout, "\n\n✅ Style guide validation passed.\n"), stdout)
	assert.NotContains(t, stdout, "Checking")
}

func TestStyle_ReportsPackagesAndSources(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"packages/core/package.json":  "{}",
		"packages/core/tsconfig.json": "{}",
		"packages/core/src/index.ts":  strings.Repeat("export const a = 1;\n", 12),
		"packages/empty/":             "",
	})

	stdout, _, err := execute(cli.NewRootCommand(testInfo), "style", "--root", root, "--color", "never")
	require.ErrorIs(t, err, cli.ErrValidationFailed)

	assert.Contains(t, stdout, "Checking 1 TypeScript files...\n")
	assert.Contains(t, stdout, "❌ Style guide validation failed:\n\n"+
		"  - empty: Missing required file: package.json\n"+
		"  - empty: Missing required file: tsconfig.json\n"+
		"  - empty: Missing src/ directory\n"+
		"  - "+filepath.Join("packages", "core", "src", "index.ts")+": Missing @module metadata tag.")
	assert.True(t, strings.HasSuffix(stdout, "\n💡 See style guide: https://tydukes.github.io/coding-style-guide/\n"))
}

func TestStyle_DisableFlag(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{"packages/empty/": ""})

	_, _, err := execute(cli.NewRootCommand(testInfo), "style", "--root", root, "--color", "never",
		"--disable", "package-layout")
	require.NoError(t, err)
}

func TestSuite_JSONFormat(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{"docs/b.md": "Body only"})

	stdout, _, err := execute(cli.NewRootCommand(testInfo), "docs", "--root", root, "--format", "json")
	require.ErrorIs(t, err, cli.ErrValidationFailed)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "docs", out.Suite)
	assert.False(t, out.Passed)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "RL001", out.Errors[0].RuleID)
}

func TestSuite_ConfigFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"handbook/a.md": "no heading",
		"docs/b.md":     "no heading either",
	})

	cfgPath := filepath.Join(t.TempDir(), "repolint.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("docs:\n  dir: handbook\n"), 0o600))

	stdout, _, err := execute(cli.NewRootCommand(testInfo), "docs", "--root", root, "--config", cfgPath, "--color", "never")
	require.ErrorIs(t, err, cli.ErrValidationFailed)
	assert.Contains(t, stdout, filepath.Join("handbook", "a.md"))
	assert.NotContains(t, stdout, "b.md")
}

func TestSuite_CommandErrors(t *testing.T) {
	t.Parallel()

	badCfg := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(badCfg, []byte("style:\n  max_errors: -1\n"), 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{"positional argument", []string{"docs", "extra"}},
		{"unknown format", []string{"docs", "--root", t.TempDir(), "--format", "xml"}},
		{"invalid color", []string{"docs", "--root", t.TempDir(), "--color", "sometimes"}},
		{"missing config file", []string{"docs", "--root", t.TempDir(), "--config", "/nonexistent/repolint.yml"}},
		{"invalid config value", []string{"style", "--root", t.TempDir(), "--config", badCfg}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(cli.NewRootCommand(testInfo), tt.args...)
			require.Error(t, err)
			assert.NotErrorIs(t, err, cli.ErrValidationFailed)
			assert.Empty(t, stdout)
		})
	}
}

func TestSuite_ToggleByNameOverridesIDKeyedConfig(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"packages/core/package.json":  "{}",
		"packages/core/tsconfig.json": "{}",
		"packages/core/src/index.ts":  strings.Repeat("export const a = 1;\n", 12),
	})

	cfgPath := filepath.Join(t.TempDir(), "repolint.yml")
	require.NoError(t, os.WriteFile(cfgPath,
		[]byte("rules:\n  RL002:\n    options:\n      min_lines: 5\n"), 0o600))

	stdout, _, err := execute(cli.NewRootCommand(testInfo), "style", "--root", root,
		"--config", cfgPath, "--color", "never")
	require.ErrorIs(t, err, cli.ErrValidationFailed)
	assert.Contains(t, stdout, "Missing @module metadata tag")

	stdout, _, err = execute(cli.NewRootCommand(testInfo), "style", "--root", root,
		"--config", cfgPath, "--color", "never", "--disable", "module-tag")
	require.NoError(t, err)
	assert.Contains(t, stdout, "✅ Style guide validation passed.")
}

func TestSuite_UnknownRuleToggle(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"--enable", "--disable"} {
		t.Run(flag, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(cli.NewRootCommand(testInfo), "docs", "--root", t.TempDir(),
				flag, "no-such-rule")
			require.Error(t, err)
			assert.NotErrorIs(t, err, cli.ErrValidationFailed)
			assert.Contains(t, err.Error(), `unknown rule "no-such-rule"`)
			assert.Empty(t, stdout)
		})
	}
}
