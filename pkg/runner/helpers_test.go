package runner_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/repolint/pkg/lint"
	"github.com/yaklabco/repolint/pkg/lint/rules"
	"github.com/yaklabco/repolint/pkg/runner"
)

// writeTree creates files under root. Keys ending in "/" create directories.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func newRunner() *runner.Runner {
	reg := lint.NewRegistry()
	rules.RegisterAll(reg)
	return runner.New(lint.NewEngine(reg))
}

// longSource returns a TypeScript source longer than the module-tag threshold.
func longSource(header string) string {
	return header + strings.Repeat("export const x = 1;\n", 15)
}
