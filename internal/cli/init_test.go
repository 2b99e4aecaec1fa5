package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/repolint/pkg/config"
)

func runInitCommand(t *testing.T, interactive bool, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newInitCommandWith(func() bool { return interactive })

	var stderr bytes.Buffer
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stderr.String(), err
}

func TestInit_WritesLoadableDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".repolint.yml")
	_, err := runInitCommand(t, false, "", "--output", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "# repolint configuration\n"))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.NewConfig().Docs, cfg.Docs)
	assert.Equal(t, config.NewConfig().Style, cfg.Style)
}

func TestInit_Full(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "full.yml")
	_, err := runInitCommand(t, false, "", "--full", "-o", path)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	for _, id := range []string{"RL001", "RL002", "RL003"} {
		rc, ok := cfg.Rules[id]
		require.True(t, ok, "rule %s listed", id)
		require.NotNil(t, rc.Enabled)
		assert.True(t, *rc.Enabled)
	}
}

func TestInit_ExistingFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		interactive bool
		stdin       string
		args        []string
		wantErr     bool
		wantKept    bool
	}{
		{name: "non-interactive refuses", wantErr: true, wantKept: true},
		{name: "force overwrites", args: []string{"--force"}},
		{name: "prompt accepted", interactive: true, stdin: "y\n"},
		{name: "prompt declined", interactive: true, stdin: "n\n", wantErr: true, wantKept: true},
		{name: "prompt empty answer", interactive: true, stdin: "", wantErr: true, wantKept: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), ".repolint.yml")
			require.NoError(t, os.WriteFile(path, []byte("custom: true\n"), 0o600))

			args := append([]string{"--output", path}, tt.args...)
			_, err := runInitCommand(t, tt.interactive, tt.stdin, args...)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKept, string(content) == "custom: true\n")
		})
	}
}

func TestInit_UnchangedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".repolint.yml")
	_, err := runInitCommand(t, false, "", "--output", path)
	require.NoError(t, err)

	stderr, err := runInitCommand(t, false, "", "--output", path, "--force")
	require.NoError(t, err)
	assert.Contains(t, stderr, "already up to date")
}
