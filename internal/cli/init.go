package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/repolint/internal/logging"
	"github.com/yaklabco/repolint/pkg/config"
	"github.com/yaklabco/repolint/pkg/fsutil"
	"github.com/yaklabco/repolint/pkg/lint"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// defaultConfigFile is the file written by init when --output is not given.
const defaultConfigFile = ".repolint.yml"

// errInitAborted is returned when the user declines to overwrite a file.
var errInitAborted = errors.New("init aborted")

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

// stdinIsTerminal reports whether the process can prompt the user.
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func newInitCommand() *cobra.Command {
	return newInitCommandWith(stdinIsTerminal)
}

func newInitCommandWith(interactive func() bool) *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a repolint configuration file",
		Long: `Create a .repolint.yml file in the current directory holding the
default settings. Pass it back with --config to customise directories,
extensions, error caps and per-rule options.

An existing file is only replaced with --force, or after confirmation
when running in a terminal.

Examples:
  repolint init                       Create .repolint.yml
  repolint init --full                Also list every rule with its default state
  repolint init --output ci/lint.yml  Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags, interactive)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "List every rule with its default state")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "Output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags, interactive func() bool) error {
	logger := logging.NewInteractive()
	logger.SetOutput(cmd.ErrOrStderr())

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && !flags.force {
		if !interactive() {
			return fmt.Errorf("file %q already exists; use --force to overwrite", flags.output)
		}
		ok, err := confirm(cmd.InOrStdin(), cmd.ErrOrStderr(),
			fmt.Sprintf("%s already exists. Overwrite? [y/N] ", flags.output))
		if err != nil {
			return err
		}
		if !ok {
			return errInitAborted
		}
	}

	content, err := initContent(flags.full)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, absPath, content, configFilePermissions)
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	if !written {
		logger.Info("configuration file already up to date", logging.FieldPath, flags.output)
		return nil
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'repolint rules' to see all available rules")

	return nil
}

// initContent renders the default configuration. With full set, every
// registered rule is listed with its default enabled state.
func initContent(full bool) ([]byte, error) {
	cfg := config.NewConfig()

	header := "# repolint configuration\n# Use with: repolint docs --config " + defaultConfigFile

	if full {
		var b strings.Builder
		b.WriteString(header)
		b.WriteString("\n#\n# Rules:")
		for _, rule := range lint.DefaultRegistry.Rules() {
			enabled := rule.DefaultEnabled()
			cfg.Rules[rule.ID()] = config.RuleConfig{Enabled: &enabled}
			fmt.Fprintf(&b, "\n#   %s/%s (%s): %s", rule.ID(), rule.Name(), strings.Join(rule.Tags(), ","), rule.Description())
		}
		header = b.String()
	}

	content, err := cfg.ToYAMLWithHeader(header)
	if err != nil {
		return nil, fmt.Errorf("generate config: %w", err)
	}
	return content, nil
}

// confirm writes prompt to w and reads a yes/no answer from r.
func confirm(r io.Reader, w io.Writer, prompt string) (bool, error) {
	if _, err := io.WriteString(w, prompt); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	answer, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
