// Package cli provides the Cobra command structure for repolint.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/repolint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are shared by every command of a binary.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
}

// addGlobalFlags binds the shared flags as persistent flags of cmd.
func addGlobalFlags(cmd *cobra.Command, flags *globalFlags) {
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "",
		"path to a YAML config file (defaults are used when omitted)")
	cmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")

	cmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if flags.debug {
			logging.SetLevel("debug")
		}
	}
}

// NewRootCommand creates the root repolint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "repolint",
		Short: "Documentation and style guide validators for TypeScript monorepos",
		Long: `repolint checks a repository against its documentation and style conventions.

The docs suite requires every Markdown file under docs/ to open with a
top-level "# " heading. The style suite requires every package under
packages/ to carry package.json, tsconfig.json and a src/ directory, and
every non-trivial TypeScript source to declare an @module tag near its top.

The repository root defaults to the parent of the directory holding the
executable, so a binary installed at <root>/bin/ checks <root>.`,
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addGlobalFlags(rootCmd, flags)

	rootCmd.AddCommand(newDocsCommand(flags))
	rootCmd.AddCommand(newStyleCommand(flags))
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newSchemaCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(flags.color, rootCmd.OutOrStdout()).ApplyToCommand(rootCmd)

	return rootCmd
}
