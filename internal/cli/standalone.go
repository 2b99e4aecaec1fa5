package cli

import "github.com/spf13/cobra"

// NewDocsCommand creates the root command of the standalone docs validator.
func NewDocsCommand(info BuildInfo) *cobra.Command {
	return newStandaloneCommand("validate-docs", docsSpec, info)
}

// NewStyleCommand creates the root command of the standalone style validator.
func NewStyleCommand(info BuildInfo) *cobra.Command {
	return newStandaloneCommand("validate-style", styleSpec, info)
}

// newStandaloneCommand turns a suite command into a zero-argument root
// command with its own global flags.
func newStandaloneCommand(name string, spec suiteSpec, info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	cmd := newSuiteCommand(spec, flags)
	cmd.Use = name
	cmd.Version = info.Version
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	addGlobalFlags(cmd, flags)

	NewHelpFormatter(flags.color, cmd.OutOrStdout()).ApplyToCommand(cmd)

	return cmd
}
