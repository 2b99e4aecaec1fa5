package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/repolint/pkg/config"
	"github.com/yaklabco/repolint/pkg/reporter"
)

// schemaGenerators maps schema command arguments to their generators.
//
//nolint:gochecknoglobals // Read-only lookup table.
var schemaGenerators = map[string]func() ([]byte, error){
	"report": reporter.JSONSchema,
	"config": config.JSONSchema,
}

func newSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema [report|config]",
		Short: "Print a JSON Schema for the JSON report or the config file",
		Long: `Print the JSON Schema describing the output of --format json
("report", the default) or the layout of .repolint.yml ("config").

Examples:
  repolint schema > report.schema.json
  repolint schema config > repolint.schema.json`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"report", "config"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "report"
			if len(args) == 1 {
				kind = args[0]
			}

			out, err := schemaGenerators[kind]()
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(out)); err != nil {
				return fmt.Errorf("write schema: %w", err)
			}
			return nil
		},
	}

	return cmd
}
