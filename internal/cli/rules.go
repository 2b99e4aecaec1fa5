package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/repolint/internal/logging"
	"github.com/yaklabco/repolint/pkg/config"
	"github.com/yaklabco/repolint/pkg/lint"
)

type rulesFlags struct {
	ruleFormat string
	format     string
	suite      string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Suites      []string `json:"suites"`
	Scope       string   `json:"scope"`
	Enabled     bool     `json:"enabled"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available validation rules",
		Long: `List all built-in validation rules with their IDs, the suite that
runs them, whether they check files or packages, and whether they are
enabled by default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := selectRules(flags.suite)
			if err != nil {
				return err
			}

			if flags.format == formatJSON {
				return outputRulesJSON(cmd.OutOrStdout(), rules)
			}

			logger := logging.NewWithWriter(cmd.OutOrStdout(), "info")
			ruleFormat := config.RuleFormat(flags.ruleFormat)

			for _, rule := range rules {
				enabled := "yes"
				if !rule.DefaultEnabled() {
					enabled = "no"
				}

				logger.Info(config.FormatRuleID(ruleFormat, rule.ID(), rule.Name()),
					logging.FieldTags, strings.Join(rule.Tags(), ","),
					logging.FieldScope, rule.Scope(),
					logging.FieldEnabled, enabled,
					logging.FieldDescription, rule.Description(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "combined",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")
	cmd.Flags().StringVar(&flags.suite, "suite", "",
		"only list rules of one suite: docs, style")

	return cmd
}

// selectRules returns the registered rules, optionally limited to a suite.
func selectRules(suite string) ([]lint.Rule, error) {
	if suite == "" {
		return lint.DefaultRegistry.Rules(), nil
	}
	if !config.Suite(suite).IsValid() {
		return nil, fmt.Errorf("unknown suite %q; valid suites: docs, style", suite)
	}
	return lint.DefaultRegistry.RulesFor(suite), nil
}

// outputRulesJSON writes rules as a JSON array.
func outputRulesJSON(w io.Writer, rules []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Suites:      rule.Tags(),
			Scope:       rule.Scope().String(),
			Enabled:     rule.DefaultEnabled(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
