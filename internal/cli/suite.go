package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/repolint/internal/logging"
	"github.com/yaklabco/repolint/pkg/config"
	"github.com/yaklabco/repolint/pkg/lint"
	_ "github.com/yaklabco/repolint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/repolint/pkg/reporter"
	"github.com/yaklabco/repolint/pkg/runner"
)

// ErrValidationFailed is returned when a suite collected validation errors.
// The report has already been written, so callers only map it to an exit code.
var ErrValidationFailed = errors.New("validation failed")

type suiteFlags struct {
	root    string
	format  string
	compact bool
	enable  []string
	disable []string
}

type suiteSpec struct {
	suite config.Suite
	use   string
	short string
	long  string
}

var docsSpec = suiteSpec{
	suite: config.SuiteDocs,
	use:   "docs",
	short: "Validate Markdown documentation",
	long: `Validate that every Markdown file under docs/ starts with a "# " title.

Hidden files are skipped. A missing docs/ directory prints a warning and
passes. Every failing file is listed.`,
}

var styleSpec = suiteSpec{
	suite: config.SuiteStyle,
	use:   "style",
	short: "Validate TypeScript packages against the style guide",
	long: `Validate the packages/ directory against the style guide.

Each package must contain package.json, tsconfig.json and a src/ directory.
TypeScript sources longer than 10 lines must mention @module within their
first 20 lines; test, spec, config and declaration files are exempt.
node_modules and dist are never scanned. Up to 50 errors are listed.`,
}

func newDocsCommand(global *globalFlags) *cobra.Command {
	return newSuiteCommand(docsSpec, global)
}

func newStyleCommand(global *globalFlags) *cobra.Command {
	return newSuiteCommand(styleSpec, global)
}

func newSuiteCommand(spec suiteSpec, global *globalFlags) *cobra.Command {
	flags := &suiteFlags{}

	cmd := &cobra.Command{
		Use:   spec.use,
		Short: spec.short,
		Long:  spec.long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSuite(cmd, spec.suite, global, flags)
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", "",
		"repository root (default: parent of the executable's directory)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "write JSON on a single line")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")

	return cmd
}

func runSuite(cmd *cobra.Command, suite config.Suite, global *globalFlags, flags *suiteFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	cfg, err := loadConfig(global.configPath)
	if err != nil {
		return err
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	cfg.Format = config.OutputFormat(format)
	cfg.Color = global.color
	if err := applyRuleToggles(cfg, lint.DefaultRegistry, flags.enable, true); err != nil {
		return err
	}
	if err := applyRuleToggles(cfg, lint.DefaultRegistry, flags.disable, false); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	root, err := ResolveRoot(flags.root)
	if err != nil {
		return err
	}

	opts := runner.OptionsFor(root, cfg, suite)

	logger.Debug("starting validation",
		logging.FieldSuite, suite,
		logging.FieldRoot, root,
		logging.FieldDir, opts.Dir,
		logging.FieldFormat, format,
	)

	result, err := runner.New(lint.NewEngine(lint.DefaultRegistry)).Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("%s validation run failed: %w", suite, err)
	}

	repOpts := reporter.OptionsFromConfig(cfg, suite)
	repOpts.Writer = cmd.OutOrStdout()
	repOpts.Compact = flags.compact

	rep, err := reporter.New(repOpts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrValidationFailed
	}

	return nil
}

// loadConfig returns the defaults, or the given file layered over them.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.NewConfig(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logging.Default().Debug("loaded configuration", logging.FieldConfig, path)

	return cfg, nil
}

// applyRuleToggles sets Enabled on the rules named by keys. Each key is
// resolved to its rule ID, so a toggle given by name also overrides a config
// entry keyed by ID. Options already configured under either key are kept.
func applyRuleToggles(cfg *config.Config, registry *lint.Registry, keys []string, enabled bool) error {
	for _, key := range keys {
		rule, ok := registry.Get(key)
		if !ok {
			return fmt.Errorf("unknown rule %q; run 'repolint rules' to list rules", key)
		}

		rc, ok := cfg.Rules[rule.ID()]
		if !ok {
			rc = cfg.Rules[rule.Name()]
		}
		delete(cfg.Rules, rule.Name())

		value := enabled
		rc.Enabled = &value
		cfg.Rules[rule.ID()] = rc
	}
	return nil
}
