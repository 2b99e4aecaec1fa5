package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/repolint/pkg/config"
	"github.com/yaklabco/repolint/pkg/lint"
)

// applyToFile runs rule against a synthetic file and returns its errors.
func applyToFile(t *testing.T, rule lint.Rule, path, content string, opts map[string]any) []lint.ValidationError {
	t.Helper()

	var ruleCfg *config.RuleConfig
	if opts != nil {
		ruleCfg = &config.RuleConfig{Options: opts}
	}

	ctx := lint.NewRuleContext(context.Background(), config.NewConfig(), ruleCfg)
	ctx.File = lint.NewFileRecord(path, "", content)

	errs, err := rule.Apply(ctx)
	require.NoError(t, err)
	return errs
}

// applyToPackage runs rule against a synthetic package listing.
func applyToPackage(t *testing.T, rule lint.Rule, pkg *lint.PackageDescriptor, opts map[string]any) []lint.ValidationError {
	t.Helper()

	var ruleCfg *config.RuleConfig
	if opts != nil {
		ruleCfg = &config.RuleConfig{Options: opts}
	}

	ctx := lint.NewRuleContext(context.Background(), config.NewConfig(), ruleCfg)
	ctx.Package = pkg

	errs, err := rule.Apply(ctx)
	require.NoError(t, err)
	return errs
}
