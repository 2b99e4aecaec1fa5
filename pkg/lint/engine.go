package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/repolint/pkg/config"
)

// Engine runs the rules of a suite against files and packages.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// CheckFile runs every enabled file-scoped rule of suite against rec.
// Violations never stop the run: all rules execute and their errors are
// concatenated in rule ID order. A rule that fails internally contributes
// one ValidationError describing the failure. The returned error is non-nil
// only when ctx is cancelled.
func (e *Engine) CheckFile(
	ctx context.Context,
	rec *FileRecord,
	cfg *config.Config,
	suite config.Suite,
) ([]ValidationError, error) {
	return e.run(ctx, cfg, suite, ScopeFile, rec.DisplayPath, func(rc *RuleContext) {
		rc.File = rec
	})
}

// CheckPackage runs every enabled package-scoped rule of suite against pkg.
// Semantics match CheckFile.
func (e *Engine) CheckPackage(
	ctx context.Context,
	pkg *PackageDescriptor,
	cfg *config.Config,
	suite config.Suite,
) ([]ValidationError, error) {
	return e.run(ctx, cfg, suite, ScopePackage, pkg.Name, func(rc *RuleContext) {
		rc.Package = pkg
	})
}

// HasScope reports whether any enabled rule of suite has the given scope.
func (e *Engine) HasScope(cfg *config.Config, suite config.Suite, scope Scope) bool {
	for _, rr := range ResolveRules(e.Registry, cfg, suite) {
		if rr.Rule.Scope() == scope {
			return true
		}
	}
	return false
}

func (e *Engine) run(
	ctx context.Context,
	cfg *config.Config,
	suite config.Suite,
	scope Scope,
	subject string,
	bind func(*RuleContext),
) ([]ValidationError, error) {
	var errs []ValidationError

	for _, rr := range ResolveRules(e.Registry, cfg, suite) {
		if rr.Rule.Scope() != scope {
			continue
		}

		select {
		case <-ctx.Done():
			return errs, fmt.Errorf("check cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, cfg, rr.Config)
		ruleCtx.Registry = e.Registry
		bind(ruleCtx)

		found, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			found = []ValidationError{
				NewValidationError(rr.Rule.ID(), subject,
					fmt.Sprintf("Rule %s failed - %v", rr.Rule.Name(), err)),
			}
		}

		for i := range found {
			if found[i].Subject == "" {
				found[i].Subject = subject
			}
			if found[i].RuleID == "" {
				found[i].RuleID = rr.Rule.ID()
			}
			if found[i].RuleName == "" {
				found[i].RuleName = rr.Rule.Name()
			}
		}

		errs = append(errs, found...)
	}

	return errs, nil
}
