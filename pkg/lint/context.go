package lint

import (
	"context"

	"github.com/yaklabco/repolint/pkg/config"
)

// RuleContext provides all context needed by a rule to perform a check.
//
// RuleContext stores context.Context as a field (Ctx) rather than taking it as
// a method parameter. It is a short-lived parameter object created per rule
// invocation, which keeps the Rule interface down to a single Apply method.
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// File is the file under check. Nil for package-scoped rules.
	File *FileRecord

	// Package is the package under check. Nil for file-scoped rules.
	Package *PackageDescriptor

	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig

	// Registry provides access to the rule registry for name lookups.
	Registry *Registry
}

// NewRuleContext creates a RuleContext for the given configuration.
// Callers set File or Package depending on the rule's scope.
func NewRuleContext(
	ctx context.Context,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	if ctx == nil {
		ctx = context.Background()
	}
	return &RuleContext{
		Ctx:        ctx,
		Config:     cfg,
		RuleConfig: ruleCfg,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	v := rc.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a rule-specific string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	v := rc.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionStringSlice returns a rule-specific string slice option, or the default.
// An explicitly configured empty list is returned as is, so it clears the
// default. Non-string items are ignored.
func (rc *RuleContext) OptionStringSlice(key string, defaultValue []string) []string {
	v := rc.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	// YAML decodes sequences into []any.
	if iface, ok := v.([]any); ok {
		result := make([]string, 0, len(iface))
		for _, item := range iface {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return defaultValue
}
