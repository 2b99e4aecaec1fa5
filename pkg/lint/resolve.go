package lint

import "github.com/yaklabco/repolint/pkg/config"

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules of a suite to run.
// Returns only enabled rules with their resolved configuration, sorted by ID.
func ResolveRules(registry *Registry, cfg *config.Config, suite config.Suite) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.RulesFor(string(suite)) {
		rr := resolveRule(rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule resolves the configuration for a single rule.
// Rule config may be keyed by ID or by name; the ID wins when both are present.
func resolveRule(rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:    rule,
		Enabled: rule.DefaultEnabled(),
	}

	if cfg == nil {
		return rr
	}

	ruleCfg, ok := cfg.Rules[rule.ID()]
	if !ok {
		ruleCfg, ok = cfg.Rules[rule.Name()]
	}
	if !ok {
		return rr
	}

	rr.Config = &ruleCfg
	if ruleCfg.Enabled != nil {
		rr.Enabled = *ruleCfg.Enabled
	}

	return rr
}
