package lint

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	id    string   // Unique identifier (e.g., "RL001")
	name  string   // Human-readable name
	desc  string   // Detailed description
	tags  []string // Suites the rule runs in
	scope Scope
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags []string, scope Scope) BaseRule {
	return BaseRule{
		id:    id,
		name:  name,
		desc:  desc,
		tags:  tags,
		scope: scope,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// Tags returns the suites this rule belongs to.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Scope returns what the rule inspects.
func (r *BaseRule) Scope() Scope {
	return r.scope
}

// Apply must be overridden by concrete rule implementations.
// The default implementation returns no errors.
func (r *BaseRule) Apply(_ *RuleContext) ([]ValidationError, error) {
	return nil, nil
}
