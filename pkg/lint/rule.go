// Package lint provides the rule engine, validation errors, and registry for repolint.
package lint

// ValidationError is a single problem reported by a rule.
// It is an immutable value: rules create a fresh one per violation.
type ValidationError struct {
	// RuleID is the identifier of the rule that produced this error.
	// Empty for errors raised outside a rule (e.g. unreadable files).
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "module-tag").
	RuleName string

	// Subject is what the error is about: a file path or a package name.
	Subject string

	// Message is the human-readable description of the problem.
	Message string
}

// NewValidationError creates a ValidationError for the given rule.
func NewValidationError(ruleID, subject, message string) ValidationError {
	return ValidationError{
		RuleID:  ruleID,
		Subject: subject,
		Message: message,
	}
}

// String renders the error as "subject: message".
func (e ValidationError) String() string {
	if e.Subject == "" {
		return e.Message
	}
	return e.Subject + ": " + e.Message
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.String()
}

// Scope says what a rule inspects.
type Scope int

const (
	// ScopeFile rules inspect the decoded content of a single file.
	ScopeFile Scope = iota

	// ScopePackage rules inspect the listing of a package directory.
	ScopePackage
)

// String returns the scope name.
func (s Scope) String() string {
	switch s {
	case ScopeFile:
		return "file"
	case ScopePackage:
		return "package"
	default:
		return "unknown"
	}
}

// Rule defines the interface that all rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "RL001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// Tags returns the suites this rule belongs to (e.g., ["docs"]).
	Tags() []string

	// Scope returns what the rule inspects.
	Scope() Scope

	// Apply executes the rule against the given context.
	//
	// Rules must:
	//   - Return one ValidationError per violation found.
	//   - Be pure: no filesystem access beyond what the context carries.
	//   - Return error only for internal failures, not violations.
	Apply(ctx *RuleContext) ([]ValidationError, error)
}
