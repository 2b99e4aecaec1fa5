package rules

import "github.com/yaklabco/repolint/pkg/lint"

// Rule IDs.
const (
	IDFirstLineHeading = "RL001"
	IDModuleTag        = "RL002"
	IDPackageLayout    = "RL003"
)

// Suite tags.
const (
	tagDocs  = "docs"
	tagStyle = "style"
)

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewFirstLineHeadingRule()) // RL001
	registry.Register(NewModuleTagRule())        // RL002
	registry.Register(NewPackageLayoutRule())    // RL003
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
}
