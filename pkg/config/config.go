// Package config defines core configuration types for repolint.
// These types are pure data structures; loading from disk lives in yaml.go and
// validation in validate.go.
package config

// Suite names a validator. Rules declare the suites they belong to via tags.
type Suite string

const (
	// SuiteDocs checks Markdown documentation.
	SuiteDocs Suite = "docs"
	// SuiteStyle checks TypeScript packages.
	SuiteStyle Suite = "style"
)

// IsValid returns true if the suite is known.
func (s Suite) IsValid() bool {
	switch s {
	case SuiteDocs, SuiteStyle:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled *bool          `yaml:"enabled,omitempty"`
	Options map[string]any `yaml:"options,omitempty"`
}

// OutputFormat specifies the output format for reports.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "first-line-heading"
	RuleFormatID       RuleFormat = "id"       // "RL001"
	RuleFormatCombined RuleFormat = "combined" // "RL001/first-line-heading"
)

// DocsConfig configures the documentation validator.
type DocsConfig struct {
	// Dir is the documentation directory, relative to the repository root.
	Dir string `yaml:"dir" validate:"required"`

	// Extensions lists the file extensions checked (with leading dot).
	Extensions []string `yaml:"extensions" validate:"min=1,dive,startswith=."`

	// MaxErrors caps the number of errors printed. 0 means unlimited.
	MaxErrors int `yaml:"max_errors" validate:"gte=0"`
}

// StyleConfig configures the style guide validator.
type StyleConfig struct {
	// PackagesDir is the monorepo packages directory, relative to the repository root.
	PackagesDir string `yaml:"packages_dir" validate:"required"`

	// Extensions lists the source file extensions checked (with leading dot).
	Extensions []string `yaml:"extensions" validate:"min=1,dive,startswith=."`

	// ExcludeDirs lists directory names whose contents are never checked.
	ExcludeDirs []string `yaml:"exclude_dirs" validate:"dive,required,excludesall=/\\"`

	// MaxErrors caps the number of errors printed. 0 means unlimited.
	MaxErrors int `yaml:"max_errors" validate:"gte=0"`

	// GuideName is the style guide's title in the report header.
	GuideName string `yaml:"guide_name" validate:"required"`

	// GuideURL is shown in the report header and footer.
	GuideURL string `yaml:"guide_url" validate:"omitempty,url"`
}

// Config is the root configuration structure for repolint.
type Config struct {
	Docs  DocsConfig  `yaml:"docs"`
	Style StyleConfig `yaml:"style"`

	// Rules contains per-rule configuration keyed by rule ID or name.
	Rules map[string]RuleConfig `yaml:"rules,omitempty" validate:"dive,keys,required,endkeys"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-" validate:"omitempty,oneof=text json"`

	// Color controls styling: "auto", "always" or "never".
	Color string `yaml:"-" validate:"omitempty,oneof=auto always never"`
}

// DefaultGuideName is the title of the default style guide.
const DefaultGuideName = "The Dukes Engineering Style Guide"

// DefaultGuideURL is the published style guide the style validator points at.
const DefaultGuideURL = "https://tydukes.github.io/coding-style-guide/"

// DefaultStyleMaxErrors is the number of style errors printed before truncating.
const DefaultStyleMaxErrors = 50

// NewConfig returns a Config with defaults matching the stock validators.
func NewConfig() *Config {
	return &Config{
		Docs: DocsConfig{
			Dir:        "docs",
			Extensions: []string{".md"},
			MaxErrors:  0,
		},
		Style: StyleConfig{
			PackagesDir: "packages",
			Extensions:  []string{".ts", ".tsx"},
			ExcludeDirs: []string{"node_modules", "dist"},
			MaxErrors:   DefaultStyleMaxErrors,
			GuideName:   DefaultGuideName,
			GuideURL:    DefaultGuideURL,
		},
		Rules:  make(map[string]RuleConfig),
		Format: FormatText,
		Color:  "auto",
	}
}
