package rules

import "github.com/yaklabco/repolint/pkg/lint"

// PackageLayoutRule checks that a monorepo package has its manifests and
// source directory.
//
// Options:
//   - required_files: entries that must exist (default package.json, tsconfig.json)
//   - required_dirs: directories that must exist (default src)
type PackageLayoutRule struct {
	lint.BaseRule
}

// NewPackageLayoutRule creates a new package layout rule.
func NewPackageLayoutRule() *PackageLayoutRule {
	return &PackageLayoutRule{
		BaseRule: lint.NewBaseRule(
			IDPackageLayout,
			"package-layout",
			"Each package should contain package.json, tsconfig.json and a src/ directory",
			[]string{tagStyle},
			lint.ScopePackage,
		),
	}
}

// Apply reports one error per missing file or directory.
func (r *PackageLayoutRule) Apply(ctx *lint.RuleContext) ([]lint.ValidationError, error) {
	pkg := ctx.Package
	if pkg == nil {
		return nil, nil
	}

	var errs []lint.ValidationError

	for _, name := range ctx.OptionStringSlice("required_files", []string{"package.json", "tsconfig.json"}) {
		if !pkg.Has(name) {
			errs = append(errs, lint.NewValidationError(r.ID(), pkg.Name, "Missing required file: "+name))
		}
	}

	for _, name := range ctx.OptionStringSlice("required_dirs", []string{"src"}) {
		if !pkg.HasDir(name) {
			errs = append(errs, lint.NewValidationError(r.ID(), pkg.Name, "Missing "+name+"/ directory"))
		}
	}

	return errs, nil
}
