// Package rules provides the built-in repolint rules.
//
// # Rules
//
// Documentation suite ("docs"):
//
//   - RL001: first-line-heading - First non-blank line must be a "# " heading
//
// Style suite ("style"):
//
//   - RL002: module-tag - Non-trivial TypeScript sources carry an @module tag near the top
//
//   - RL003: package-layout - Each package has package.json, tsconfig.json and src/
//
// # Registration
//
// Rules are registered with the default registry via RegisterAll.
// Each rule embeds lint.BaseRule and implements Apply over a lint.RuleContext.
package rules
