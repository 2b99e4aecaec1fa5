package cli

import "github.com/yaklabco/repolint/pkg/runner"

// Exit codes for repolint binaries.
const (
	// ExitSuccess indicates the suite passed or its directory was absent.
	ExitSuccess = 0

	// ExitValidationFailed indicates validation errors were found. Command
	// failures such as an invalid config file also exit with this code.
	ExitValidationFailed = 1
)

// ExitCodeFromResult determines the exit code for a suite result.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasErrors() {
		return ExitValidationFailed
	}
	return ExitSuccess
}
