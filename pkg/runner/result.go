package runner

import (
	"github.com/yaklabco/repolint/pkg/config"
	"github.com/yaklabco/repolint/pkg/lint"
)

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of files enumerated for the suite.
	FilesDiscovered int

	// FilesChecked is the number of files read and passed to the rules.
	FilesChecked int

	// FilesUnreadable is the number of files that could not be read or decoded.
	FilesUnreadable int

	// FilesWithErrors is the number of files with at least one error.
	FilesWithErrors int

	// PackagesChecked is the number of package directories inspected.
	PackagesChecked int

	// ErrorsTotal is len(Result.Errors).
	ErrorsTotal int
}

// Result is the outcome of a single suite run.
type Result struct {
	// Suite is the suite that ran.
	Suite config.Suite

	// Root is the directory that was scanned.
	Root string

	// RootMissing is set when Root does not exist. Nothing was checked and
	// the run counts as a pass.
	RootMissing bool

	// Errors holds every ValidationError in report order: package errors
	// first, then file errors in path order.
	Errors []lint.ValidationError

	// Stats contains aggregate counters for the run.
	Stats Stats
}

// HasErrors reports whether any ValidationError was collected.
func (r *Result) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

// Passed reports whether the run should exit successfully.
func (r *Result) Passed() bool {
	return !r.HasErrors()
}

// Messages returns the rendered "subject: message" form of every error.
func (r *Result) Messages() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = e.String()
	}
	return out
}

func (r *Result) add(errs []lint.ValidationError) {
	r.Errors = append(r.Errors, errs...)
	r.Stats.ErrorsTotal = len(r.Errors)
}
