// Package main is the entry point for the repolint CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/repolint/internal/cli"
	"github.com/yaklabco/repolint/internal/logging"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	if err := cli.NewRootCommand(info).Execute(); err != nil {
		// ErrValidationFailed only selects the exit code; the report is already out.
		if !errors.Is(err, cli.ErrValidationFailed) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return cli.ExitValidationFailed
	}

	return cli.ExitSuccess
}
