// Package main is the standalone style guide validator for TypeScript packages.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/repolint/internal/cli"
	"github.com/yaklabco/repolint/internal/logging"
)

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
	cmd := cli.NewStyleCommand(cli.BuildInfo{Version: version, Commit: commit, Date: date})

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrValidationFailed) {
			logging.Default().Error("validation aborted", logging.FieldError, err)
		}
		return cli.ExitValidationFailed
	}

	return cli.ExitSuccess
}
