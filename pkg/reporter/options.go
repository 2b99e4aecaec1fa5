package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/repolint/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls styling.
	// Values: "auto" (default), "always", "never"
	Color string

	// MaxErrors caps the number of errors listed in text output.
	// 0 means unlimited. JSON output is never capped.
	MaxErrors int

	// DirName is the suite directory as configured, used in the
	// missing-directory warning.
	DirName string

	// GuideName and GuideURL identify the style guide in style reports.
	GuideName string
	GuideURL  string

	// Compact disables JSON indentation.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:    os.Stdout,
		Format:    FormatText,
		Color:     "auto",
		DirName:   "docs",
		GuideName: config.DefaultGuideName,
		GuideURL:  config.DefaultGuideURL,
	}
}

// OptionsFromConfig returns DefaultOptions adjusted for suite from cfg.
func OptionsFromConfig(cfg *config.Config, suite config.Suite) Options {
	opts := DefaultOptions()
	if cfg == nil {
		cfg = config.NewConfig()
	}

	if cfg.Color != "" {
		opts.Color = cfg.Color
	}
	if cfg.Format != "" {
		opts.Format = Format(cfg.Format)
	}

	opts.GuideName = cfg.Style.GuideName
	opts.GuideURL = cfg.Style.GuideURL

	switch suite {
	case config.SuiteDocs:
		opts.DirName = cfg.Docs.Dir
		opts.MaxErrors = cfg.Docs.MaxErrors
	case config.SuiteStyle:
		opts.DirName = cfg.Style.PackagesDir
		opts.MaxErrors = cfg.Style.MaxErrors
	}

	return opts
}
