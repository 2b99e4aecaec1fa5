// Package runner walks a suite's directory, feeds files and packages through
// the lint engine and collects the resulting ValidationErrors.
package runner

import (
	"path/filepath"
	"strings"

	"github.com/yaklabco/repolint/pkg/config"
)

// Options controls a single validation run.
type Options struct {
	// Root is the repository root. Error subjects are shown relative to it.
	Root string

	// Dir is the directory scanned for the suite, usually under Root.
	Dir string

	// Suite selects which rules run.
	Suite config.Suite

	// Extensions are the file extensions (with leading dot) to enumerate.
	// Matching is case-sensitive.
	Extensions []string

	// ExcludeDirs are path segments that exclude a file when they appear
	// anywhere in its path relative to Dir.
	ExcludeDirs []string

	// SkipHidden excludes files whose base name starts with a dot, which
	// also covers "._" resource forks.
	SkipHidden bool

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// OptionsFor builds the Options for suite from cfg, rooted at root.
func OptionsFor(root string, cfg *config.Config, suite config.Suite) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	opts := Options{
		Root:       root,
		Suite:      suite,
		SkipHidden: true,
		Config:     cfg,
	}

	switch suite {
	case config.SuiteDocs:
		opts.Dir = filepath.Join(root, cfg.Docs.Dir)
		opts.Extensions = cfg.Docs.Extensions
	case config.SuiteStyle:
		opts.Dir = filepath.Join(root, cfg.Style.PackagesDir)
		opts.Extensions = cfg.Style.Extensions
		opts.ExcludeDirs = cfg.Style.ExcludeDirs
	}

	return opts
}

// displayPath returns path relative to Root, or path itself when it is not
// under Root.
func (o Options) displayPath(path string) string {
	if o.Root == "" {
		return path
	}
	rel, err := filepath.Rel(o.Root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
