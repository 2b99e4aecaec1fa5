package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/repolint/internal/logging"
	"github.com/yaklabco/repolint/pkg/fsutil"
	"github.com/yaklabco/repolint/pkg/lint"
)

// Runner drives the lint engine over a suite's directory.
type Runner struct {
	// Engine applies the registered rules.
	Engine *lint.Engine
}

// New creates a new Runner with the given engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run checks every package and file of the suite described by opts, one at
// a time, and returns all collected ValidationErrors.
//
// A missing suite directory is not an error: the Result has RootMissing set
// and no errors. Unreadable files become ValidationErrors and the run goes
// on. The returned error is non-nil only when the directory cannot be
// inspected or ctx is cancelled.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	result := &Result{Suite: opts.Suite, Root: opts.Dir}

	exists, err := fsutil.DirExists(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", opts.Dir, err)
	}
	if !exists {
		logger.Debug("suite directory missing", logging.FieldSuite, opts.Suite, logging.FieldDir, opts.Dir)
		result.RootMissing = true
		return result, nil
	}

	if r.Engine.HasScope(opts.Config, opts.Suite, lint.ScopePackage) {
		if err := r.checkPackages(ctx, opts, result); err != nil {
			return result, err
		}
	}

	files, err := Discover(ctx, opts)
	if err != nil {
		return result, err
	}
	result.Stats.FilesDiscovered = len(files)

	logger.Debug("discovered files",
		logging.FieldSuite, opts.Suite,
		logging.FieldDir, opts.Dir,
		logging.FieldExtensions, opts.Extensions,
		logging.FieldFilesDiscovered, len(files),
	)

	for _, path := range files {
		if err := r.checkFile(ctx, opts, path, result); err != nil {
			return result, err
		}
	}

	logger.Debug("run complete",
		logging.FieldSuite, opts.Suite,
		logging.FieldFilesChecked, result.Stats.FilesChecked,
		logging.FieldFilesUnreadable, result.Stats.FilesUnreadable,
		logging.FieldPackages, result.Stats.PackagesChecked,
		logging.FieldErrorsTotal, result.Stats.ErrorsTotal,
	)

	return result, nil
}

func (r *Runner) checkPackages(ctx context.Context, opts Options, result *Result) error {
	pkgs, err := DescribePackages(ctx, opts.Dir)
	if err != nil {
		return err
	}

	for _, pkg := range pkgs {
		errs, err := r.Engine.CheckPackage(ctx, pkg, opts.Config, opts.Suite)
		result.add(errs)
		if err != nil {
			return fmt.Errorf("run cancelled: %w", err)
		}
		result.Stats.PackagesChecked++
	}

	return nil
}

func (r *Runner) checkFile(ctx context.Context, opts Options, path string, result *Result) error {
	display := opts.displayPath(path)

	text, err := fsutil.ReadText(ctx, path)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("run cancelled: %w", err)
		}
		result.Stats.FilesUnreadable++
		result.Stats.FilesWithErrors++
		result.add([]lint.ValidationError{
			lint.NewValidationError("", display, "Error reading file - "+err.Error()),
		})
		return nil
	}

	rec := lint.NewFileRecord(path, display, text)

	errs, err := r.Engine.CheckFile(ctx, rec, opts.Config, opts.Suite)
	result.add(errs)
	if err != nil {
		return fmt.Errorf("run cancelled: %w", err)
	}

	result.Stats.FilesChecked++
	if len(errs) > 0 {
		result.Stats.FilesWithErrors++
	}

	return nil
}
