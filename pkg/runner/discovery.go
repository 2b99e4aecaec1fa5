package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Discover enumerates the files under opts.Dir that the suite checks.
// It returns a sorted list of absolute paths below opts.Dir. Directory
// symlinks inside the tree are not followed; file symlinks are included when
// they resolve to a regular file. opts.Dir itself may be a symlink.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	base, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve directory: %w", err)
	}

	// WalkDir uses Lstat on root, so walk the link target and report paths
	// under base.
	root, err := filepath.EvalSymlinks(base)
	if err != nil {
		return nil, fmt.Errorf("resolve directory %s: %w", base, err)
	}

	var files []string

	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			info, statErr := os.Stat(path)
			if statErr != nil || !info.Mode().IsRegular() {
				// Broken links and links to directories are skipped.
				return nil //nolint:nilerr // Intentionally skip unusable symlinks
			}
		} else if !entry.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return fmt.Errorf("relative path of %s: %w", path, relErr)
		}

		if Excluded(rel, opts) {
			return nil
		}

		files = append(files, filepath.Join(base, rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	sort.Strings(files)

	return files, nil
}

// Excluded reports whether the file at rel, a path relative to the suite
// directory, is left out of the run.
func Excluded(rel string, opts Options) bool {
	if !hasExtension(rel, opts.Extensions) {
		return true
	}

	if opts.SkipHidden && enry.IsDotFile(rel) {
		return true
	}

	if len(opts.ExcludeDirs) > 0 {
		for _, segment := range strings.Split(filepath.ToSlash(rel), "/") {
			if slices.Contains(opts.ExcludeDirs, segment) {
				return true
			}
		}
	}

	return false
}

// hasExtension reports whether path ends in one of extensions.
func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	return ext != "" && slices.Contains(extensions, ext)
}
