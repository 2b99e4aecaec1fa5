package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/repolint/internal/logging"
	"github.com/yaklabco/repolint/pkg/lint"
)

// DescribePackages lists the immediate, non-hidden subdirectories of dir
// and records the entries found directly inside each one. Symlinks are
// resolved when deciding whether an entry is a directory. Packages are
// returned in name order.
func DescribePackages(ctx context.Context, dir string) ([]*lint.PackageDescriptor, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read packages directory %s: %w", dir, err)
	}

	var pkgs []*lint.PackageDescriptor

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return pkgs, fmt.Errorf("describe packages: %w", ctx.Err())
		default:
		}

		path := filepath.Join(dir, entry.Name())
		if enry.IsDotFile(path) || !isDir(path, entry) {
			continue
		}

		pkgs = append(pkgs, &lint.PackageDescriptor{
			Path:    path,
			Name:    entry.Name(),
			Entries: listEntries(ctx, path),
		})
	}

	return pkgs, nil
}

// listEntries maps the names directly inside dir to whether they are
// directories. An unreadable package is treated as empty so that its
// missing items are still reported.
func listEntries(ctx context.Context, dir string) map[string]bool {
	result := make(map[string]bool)

	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.FromContext(ctx).Debug("cannot list package", logging.FieldPath, dir, logging.FieldError, err)
		return result
	}

	for _, entry := range entries {
		result[entry.Name()] = isDir(filepath.Join(dir, entry.Name()), entry)
	}

	return result
}

func isDir(path string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
