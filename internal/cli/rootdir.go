package cli

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveRoot returns the repository root. An explicit path wins;
// otherwise the root is derived from the running executable.
func ResolveRoot(explicit string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("resolve root %q: %w", explicit, err)
		}
		return abs, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}

	return RootFromExecutable(exe)
}

// RootFromExecutable returns the parent of the directory containing exe,
// after resolving symlinks. A validator installed at <root>/bin/tool
// therefore checks <root>.
func RootFromExecutable(exe string) (string, error) {
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable %q: %w", exe, err)
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("resolve executable %q: %w", exe, err)
	}

	return filepath.Dir(filepath.Dir(abs)), nil
}
