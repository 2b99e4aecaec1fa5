// Package fsutil provides file system helpers for repolint: strict text
// reads for the checkers and atomic writes for generated config files.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrInvalidText indicates the content is not valid UTF-8.
	ErrInvalidText = errors.New("invalid UTF-8 text")
)

// ReadText reads the file at path and decodes it as UTF-8.
// The text is returned verbatim, including any leading byte order mark.
// Content with invalid UTF-8 sequences is rejected with ErrInvalidText
// rather than repaired.
func ReadText(ctx context.Context, path string) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("read text: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return "", classify(path, err)
	}

	if stat.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", classify(path, err)
	}

	return DecodeText(path, raw)
}

// DecodeText validates raw as UTF-8 without altering it.
// The path is only used to annotate errors.
func DecodeText(path string, raw []byte) (string, error) {
	text, _, err := transform.Bytes(encoding.UTF8Validator, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidText, path, err)
	}

	return string(text), nil
}

// DirExists reports whether path exists and is a directory.
// A missing path is not an error.
func DirExists(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, classify(path, err)
	}
	return stat.IsDir(), nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}
