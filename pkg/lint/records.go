package lint

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// FileRecord is a file's path plus its decoded text, read once per pass.
type FileRecord struct {
	// Path is the absolute path of the file.
	Path string

	// DisplayPath is the path used as the subject of errors.
	DisplayPath string

	// Text is the decoded file content.
	Text string

	// Lines is Text split into lines without terminators.
	Lines []string
}

// NewFileRecord builds a FileRecord, splitting text into lines.
// An empty displayPath falls back to path.
func NewFileRecord(path, displayPath, text string) *FileRecord {
	if displayPath == "" {
		displayPath = path
	}
	return &FileRecord{
		Path:        path,
		DisplayPath: displayPath,
		Text:        text,
		Lines:       SplitLines(text),
	}
}

// Name returns the base name of the file.
func (f *FileRecord) Name() string {
	return filepath.Base(f.Path)
}

// IsBlank reports whether the file has no non-whitespace content.
func (f *FileRecord) IsBlank() bool {
	return strings.TrimSpace(f.Text) == ""
}

// SplitLines splits text into lines on the same terminators as Python's
// str.splitlines: "\n", "\r\n", "\r", "\v", "\f", "\x1c", "\x1d",
// "\x1e", U+0085, U+2028 and U+2029. A trailing terminator does not
// produce an extra empty line, so "a\nb\n" has two lines and "" has none.
func SplitLines(text string) []string {
	var lines []string

	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineTerminator(r) {
			i += size
			continue
		}

		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}

	if start < len(text) {
		lines = append(lines, text[start:])
	}

	return lines
}

func isLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

// PackageDescriptor is a package directory plus the names found directly inside it.
type PackageDescriptor struct {
	// Path is the absolute path of the package directory.
	Path string

	// Name is the directory's base name, used as the subject of errors.
	Name string

	// Entries maps each entry name to whether it is a directory.
	Entries map[string]bool
}

// Has reports whether an entry with the given name exists.
func (p *PackageDescriptor) Has(name string) bool {
	_, ok := p.Entries[name]
	return ok
}

// HasDir reports whether a directory with the given name exists.
func (p *PackageDescriptor) HasDir(name string) bool {
	return p.Entries[name]
}
