package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// Input file extensions accepted by the CLI.
var (
	DiagramExtensions = []string{".sbgn", ".xml"}
	TableExtensions   = []string{".sif", ".tsv", ".txt"}
)

// ValidateInputPath checks that path names a file with one of the allowed
// extensions. Extension matching is case-insensitive. An empty allowed list
// accepts any extension.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateInputPath(path string, allowed ...string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "input path cannot be empty")
	}
	if err := checkControl(path); err != nil {
		return err
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidInput, "input path %q is a directory", path)
	}
	if len(allowed) == 0 {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(allowed, ext) {
		return New(ErrCodeInvalidInput, "unsupported input %q (expected one of: %s)", path, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateOutputDir checks an output directory override. Empty means "next to
// the input" and is valid.
func ValidateOutputDir(dir string) error {
	if dir == "" {
		return nil
	}
	return checkControl(dir)
}

func checkControl(s string) error {
	for _, r := range s {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}
	return nil
}
