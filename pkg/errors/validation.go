package errors

import (
	"strings"
	"unicode"
)

// MaxDimension bounds grid width and height accepted from untrusted input.
const MaxDimension = 4096

// ValidateDimensions checks that a requested grid size is usable.
func ValidateDimensions(w, h int) error {
	if w <= 0 || h <= 0 {
		return New(ErrCodeInvalidInput, "grid dimensions must be positive, got %dx%d", w, h)
	}
	if w > MaxDimension || h > MaxDimension {
		return New(ErrCodeInvalidInput, "grid dimensions too large: %dx%d (max %d)", w, h, MaxDimension)
	}
	return nil
}

// ValidateOutputPath validates a file path supplied for writing output.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}
