package errors

import (
	"strings"
	"unicode"
)

// ValidateNavigationType validates a navigation type string.
// Valid values are "scroll" and "arrows".
func ValidateNavigationType(nav string) error {
	switch nav {
	case "scroll", "arrows":
		return nil
	case "":
		return New(ErrCodeInvalidNavigation, "navigation type cannot be empty")
	default:
		return New(ErrCodeInvalidNavigation, "unknown navigation type: %q (want scroll or arrows)", nav)
	}
}

// ValidateOrientation validates a layout orientation string.
// Valid values are "horizontal" and "vertical".
func ValidateOrientation(orientation string) error {
	switch orientation {
	case "horizontal", "vertical":
		return nil
	case "":
		return New(ErrCodeInvalidOrientation, "orientation cannot be empty")
	default:
		return New(ErrCodeInvalidOrientation, "unknown orientation: %q (want horizontal or vertical)", orientation)
	}
}

// ValidateContentPath validates a content manifest path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No parent-directory traversal sequences
func ValidateContentPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "content path cannot be empty")
	}

	if len(path) > 500 {
		return New(ErrCodeInvalidPath, "content path too long (max 500 characters)")
	}

	for _, r := range path {
		if r == 0 || (unicode.IsControl(r) && r != '\t') {
			return New(ErrCodeInvalidPath, "content path contains invalid control characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "content path cannot contain parent-directory traversal")
	}

	return nil
}
