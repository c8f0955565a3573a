package common

import (
	"errors"
	"strings"
)

// Path validation errors
var (
	ErrEmptyPath = errors.New("file path should not be empty")
	ErrNULInPath = errors.New("file path must not contain NUL bytes")
)

// NormalizePath trims surrounding whitespace from user input
func NormalizePath(input string) string {
	return strings.TrimSpace(input)
}

// ValidateFilePath checks that a user-supplied path is usable before it is
// looked up on disk. Existence is not checked here.
func ValidateFilePath(path string) error {
	if NormalizePath(path) == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(path, 0) {
		return ErrNULInPath
	}
	return nil
}
