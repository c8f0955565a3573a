package textfile

import (
	"errors"
	"fmt"
)

// Error kinds returned by Manager. Match them with errors.Is.
var (
	// ErrNotFound is returned by Open when the path does not exist
	ErrNotFound = errors.New("file not found")

	// ErrCorrupted is returned when a read, write or append fails at the I/O
	// or decoding layer
	ErrCorrupted = errors.New("file corrupted")

	// ErrInvalidEncoding is the cause wrapped in ErrCorrupted when content is
	// not valid UTF-8
	ErrInvalidEncoding = errors.New("content is not valid UTF-8")
)

// FileError describes a failed file operation
type FileError struct {
	Op   string // "open", "read", "write" or "append"
	Path string
	Kind error // ErrNotFound or ErrCorrupted
	Err  error // underlying cause, may be nil
}

func (e *FileError) Error() string {
	if e.Kind == ErrNotFound {
		return fmt.Sprintf("file '%s' not found, check path", e.Path)
	}
	return fmt.Sprintf("%s error: %v", e.Op, e.Err)
}

// Is reports whether target is the kind of this error
func (e *FileError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying cause
func (e *FileError) Unwrap() error {
	return e.Err
}

func notFound(path string, err error) error {
	return &FileError{Op: "open", Path: path, Kind: ErrNotFound, Err: err}
}

func corrupted(op, path string, err error) error {
	return &FileError{Op: op, Path: path, Kind: ErrCorrupted, Err: err}
}
