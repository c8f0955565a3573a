// Package textfile provides whole-file read, overwrite and append operations
// on a single UTF-8 text file. A Manager holds only a path; every operation
// opens and closes the file for the duration of the call.
package textfile

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// Operation names, also used as log sink names
const (
	OpRead   = "read"
	OpWrite  = "write"
	OpAppend = "append"
)

const filePerms os.FileMode = 0644

// Manager wraps one text file path
type Manager struct {
	path string
}

// Open returns a Manager for path. It fails with ErrNotFound if nothing exists
// at path. The check is not repeated: later operations rely on the filesystem.
func Open(path string) (*Manager, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, notFound(path, err)
	}
	return &Manager{path: path}, nil
}

// Path returns the managed file path
func (m *Manager) Path() string {
	return m.path
}

// Read returns the full contents of the file
func (m *Manager) Read() (string, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return "", corrupted(OpRead, m.path, err)
	}
	if !utf8.Valid(data) {
		return "", corrupted(OpRead, m.path, ErrInvalidEncoding)
	}
	return string(data), nil
}

// Write replaces the file contents with content
func (m *Manager) Write(content string) error {
	return m.writeWithFlags(OpWrite, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, content)
}

// Append writes content at the end of the file
func (m *Manager) Append(content string) error {
	return m.writeWithFlags(OpAppend, os.O_WRONLY|os.O_CREATE|os.O_APPEND, content)
}

func (m *Manager) writeWithFlags(op string, flag int, content string) error {
	if !utf8.ValidString(content) {
		return corrupted(op, m.path, ErrInvalidEncoding)
	}

	file, err := os.OpenFile(m.path, flag, filePerms)
	if err != nil {
		return corrupted(op, m.path, err)
	}

	if _, err := file.WriteString(content); err != nil {
		file.Close()
		return corrupted(op, m.path, err)
	}

	// A failed close can lose buffered data
	if err := file.Close(); err != nil {
		return corrupted(op, m.path, fmt.Errorf("failed to close file: %w", err))
	}
	return nil
}
