package common

import (
	"errors"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unchanged", "notes.txt", "notes.txt"},
		{"surrounding spaces", "  notes.txt  ", "notes.txt"},
		{"tabs and newline", "\tdir/notes.txt\n", "dir/notes.txt"},
		{"inner spaces kept", " my notes.txt ", "my notes.txt"},
		{"only spaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.input); got != tt.want {
				t.Errorf("NormalizePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateFilePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"relative path", "notes.txt", nil},
		{"absolute path", "/tmp/notes.txt", nil},
		{"empty", "", ErrEmptyPath},
		{"whitespace only", " \t ", ErrEmptyPath},
		{"NUL byte", "notes\x00.txt", ErrNULInPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilePath(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateFilePath() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
