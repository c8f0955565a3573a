package textfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zoro11031/textedit/internal/oplog"
)

// recordingObserver remembers which operations were observed
type recordingObserver struct {
	ops  []string
	errs []error
}

func (r *recordingObserver) Observe(op string, fn func() error) error {
	err := fn()
	r.ops = append(r.ops, op)
	r.errs = append(r.errs, err)
	return err
}

func TestLoggedEditorOperationNames(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "notes.txt", "hello")
	m, _ := Open(path)
	obs := &recordingObserver{}
	editor := WithLogging(m, obs)

	if editor.Path() != path {
		t.Errorf("Path() = %v, want %v", editor.Path(), path)
	}
	if err := editor.Write("world"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := editor.Append("!"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	got, err := editor.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != "world!" {
		t.Errorf("Read() = %q, want %q", got, "world!")
	}

	want := []string{OpWrite, OpAppend, OpRead}
	if strings.Join(obs.ops, ",") != strings.Join(want, ",") {
		t.Errorf("observed ops = %v, want %v", obs.ops, want)
	}
}

func TestLoggedEditorWritesLogLines(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "notes.txt", "a")
	logPath := filepath.Join(dir, oplog.DefaultFileName)

	registry := oplog.NewRegistry(logPath)
	defer registry.Close()

	m, _ := Open(path)
	editor := WithLogging(m, registry)

	if err := editor.Append("\nb"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if _, err := editor.Read(); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	os.Remove(path)
	_, readErr := editor.Read()
	if !errors.Is(readErr, ErrCorrupted) {
		t.Fatalf("Read() error = %v, want ErrCorrupted", readErr)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("log has %d lines, want 3:\n%s", len(lines), data)
	}

	wantSuffixes := []string{
		" - INFO - Successfully completed: append",
		" - INFO - Successfully completed: read",
		" - ERROR - Error in 'read': " + readErr.Error(),
	}
	for i, suffix := range wantSuffixes {
		if !strings.HasSuffix(lines[i], suffix) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], suffix)
		}
	}
}
