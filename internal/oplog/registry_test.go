package oplog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 7, 123_000_000, time.UTC)
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry(filepath.Join(t.TempDir(), DefaultFileName))
	r.SetClock(fixedClock)
	t.Cleanup(func() { r.Close() })
	return r
}

func readLog(t *testing.T, r *Registry) []string {
	t.Helper()
	data, err := os.ReadFile(r.Path())
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	trimmed := strings.TrimSuffix(string(data), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func TestNewRegistryOpensNothing(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := os.Stat(r.Path()); !os.IsNotExist(err) {
		t.Errorf("log file should not exist before first sink, stat error = %v", err)
	}
}

func TestSinkIsIdempotent(t *testing.T) {
	r := newTestRegistry(t)

	first, err := r.Sink("read")
	if err != nil {
		t.Fatalf("Sink() error = %v", err)
	}
	second, err := r.Sink("read")
	if err != nil {
		t.Fatalf("Sink() error = %v", err)
	}
	if first != second {
		t.Error("Sink() returned a new sink for an existing operation")
	}

	other, _ := r.Sink("write")
	if other == first {
		t.Error("Sink() shared a sink between operations")
	}
	if other.Op() != "write" {
		t.Errorf("Op() = %v, want write", other.Op())
	}
}

func TestObserveSuccess(t *testing.T) {
	r := newTestRegistry(t)

	called := false
	err := r.Observe("read", func() error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("Observe() error = %v", err)
	}
	if !called {
		t.Fatal("Observe() did not run the operation")
	}

	lines := readLog(t, r)
	want := "2024-03-09 14:05:07,123 - INFO - Successfully completed: read"
	if len(lines) != 1 || lines[0] != want {
		t.Errorf("log = %q, want [%q]", lines, want)
	}
}

func TestObserveFailureReturnsSameError(t *testing.T) {
	r := newTestRegistry(t)
	opErr := errors.New("disk on fire")

	err := r.Observe("write", func() error { return opErr })
	if err != opErr {
		t.Fatalf("Observe() error = %v, want the original error", err)
	}

	lines := readLog(t, r)
	want := "2024-03-09 14:05:07,123 - ERROR - Error in 'write': disk on fire"
	if len(lines) != 1 || lines[0] != want {
		t.Errorf("log = %q, want [%q]", lines, want)
	}
}

func TestObserveOneLinePerOperation(t *testing.T) {
	r := newTestRegistry(t)
	fail := errors.New("boom")

	results := []error{nil, fail, nil, nil, fail}
	for _, res := range results {
		res := res
		r.Observe("append", func() error { return res })
	}

	lines := readLog(t, r)
	if len(lines) != len(results) {
		t.Fatalf("log has %d lines, want %d", len(lines), len(results))
	}

	var infos, errs int
	for _, line := range lines {
		switch {
		case strings.Contains(line, " - INFO - "):
			infos++
		case strings.Contains(line, " - ERROR - "):
			errs++
		}
	}
	if infos != 3 || errs != 2 {
		t.Errorf("got %d INFO and %d ERROR lines, want 3 and 2", infos, errs)
	}
}

func TestSinksShareLogFile(t *testing.T) {
	r := newTestRegistry(t)

	r.Observe("read", func() error { return nil })
	r.Observe("write", func() error { return nil })
	r.Observe("read", func() error { return nil })

	lines := readLog(t, r)
	wantOps := []string{"read", "write", "read"}
	if len(lines) != len(wantOps) {
		t.Fatalf("log has %d lines, want %d", len(lines), len(wantOps))
	}
	for i, op := range wantOps {
		if !strings.HasSuffix(lines[i], "Successfully completed: "+op) {
			t.Errorf("line %d = %q, want op %s", i, lines[i], op)
		}
	}
}

func TestObserveAppendsToExistingLog(t *testing.T) {
	r := newTestRegistry(t)
	if err := os.WriteFile(r.Path(), []byte("earlier run\n"), 0644); err != nil {
		t.Fatalf("Failed to seed log: %v", err)
	}

	r.Observe("read", func() error { return nil })

	lines := readLog(t, r)
	if len(lines) != 2 || lines[0] != "earlier run" {
		t.Errorf("log = %q, want earlier line kept", lines)
	}
}

func TestObserveSinkOpenFailure(t *testing.T) {
	r := NewRegistry(filepath.Join(t.TempDir(), "missing", "dir", DefaultFileName))

	called := false
	err := r.Observe("read", func() error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("Observe() error = nil, want log open failure")
	}
	if called {
		t.Error("Observe() ran the operation without a sink")
	}
}

func TestWriteFailureIsReported(t *testing.T) {
	r := newTestRegistry(t)
	var errOut bytes.Buffer
	r.SetErrorOutput(&errOut)

	sink, err := r.Sink("read")
	if err != nil {
		t.Fatalf("Sink() error = %v", err)
	}
	sink.file.Close()

	opErr := errors.New("read failed")
	if got := r.Observe("read", func() error { return opErr }); got != opErr {
		t.Errorf("Observe() error = %v, want the original error", got)
	}
	if !strings.Contains(errOut.String(), "Failed to write to log file") {
		t.Errorf("error output = %q, want write failure report", errOut.String())
	}
}

func TestCloseReleasesSinks(t *testing.T) {
	r := NewRegistry(filepath.Join(t.TempDir(), DefaultFileName))

	first, _ := r.Sink("read")
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	second, err := r.Sink("read")
	if err != nil {
		t.Fatalf("Sink() after Close() error = %v", err)
	}
	if first == second {
		t.Error("Sink() after Close() reused a closed sink")
	}
	r.Close()
}
