// Package oplog records the outcome of file operations to an append-only log
// file. Each operation name gets its own sink, opened on first use and kept
// open until the Registry is closed. All sinks of a Registry write to the same
// file.
//
// A Registry is not safe for concurrent use.
package oplog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// DefaultFileName is the log file name used when none is configured
const DefaultFileName = "file_history.txt"

// TimeFormat is the timestamp layout of every log line
const TimeFormat = "2006-01-02 15:04:05,000"

// Levels
const (
	LevelInfo  = "INFO"
	LevelError = "ERROR"
)

// Registry maps operation names to their open sinks
type Registry struct {
	path   string
	sinks  map[string]*Sink
	now    func() time.Time
	errOut io.Writer // receives failures to write a log line
}

// NewRegistry creates a Registry writing to the log file at path.
// No file is opened until the first sink is requested.
func NewRegistry(path string) *Registry {
	return &Registry{
		path:   path,
		sinks:  make(map[string]*Sink),
		now:    time.Now,
		errOut: os.Stderr,
	}
}

// SetClock replaces the time source used for timestamps
func (r *Registry) SetClock(now func() time.Time) {
	r.now = now
}

// SetErrorOutput sets where failures to write a log line are reported
func (r *Registry) SetErrorOutput(w io.Writer) {
	r.errOut = w
}

// Path returns the log file path
func (r *Registry) Path() string {
	return r.path
}

// Sink returns the sink for op, opening it on first use
func (r *Registry) Sink(op string) (*Sink, error) {
	if s, ok := r.sinks[op]; ok {
		return s, nil
	}

	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	s := &Sink{op: op, file: file, registry: r}
	r.sinks[op] = s
	return s, nil
}

// Observe runs fn and appends one line describing its outcome to the sink for
// op. The error returned by fn is passed back unchanged. If the sink cannot be
// opened fn is not run.
func (r *Registry) Observe(op string, fn func() error) error {
	sink, err := r.Sink(op)
	if err != nil {
		return err
	}

	if err := fn(); err != nil {
		sink.Error(fmt.Sprintf("Error in '%s': %v", op, err))
		return err
	}

	sink.Info(fmt.Sprintf("Successfully completed: %s", op))
	return nil
}

// Close closes every open sink
func (r *Registry) Close() error {
	var errs []error
	for op, s := range r.sinks {
		if err := s.file.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close sink %s: %w", op, err))
		}
		delete(r.sinks, op)
	}
	return errors.Join(errs...)
}
