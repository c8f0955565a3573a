package oplog

import (
	"fmt"
	"os"
)

// Sink is an open log destination for one operation name
type Sink struct {
	op       string
	file     *os.File
	registry *Registry
}

// Op returns the operation name the sink belongs to
func (s *Sink) Op() string {
	return s.op
}

// Info appends an INFO line
func (s *Sink) Info(msg string) {
	s.write(LevelInfo, msg)
}

// Error appends an ERROR line
func (s *Sink) Error(msg string) {
	s.write(LevelError, msg)
}

// write appends one line. Failures are reported, never returned, so logging
// cannot change the outcome of the observed operation.
func (s *Sink) write(level, msg string) {
	// Format: timestamp - LEVEL - message
	line := fmt.Sprintf("%s - %s - %s\n", s.registry.now().Format(TimeFormat), level, msg)
	if _, err := s.file.WriteString(line); err != nil {
		fmt.Fprintf(s.registry.errOut, "Failed to write to log file: %v\n", err)
	}
}
