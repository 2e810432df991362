package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrMissingInput       = errors.New("missing input")
	ErrMalformedRecord    = errors.New("malformed record")
	ErrInvariantViolation = errors.New("invariant violation")
)

// RecordError ties a failure to the day and input line that produced it.
type RecordError struct {
	Day    int
	Line   int    // Optional: 1-based line number, 0 when the failure is not tied to a line
	Record string // Optional: raw text of the offending record
	Err    error
}

func (e *RecordError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("day %02d", e.Day)
	if e.Line > 0 {
		base += fmt.Sprintf(", line %d", e.Line)
	}
	if e.Record != "" {
		base += fmt.Sprintf(" (%q)", e.Record)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *RecordError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Malformed reports a line that does not match the record shape a day expects.
func Malformed(day int, line Line, format string, args ...any) error {
	return newRecordError(day, line, ErrMalformedRecord, format, args...)
}

// Violation reports a record that parsed but breaks a puzzle guarantee.
func Violation(day int, line Line, format string, args ...any) error {
	return newRecordError(day, line, ErrInvariantViolation, format, args...)
}

func newRecordError(day int, line Line, kind error, format string, args ...any) error {
	return &RecordError{
		Day:    day,
		Line:   line.Number,
		Record: line.Text,
		Err:    fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)),
	}
}
