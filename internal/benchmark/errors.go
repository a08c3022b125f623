package benchmark

import (
	"errors"
	"fmt"
)

var (
	// ErrNoBenchmarks is returned when the document has no top-level
	// "benchmarks" collection.
	ErrNoBenchmarks = errors.New("document has no benchmarks collection")
	// ErrMissingField is returned when a graph record lacks a required field.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidRecord is returned when a record fails validation.
	ErrInvalidRecord = errors.New("invalid benchmark record")
	// ErrMalformedName is returned when a benchmark name does not follow
	// the "prefix_GraphType/Algorithm/..." layout.
	ErrMalformedName = errors.New("malformed benchmark name")
	// ErrDuplicate is returned in strict mode when the same algorithm is
	// measured twice at one data point.
	ErrDuplicate = errors.New("duplicate benchmark entry")
)

// NameError describes a benchmark name that could not be split into a
// graph type and an algorithm.
type NameError struct {
	Name   string
	Reason string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformedName, e.Name, e.Reason)
}

func (e *NameError) Unwrap() error { return ErrMalformedName }

// RecordError ties a load failure to the offending record.
type RecordError struct {
	Index int
	Name  string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("benchmarks[%d] (%s): %v", e.Index, e.Name, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
