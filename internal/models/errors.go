package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuery is returned for empty or malformed search input.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrFocusNotFound is returned when the requested focus record is not among the results.
	ErrFocusNotFound = errors.New("focus client not found")
)

// ConnectionError means the record store could not be reached.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("store unreachable during %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ParseError means an uploaded document could not be read as tabular data.
type ParseError struct {
	File   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("cannot parse %q: %s", e.File, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationWarning is a non-fatal ingestion issue. It is collected in the import report.
type ValidationWarning struct {
	Row     int    `json:"row,omitempty"`
	Column  string `json:"column"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

func (w ValidationWarning) String() string {
	if w.Row > 0 {
		return fmt.Sprintf("row %d, %s=%q: %s", w.Row, w.Column, w.Value, w.Message)
	}
	return fmt.Sprintf("%s=%q: %s", w.Column, w.Value, w.Message)
}
