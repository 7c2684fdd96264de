package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the input log does not exist.
	ErrNotFound = errors.New("results file not found")

	// ErrEmptyOrAllInvalid is returned when no usable record survives loading
	// and validation.
	ErrEmptyOrAllInvalid = errors.New("no valid game records")

	// ErrLineTooLong is the cause of a ParseError for a line above the
	// record size limit.
	ErrLineTooLong = errors.New("line exceeds maximum record size")
)

// ParseError describes a line that is not a JSON object.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
