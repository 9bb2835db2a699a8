package convert

import (
	"errors"
	"fmt"
)

// Sentinel errors for input-shape problems. All are raised synchronously
// at the point of data assignment, never at render time.
var (
	// ErrMissingTime indicates that no time field, time column, or
	// time-like row index could be found in the input.
	ErrMissingTime = errors.New("input has no time field, time column, or time-like index")

	// ErrAmbiguousValue indicates that a single value column could not be
	// determined from a table input.
	ErrAmbiguousValue = errors.New("cannot determine value column")
)

// UnexpectedShapeError is returned for matrix rows whose width matches
// neither the OHLC layout (>=5) nor the time/value layout (2).
type UnexpectedShapeError struct {
	RowLen int
}

func (e *UnexpectedShapeError) Error() string {
	return fmt.Sprintf("unexpected matrix row length: %d", e.RowLen)
}

// NonNumericValueError is returned when a table cell in a numeric column
// cannot be coerced to a float.
type NonNumericValueError struct {
	Column string
	Value  any
}

func (e *NonNumericValueError) Error() string {
	return fmt.Sprintf("non-numeric value in column %q: %v (%T)", e.Column, e.Value, e.Value)
}

// UnsupportedTimeTypeError is returned when a time value cannot be coerced
// to Unix seconds.
type UnsupportedTimeTypeError struct {
	Value any
}

func (e *UnsupportedTimeTypeError) Error() string {
	return fmt.Sprintf("unsupported time type: %T", e.Value)
}
