// Package verr defines the error taxonomy shared by the verification
// entry points. Every failure carries a diagnostic message sufficient to
// understand the mismatch without rerunning the check.
package verr

import "fmt"

// ValidationError reports a structural precondition violation, such as a
// non-terminal measurement or a qubit-count conflict.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ComparisonError reports a numeric or structural mismatch beyond tolerance:
// differing measured-qubit sets, a block phase deviation above atol, or
// differing diagram content.
type ComparisonError struct {
	Msg string
	// MaxDeviation is the largest observed absolute deviation, when the
	// failure is numeric. Zero for purely structural mismatches.
	MaxDeviation float64
}

func (e *ComparisonError) Error() string { return e.Msg }

// Comparisonf builds a ComparisonError with no deviation attached.
func Comparisonf(format string, args ...any) *ComparisonError {
	return &ComparisonError{Msg: fmt.Sprintf(format, args...)}
}

// RepresentationError reports that an operation exposes no representation the
// check can use: neither a dense matrix nor an incremental apply primitive,
// or a qubit count that cannot be determined by any means.
type RepresentationError struct {
	Msg string
}

func (e *RepresentationError) Error() string { return e.Msg }

// Representationf builds a RepresentationError from a format string.
func Representationf(format string, args ...any) *RepresentationError {
	return &RepresentationError{Msg: fmt.Sprintf(format, args...)}
}
