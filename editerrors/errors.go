package editerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrSyntax indicates the path spec does not match the grammar.
	ErrSyntax = errors.New("spec syntax error")

	// ErrTypeMismatch indicates a step found the wrong JSON kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrIndexOutOfRange indicates an array index outside the valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrPrecondition indicates an existence-mode check failed.
	ErrPrecondition = errors.New("precondition failed")

	// ErrUnsupported indicates the operation cannot act on the resolved site.
	ErrUnsupported = errors.New("unsupported operation")
)

// SyntaxError reports path spec text that does not match the grammar.
type SyntaxError struct {
	// Spec is the full path spec being parsed.
	Spec string
	// Remainder is the unmatched portion of the spec.
	Remainder string
	// Offset is the byte offset of Remainder within Spec.
	Offset int
}

// Error returns a human-readable error message.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid spec %q at offset %d", e.Remainder, e.Offset)
}

// Is reports whether target matches this error type.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// TypeMismatchError reports a step that found the wrong JSON kind.
type TypeMismatchError struct {
	// Want is the JSON kind the step required: "object" or "array".
	Want string
	// Got is the JSON kind actually found, including "null".
	Got string
}

// Error returns a human-readable error message.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Want, e.Got)
}

// Is reports whether target matches this error type.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// IndexError reports an array index outside the range required by the
// current step's role.
type IndexError struct {
	// Index is the offending index after negative-index normalization.
	Index int
	// Length is the length of the array at resolution time.
	Length int
	// Message describes which range requirement was violated.
	Message string
}

// Error returns a human-readable error message.
func (e *IndexError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("array index %d (length %d): %s", e.Index, e.Length, e.Message)
	}
	return fmt.Sprintf("array index %d is out of range (length %d)", e.Index, e.Length)
}

// Is reports whether target matches this error type.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// PreconditionError reports a failed existence-mode check.
type PreconditionError struct {
	// Member is the object member name the check concerned, if any.
	Member string
	// Message describes the failed check.
	Message string
}

// Error returns a human-readable error message.
func (e *PreconditionError) Error() string {
	return e.Message
}

// Is reports whether target matches this error type.
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// UnsupportedError reports an operation applied to a site kind it cannot
// act on, such as inserting into an object member.
type UnsupportedError struct {
	// Message describes why the operation is unsupported.
	Message string
}

// Error returns a human-readable error message.
func (e *UnsupportedError) Error() string {
	return e.Message
}

// Is reports whether target matches this error type.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// SpecError is the context wrapper the resolver adds, exactly once, to any
// failure raised while processing a spec. The underlying kind remains
// reachable through Unwrap.
type SpecError struct {
	// Spec is the full path spec being processed.
	Spec string
	// Offset is the byte offset of the step at which the failure occurred.
	Offset int
	// Cause is the underlying error.
	Cause error
}

// Error returns a human-readable error message.
func (e *SpecError) Error() string {
	return fmt.Sprintf("processing spec %q at offset %d: %v", e.Spec, e.Offset, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *SpecError) Unwrap() error {
	return e.Cause
}
