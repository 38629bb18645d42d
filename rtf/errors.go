package rtf

import (
	"errors"
	"fmt"
)

// Sentinel errors for encoding failure conditions.
var (
	// ErrImageNotFound is returned when a figure's source file does not
	// exist. This aborts the document: a figure document must never be
	// silently emitted without its figure.
	ErrImageNotFound = errors.New("rtf: image file not found")
)

// EncodeError represents an error that occurred during a specific encoding
// operation. It wraps an underlying error and includes the operation name
// for context.
type EncodeError struct {
	Op  string // operation name, e.g. "Assemble", "WriteFile"
	Err error  // underlying error
}

func (e *EncodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rtf.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("rtf.%s: unknown error", e.Op)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// newEncodeError creates an EncodeError wrapping err with operation context.
func newEncodeError(op string, err error) *EncodeError {
	return &EncodeError{Op: op, Err: err}
}
