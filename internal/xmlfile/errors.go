package xmlfile

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by File wraps exactly one of these.
var (
	ErrInvalidPath     = errors.New("storage file should end with '" + Extension + "'")
	ErrWrite           = errors.New("error writing to file")
	ErrConversion      = errors.New("error converting address book into storage format")
	ErrParse           = errors.New("error parsing file data format")
	ErrRead            = errors.New("error reading from file")
	ErrMissingElements = errors.New("file data missing some elements")
	ErrInvalidValues   = errors.New("file contains illegal data values; data type constraints not met")

	// ErrInternal marks a broken invariant, such as the storage file
	// disappearing between the existence check and the read. Callers
	// should not try to recover from it.
	ErrInternal = errors.New("internal storage error")
)

// Error describes a failed storage operation.
type Error struct {
	Kind error  // One of the Err* kinds above.
	Path string // Storage file path.
	Err  error  // Underlying cause, may be nil.
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the cause, so errors.Is matches the kind
// and errors.As reaches e.g. a *types.ValidationError.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
