package cli

import (
	"errors"

	"github.com/mesh-intelligence/addressbook/pkg/storage"
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }

func sysError(err error) error { return &exitError{code: exitSysError, err: err} }

// writeHint is appended to write failures.
const writeHint = "try using a different file to which you have edit access"

// storageError classifies a storage failure. Problems with the file's
// content are user errors; I/O and internal failures are system errors.
func storageError(err error) error {
	switch {
	case errors.Is(err, storage.ErrWrite):
		return sysError(&hintError{err: err, hint: writeHint})
	case errors.Is(err, storage.ErrParse),
		errors.Is(err, storage.ErrMissingElements),
		errors.Is(err, storage.ErrInvalidValues),
		errors.Is(err, storage.ErrInvalidPath):
		return userError(err)
	default:
		return sysError(err)
	}
}

type hintError struct {
	err  error
	hint string
}

func (e *hintError) Error() string { return e.err.Error() + "; " + e.hint }

func (e *hintError) Unwrap() error { return e.err }
