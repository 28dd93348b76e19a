package trash

import (
	"github.com/pkg/errors"
)

// statusError binds a stable Status code to the underlying cause that
// produced it. Only the code crosses the SoftDelete boundary; the
// cause is retained for callers who want it via errors.As/Unwrap and
// for the idiomatic Delete wrapper.
type statusError struct {
	code  Status
	cause error
}

func (e *statusError) Error() string {
	if e.cause == nil {
		return StatusMessage(e.code)
	}
	// wrapStatus has already prefixed cause with StatusMessage(e.code).
	return e.cause.Error()
}

func (e *statusError) Unwrap() error {
	return e.cause
}

// Code returns the Status this error corresponds to. It lets callers
// of the idiomatic Delete wrapper recover the stable integer contract
// with errors.As.
func (e *statusError) Code() Status {
	return e.code
}

// wrapStatus attaches context to cause (when non-nil) via pkg/errors
// so intermediate call sites keep file/line information for
// debugging, without that context ever crossing the Status boundary.
func wrapStatus(code Status, cause error) error {
	if cause == nil {
		return &statusError{code: code}
	}
	return &statusError{code: code, cause: errors.WithMessage(cause, StatusMessage(code))}
}

// statusOf extracts the Status carried by an error produced by this
// package. A nil error maps to StatusOK; errors that do not originate
// here are treated as a generic trashinfo failure, so a non-nil error
// always yields a meaningful negative code.
func statusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code
	}
	return StatusTrashInfoFailed
}
