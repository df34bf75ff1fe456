// internal/domain/poll/errors.go
package poll

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed poll cycle so the error-notification text
// can be built per kind instead of stringifying arbitrary faults.
type ErrorKind string

const (
	KindTransport ErrorKind = "TRANSPORT" // network failure reaching the review API
	KindProtocol  ErrorKind = "PROTOCOL"  // non-200 response from the review API
	KindShape     ErrorKind = "SHAPE"     // response or record does not match the expected structure
	KindUnknown   ErrorKind = "UNKNOWN"   // anything the other kinds do not cover
)

// Error is the single error type that crosses the poll-cycle boundary.
// Producers wrap their underlying failure with the kind they detected.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with the given kind.
func NewError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Errorf is a convenience over NewError for formatted one-off failures.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Classify extracts the kind from err, walking the wrap chain.
// Errors that never went through this package report KindUnknown.
func Classify(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}
