package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind groups error codes by the policy a caller applies at the operation
// boundary.
type Kind int

const (
	// KindUnknown represents an unclassified failure.
	KindUnknown Kind = iota
	// KindInvalidArgument marks malformed input rejected before any mutation.
	KindInvalidArgument
	// KindPreconditionFailed marks an operation attempted before its gating
	// stage completed; state is left untouched.
	KindPreconditionFailed
	// KindStorageUnavailable marks a persistence read/write failure. The
	// in-memory state remains authoritative for the rest of the session.
	KindStorageUnavailable
)

// String returns a stable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindPreconditionFailed:
		return "precondition_failed"
	case KindStorageUnavailable:
		return "storage_unavailable"
	default:
		return "unknown"
	}
}

// Error is a classified intake error.
type Error struct {
	Kind    Kind
	Code    Code
	Message string
	cause   error
}

// New creates a classified error.
func New(kind Kind, code Code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, code Code, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a classified error that wraps an underlying cause.
func Wrap(kind Kind, code Code, message string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// KindOf extracts the kind from an error chain.
func KindOf(err error) Kind {
	var classified *Error
	if stderrors.As(err, &classified) {
		return classified.Kind
	}
	return KindUnknown
}

// CodeOf extracts the code from an error chain.
func CodeOf(err error) Code {
	var classified *Error
	if stderrors.As(err, &classified) {
		return classified.Code
	}
	return CodeUnknown
}

// IsInvalidArgument reports whether err is classified as invalid argument.
func IsInvalidArgument(err error) bool {
	return KindOf(err) == KindInvalidArgument
}

// IsPreconditionFailed reports whether err is classified as a failed
// precondition.
func IsPreconditionFailed(err error) bool {
	return KindOf(err) == KindPreconditionFailed
}

// IsStorageUnavailable reports whether err is classified as a storage
// failure.
func IsStorageUnavailable(err error) bool {
	return KindOf(err) == KindStorageUnavailable
}
