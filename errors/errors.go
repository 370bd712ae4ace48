package errors

import (
	stderrors "errors"
	"fmt"
)

// LibError is the unified library error type.
type LibError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Fatal indicates the caller must abort use of the library.
	Fatal bool `json:"fatal"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *LibError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *LibError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *LibError) WithCause(cause error) *LibError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *LibError) WithDetail(key string, value any) *LibError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new LibError with automatic fatal detection.
func New(code ErrorCode, message string) *LibError {
	return &LibError{
		Code:    code,
		Message: message,
		Fatal:   IsFatalCode(code),
	}
}

// --- Common Error Constructors ---

// InvalidArgument creates a new LibError for caller misuse. It is a
// programming error, not a recoverable runtime condition.
func InvalidArgument(argument, reason string) *LibError {
	return &LibError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid argument %s: %s", argument, reason),
		Fatal:   true,
		Details: map[string]any{"argument": argument},
	}
}

// NilValue creates a new LibError for a nil value passed where a typed
// value is required.
func NilValue(argument string) *LibError {
	return InvalidArgument(argument, "value must not be nil")
}

// UnwiredSetting creates a new LibError for a setting name that is part
// of the enumeration but not wired to a storage variant.
func UnwiredSetting(name string) *LibError {
	return &LibError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("configuration setting %s is not wired", name),
		Fatal:   true,
		Details: map[string]any{"setting": name},
	}
}

// ResourceExhausted creates a new LibError for a failed resource
// acquisition during startup.
func ResourceExhausted(resource string, cause error) *LibError {
	return &LibError{
		Code: ErrCodeInsufficientResources, Message: fmt.Sprintf("could not acquire %s", resource),
		Fatal:   true,
		Details: map[string]any{"resource": resource}, Cause: cause,
	}
}

// SubsystemFailure creates a new LibError for a collaborator entry point
// that failed. The cause is propagated verbatim.
func SubsystemFailure(subsystem, operation string, cause error) *LibError {
	return &LibError{
		Code: ErrCodeSubsystemFailure, Message: fmt.Sprintf("%s %s failed", subsystem, operation),
		Fatal:   true,
		Details: map[string]any{"subsystem": subsystem, "operation": operation}, Cause: cause,
	}
}

// Internal creates a new LibError for an unrecoverable internal fault.
func Internal(cause error) *LibError {
	return &LibError{
		Code: ErrCodeInternalFatal, Message: "unrecoverable internal error",
		Fatal: true, Cause: cause,
	}
}

// IsLibError checks if an error is a LibError.
func IsLibError(err error) bool {
	var libErr *LibError
	return stderrors.As(err, &libErr)
}

// AsLibError converts an error to a LibError if possible.
func AsLibError(err error) (*LibError, bool) {
	var libErr *LibError
	if stderrors.As(err, &libErr) {
		return libErr, true
	}
	return nil, false
}

// HasCode reports whether err is a LibError carrying the given code.
func HasCode(err error, code ErrorCode) bool {
	if libErr, ok := AsLibError(err); ok {
		return libErr.Code == code
	}
	return false
}
