package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Programming errors — caller misuse, never retried.
const (
	// ErrCodeInvalidArgument indicates a nil value, an unwired setting
	// name, or another argument that signals a caller bug rather than a
	// runtime condition.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Resource-acquisition failures during startup.
const (
	// ErrCodeInsufficientResources indicates thread-local slots, the
	// mutex array, or process-wide bookkeeping could not be acquired.
	ErrCodeInsufficientResources ErrorCode = "INSUFFICIENT_RESOURCES"
)

// Collaborator failures.
const (
	// ErrCodeSubsystemFailure indicates a collaborator init or teardown
	// entry point failed; the underlying error is carried as the cause.
	ErrCodeSubsystemFailure ErrorCode = "SUBSYSTEM_FAILURE"
)

// Internal errors
const (
	// ErrCodeInternalFatal indicates an unrecoverable internal fault.
	ErrCodeInternalFatal ErrorCode = "INTERNAL_FATAL_ERROR"
)

var fatalCodes = map[ErrorCode]bool{
	ErrCodeInvalidArgument:       true,
	ErrCodeInsufficientResources: true,
	ErrCodeSubsystemFailure:      true,
	ErrCodeInternalFatal:         true,
}

// IsFatalCode returns true if the error code indicates an unrecoverable
// error. Every code this core emits is fatal — callers are expected to
// stop using the library rather than retry.
func IsFatalCode(code ErrorCode) bool {
	return fatalCodes[code]
}
