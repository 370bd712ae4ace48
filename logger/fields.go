package logger

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldSubsystem = "subsystem"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldRefCount  = "ref_count"
	FieldGoroutine = "goroutine"
	FieldSetting   = "setting"
	FieldLockSlot  = "lock_slot"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("done", logger.Fields("op", "teardown", "ref_count", 0))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
}
