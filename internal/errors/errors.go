package errors

import "fmt"

var kindNames = map[Kind]string{
	KindNone:         "NONE",
	KindUnauthorized: "UNAUTHORIZED",
	KindValidation:   "VALIDATION_ERROR",
	KindNotFound:     "NOT_FOUND",
	KindConflict:     "CONFLICT",
	KindInternal:     "INTERNAL_ERROR",
}

// String returns the wire code of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

// Error method implementation for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Error method implementation for StorageError
func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the underlying storage failure
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewStorageError creates a new StorageError
func NewStorageError(message string, cause error) *StorageError {
	return &StorageError{
		Message: message,
		Cause:   cause,
	}
}
