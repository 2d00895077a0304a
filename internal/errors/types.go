package errors

// Kind identifies the category of a failed operation
type Kind int

const (
	// KindNone marks a successful result
	KindNone Kind = iota

	// KindUnauthorized is returned when no caller identity is present
	KindUnauthorized

	// KindValidation is returned for malformed input such as a bad uuid
	KindValidation

	// KindNotFound is returned when the requested entity does not exist
	KindNotFound

	// KindConflict covers self-interaction and duplicate activity
	KindConflict

	// KindInternal covers persistence failures; details are logged, never returned
	KindInternal
)

// ValidationError represents a validation error with a field and message
type ValidationError struct {
	Field   string
	Message string
}

// StorageError represents an error during storage operations
type StorageError struct {
	Message string
	Cause   error
}
