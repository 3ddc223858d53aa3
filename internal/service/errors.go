// campus-crud/internal/service/errors.go
package service

import "fmt"

// The services report failures through these four error kinds. Handlers
// translate them to HTTP statuses (400, 404, 409, 500) and never look at
// anything more specific.

// ValidationError signals malformed or out-of-range input. The caller can
// recover by resubmitting corrected data.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError signals that a referenced entity id does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %d", e.Entity, e.ID)
}

// ConflictError signals a uniqueness violation on create or update.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InternalError wraps an unexpected persistence failure. The wrapped cause
// is logged, never sent to the caller.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	return "internal server error"
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}
