package apperrors

import (
	"errors"
	"fmt"
)

// Not-found errors, one per entity. City and User lookups by id promote an
// absent row to these; student, teacher and speciality single lookups return
// nil without error and only their update/delete paths raise them.
var (
	ErrCityNotFound       = errors.New("city not found")
	ErrSpecialityNotFound = errors.New("speciality not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrTeacherNotFound    = errors.New("teacher not found")
)

// Already-exists errors. Only cities (by name) and users (by username)
// enforce a natural-key uniqueness rule on insert.
var (
	ErrCityAlreadyExists     = errors.New("city with this name already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// Request-level errors surfaced by the HTTP layer.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidationFailed   = errors.New("validation failed")
)

// StoreError wraps any failure to execute against the backing store:
// connectivity, constraint violations, malformed statements. It always
// carries the entity, the attempted operation and the key involved, and
// crosses layer boundaries unchanged.
type StoreError struct {
	Entity string
	Op     string
	Key    any
	Err    error
}

func (e *StoreError) Error() string {
	if e.Key != nil {
		return fmt.Sprintf("%s store: %s (key=%v): %v", e.Entity, e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s store: %s: %v", e.Entity, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError builds a StoreError for the given entity and operation.
func NewStoreError(entity, op string, key any, err error) *StoreError {
	return &StoreError{Entity: entity, Op: op, Key: key, Err: err}
}

// IsStoreError reports whether err is, or wraps, a StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
