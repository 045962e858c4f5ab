// Package persistence provides standardized error types for persistence operations.
package persistence

import (
	"errors"
	"fmt"
)

// Standard persistence error types that all implementations should use.
var (
	// ErrAgreementNotFound indicates no agreement exists with the given identifier.
	ErrAgreementNotFound = errors.New("agreement not found")

	// ErrCaseNotFound indicates no case exists with the given identifier.
	ErrCaseNotFound = errors.New("case not found")

	// ErrUserNotFound indicates no user exists with the given identifier or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateID indicates a record with the same identifier already exists.
	ErrDuplicateID = errors.New("duplicate record id")

	// ErrCorruptSnapshot indicates a persisted collection snapshot failed
	// schema validation and was refused at load time.
	ErrCorruptSnapshot = errors.New("corrupt collection snapshot")
)

// RepositoryError wraps repository errors with operation context.
type RepositoryError struct {
	Op         string // Operation being performed (e.g. "Create", "Replace")
	Collection string // Logical collection name
	ID         string // Record ID if applicable
	Err        error  // Underlying error
}

func (e *RepositoryError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s operation failed for %s record %s: %v", e.Op, e.Collection, e.ID, e.Err)
	}

	return fmt.Sprintf("%s operation failed for collection %s: %v", e.Op, e.Collection, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// Is implements error comparison for repository errors.
func (e *RepositoryError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewRepositoryError creates a new repository error with context.
func NewRepositoryError(op, collection, id string, err error) *RepositoryError {
	return &RepositoryError{
		Op:         op,
		Collection: collection,
		ID:         id,
		Err:        err,
	}
}

// IsNotFound checks if an error indicates a missing record of any kind.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAgreementNotFound) ||
		errors.Is(err, ErrCaseNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsCorruptSnapshot checks if an error indicates a refused snapshot.
func IsCorruptSnapshot(err error) bool {
	return errors.Is(err, ErrCorruptSnapshot)
}
