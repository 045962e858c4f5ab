// Package services provides standardized error types for service layer operations.
package services

import (
	"errors"
	"fmt"
)

// Business Logic Errors - These indicate caller errors, not system faults.
var (
	// Validation Errors.
	ErrInvalidRequest        = errors.New("invalid request")
	ErrAgreementNil          = errors.New("agreement cannot be nil")
	ErrTitleRequired         = errors.New("agreement title is required")
	ErrJustificationRequired = errors.New("decision justification is required")
	ErrInvalidDecision       = errors.New("invalid decision")
	ErrInvalidApprovalLevels = errors.New("max approval levels must be positive")
	ErrEmptyActorID          = errors.New("actor ID cannot be empty")

	// Authorization Errors.
	ErrUnauthorized = errors.New("actor is not permitted to perform this action")

	// Business Logic Conflicts.
	ErrAgreementFinalized = errors.New("cannot decide on a finalized agreement")
	ErrWizardIncomplete   = errors.New("wizard has incomplete required steps")
	ErrUploadInProgress   = errors.New("document upload still in progress")
)

// ServiceError wraps service-level errors with additional context.
type ServiceError struct {
	Op      string // Operation name
	Code    string // Stable error code for callers
	Message string // Human-readable message
	Err     error  // Underlying error
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// IsValidationError checks if an error stems from malformed caller input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrAgreementNil) ||
		errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrJustificationRequired) ||
		errors.Is(err, ErrInvalidDecision) ||
		errors.Is(err, ErrInvalidApprovalLevels) ||
		errors.Is(err, ErrEmptyActorID)
}

// IsAuthorizationError checks if an error is a permission denial.
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsConflictError checks if an error is a business logic conflict.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrAgreementFinalized) ||
		errors.Is(err, ErrWizardIncomplete) ||
		errors.Is(err, ErrUploadInProgress)
}

// NewValidationError creates a new validation error with context.
func NewValidationError(op, code, message string, err error) *ServiceError {
	return &ServiceError{
		Op:      op,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewAuthorizationError creates a permission denial with context.
func NewAuthorizationError(op, message string) *ServiceError {
	return &ServiceError{
		Op:      op,
		Code:    "UNAUTHORIZED",
		Message: message,
		Err:     ErrUnauthorized,
	}
}
