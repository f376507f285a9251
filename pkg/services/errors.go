// Package services provides standardized error types for service layer operations.
package services

import (
	"errors"
	"fmt"

	"github.com/launchpadhq/launchpad/pkg/aicopy"
	"github.com/launchpadhq/launchpad/pkg/graph"
	"github.com/launchpadhq/launchpad/pkg/leadform"
	"github.com/launchpadhq/launchpad/pkg/persistence"
)

// Business logic errors. These indicate client errors (4xx responses).
var (
	// Validation errors (400 Bad Request).
	ErrInvalidRequest    = errors.New("invalid request")
	ErrInvalidSortField  = errors.New("invalid sort field")
	ErrInvalidSortOrder  = errors.New("invalid sort order")
	ErrGraphNameRequired = errors.New("graph name is required")
	ErrGraphNil          = errors.New("graph cannot be nil")

	// Not-found errors (404), re-exported from the layers that own them.
	ErrGraphNotFound    = persistence.ErrGraphNotFound
	ErrFormNotFound     = persistence.ErrFormNotFound
	ErrNodeNotFound     = graph.ErrNodeNotFound
	ErrTemplateNotFound = errors.New("template not found")
)

// ServiceError wraps service-level errors with additional context.
type ServiceError struct {
	Op      string // Operation name
	Code    string // Error code for API responses
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

// NewValidationError creates a new validation error with context.
func NewValidationError(op, code, message string, err error) *ServiceError {
	return &ServiceError{
		Op:      op,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsValidationError checks if an error is a validation error that should
// return HTTP 400.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidSortField) ||
		errors.Is(err, ErrInvalidSortOrder) ||
		errors.Is(err, ErrGraphNameRequired) ||
		errors.Is(err, ErrGraphNil) ||
		graph.IsInvalidOperation(err) ||
		leadform.IsInvalidOperation(err)
}

// IsNotFoundError checks if an error should return HTTP 404.
func IsNotFoundError(err error) bool {
	return persistence.IsGraphNotFound(err) ||
		persistence.IsFormNotFound(err) ||
		graph.IsNotFound(err) ||
		errors.Is(err, leadform.ErrQuestionNotFound) ||
		errors.Is(err, ErrTemplateNotFound)
}

// IsReferenceError checks if an error indicates a bad reference that
// should return HTTP 422. A missing edit subject stays a not-found;
// a conditional rule pointing at a missing target is a reference error
// like every other dangling reference.
func IsReferenceError(err error) bool {
	return graph.IsInvalidReference(err) ||
		errors.Is(err, graph.ErrDuplicateID) ||
		leadform.IsInvalidReference(err)
}

// IsRemoteParseError checks if an error indicates the AI backend
// answered in a shape nothing could recover.
func IsRemoteParseError(err error) bool {
	return aicopy.IsRemoteParse(err)
}

// IsStaleResponseError checks if an error indicates an AI response that
// arrived after the graph had already moved on.
func IsStaleResponseError(err error) bool {
	return aicopy.IsStaleResponse(err)
}
