// Package persistence provides standardized error types for persistence operations.
package persistence

import (
	"errors"
	"fmt"
)

// Standard persistence error types that all backends should use.
var (
	// ErrGraphNotFound indicates a graph was not found by the given identifier.
	ErrGraphNotFound = errors.New("graph not found")

	// ErrFormNotFound indicates a lead form was not found by the given identifier.
	ErrFormNotFound = errors.New("lead form not found")

	// ErrInvalidSortField indicates a listing requested an unsupported sort column.
	ErrInvalidSortField = errors.New("invalid sort field")
)

// GraphError wraps graph storage errors with additional context.
type GraphError struct {
	Op      string // Operation being performed (e.g., "GetByID", "Save", "Delete")
	GraphID string // Graph ID if applicable
	Err     error  // Underlying error
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("%s operation failed for graph %s: %v", e.Op, e.GraphID, e.Err)
}

func (e *GraphError) Unwrap() error {
	return e.Err
}

func (e *GraphError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewGraphError creates a new graph storage error with context.
func NewGraphError(op, graphID string, err error) *GraphError {
	return &GraphError{Op: op, GraphID: graphID, Err: err}
}

// FormError wraps lead-form storage errors with additional context.
type FormError struct {
	Op     string
	FormID string
	Err    error
}

func (e *FormError) Error() string {
	return fmt.Sprintf("%s operation failed for form %s: %v", e.Op, e.FormID, e.Err)
}

func (e *FormError) Unwrap() error {
	return e.Err
}

func (e *FormError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// IsGraphNotFound checks if an error indicates a graph was not found.
func IsGraphNotFound(err error) bool {
	return errors.Is(err, ErrGraphNotFound)
}

// IsFormNotFound checks if an error indicates a lead form was not found.
func IsFormNotFound(err error) bool {
	return errors.Is(err, ErrFormNotFound)
}

// IsInvalidSortField checks if an error indicates an unsupported sort column.
func IsInvalidSortField(err error) bool {
	return errors.Is(err, ErrInvalidSortField)
}
