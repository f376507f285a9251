// Package graph provides standardized error types for graph mutations.
package graph

import (
	"errors"
	"fmt"
)

// Standard mutation error types. All mutation failures leave graph state
// unchanged; callers can surface the message and keep editing.
var (
	// ErrNodeNotFound indicates a mutation referenced a missing node id.
	ErrNodeNotFound = errors.New("node not found")

	// ErrEdgeNotFound indicates a mutation referenced a missing edge id.
	ErrEdgeNotFound = errors.New("edge not found")

	// ErrInvalidReference indicates an edge endpoint does not exist in the graph.
	ErrInvalidReference = errors.New("invalid node reference")

	// ErrInvalidOperation indicates a structurally disallowed mutation,
	// such as creating a node of an unknown kind.
	ErrInvalidOperation = errors.New("invalid graph operation")

	// ErrDuplicateID indicates a merge would introduce a node or edge id
	// already present in the graph.
	ErrDuplicateID = errors.New("duplicate id")
)

// MutationError wraps graph mutation errors with operation context.
type MutationError struct {
	Op      string // Operation being performed (e.g., "AddEdge", "UpdateNode")
	ID      string // Node or edge ID if applicable
	Message string // Additional context message
	Err     error  // Underlying error
}

func (e *MutationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s failed for %s: %s (%v)", e.Op, e.ID, e.Message, e.Err)
	}

	return fmt.Sprintf("%s failed for %s: %v", e.Op, e.ID, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

func (e *MutationError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewMutationError creates a new mutation error with context.
func NewMutationError(op, id string, err error) *MutationError {
	return &MutationError{
		Op:  op,
		ID:  id,
		Err: err,
	}
}

// IsNotFound checks if an error indicates a missing node or edge.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNodeNotFound) || errors.Is(err, ErrEdgeNotFound)
}

// IsInvalidReference checks if an error indicates a dangling endpoint reference.
func IsInvalidReference(err error) bool {
	return errors.Is(err, ErrInvalidReference)
}

// IsInvalidOperation checks if an error indicates a disallowed mutation.
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}
