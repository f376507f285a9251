// Package aicopy provides standardized error types for AI response handling.
package aicopy

import (
	"errors"
	"fmt"
)

var (
	// ErrRemoteParse indicates the AI response could not be coerced into
	// the expected shape after every fallback strategy. Callers degrade
	// to a "try a different prompt" message; editor state is untouched.
	ErrRemoteParse = errors.New("could not parse AI response")

	// ErrStaleResponse indicates a late-arriving response was discarded
	// because the graph changed after the request was issued.
	ErrStaleResponse = errors.New("stale response discarded")

	// ErrRequestFailed indicates the generation endpoint returned a
	// non-success status.
	ErrRequestFailed = errors.New("generation request failed")
)

// ParseError wraps parse failures with the strategy that gave up last.
type ParseError struct {
	Strategy string // Last strategy attempted
	Err      error  // Underlying error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse failed after %s: %v", e.Strategy, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// IsRemoteParse checks if an error indicates an unparseable AI response.
func IsRemoteParse(err error) bool {
	return errors.Is(err, ErrRemoteParse)
}

// IsStaleResponse checks if an error indicates a discarded late response.
func IsStaleResponse(err error) bool {
	return errors.Is(err, ErrStaleResponse)
}
