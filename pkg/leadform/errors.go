// Package leadform provides standardized error types for lead-form editing.
package leadform

import (
	"errors"
	"fmt"
)

var (
	// ErrQuestionNotFound indicates an edit referenced a missing question id.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrOptionsNotSupported indicates an option-list edit on a question
	// type that carries no options.
	ErrOptionsNotSupported = errors.New("question type does not support options")

	// ErrConditionalSelfReference indicates a question was pointed at itself.
	ErrConditionalSelfReference = errors.New("question cannot depend on itself")

	// ErrConditionalTargetNotFound indicates a conditional rule pointed
	// at a question id that does not exist in the form. Distinct from
	// ErrQuestionNotFound so a bad reference inside an otherwise valid
	// edit is not reported as a missing subject.
	ErrConditionalTargetNotFound = errors.New("conditional target question not found")

	// ErrConditionalTargetType indicates a conditional target whose type
	// cannot anchor conditional logic.
	ErrConditionalTargetType = errors.New("conditional target must be a single-choice, dropdown or boolean question")

	// ErrConditionalCycle indicates the conditional chain loops back on itself.
	ErrConditionalCycle = errors.New("conditional logic forms a cycle")

	// ErrInvalidQuestionType indicates an unknown question type.
	ErrInvalidQuestionType = errors.New("invalid question type")
)

// QuestionError wraps question edit errors with context.
type QuestionError struct {
	Op         string // Operation being performed
	QuestionID string // Question ID if applicable
	Err        error  // Underlying error
}

func (e *QuestionError) Error() string {
	return fmt.Sprintf("%s failed for question %s: %v", e.Op, e.QuestionID, e.Err)
}

func (e *QuestionError) Unwrap() error {
	return e.Err
}

func (e *QuestionError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// IsInvalidReference checks if an error indicates a bad conditional target.
func IsInvalidReference(err error) bool {
	return errors.Is(err, ErrConditionalSelfReference) ||
		errors.Is(err, ErrConditionalTargetType) ||
		errors.Is(err, ErrConditionalCycle) ||
		errors.Is(err, ErrConditionalTargetNotFound)
}

// IsInvalidOperation checks if an error indicates a structurally
// disallowed edit.
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrOptionsNotSupported) ||
		errors.Is(err, ErrInvalidQuestionType)
}
