// Package leadform maintains the question list of one lead form and
// enforces the structural rules the form renderer relies on: option
// lists only on choice types, conditional visibility only anchored to
// discrete-answer questions, no self-reference and no conditional
// cycles, and cascade-clearing of conditionals when their target
// question is removed.
package leadform

import (
	"github.com/google/uuid"
	"github.com/launchpadhq/launchpad/pkg/models"
)

// Builder owns a lead form for the duration of an editing session.
// Not safe for concurrent use.
type Builder struct {
	form *models.LeadForm
}

// NewBuilder wraps an existing form.
func NewBuilder(form *models.LeadForm) *Builder {
	if form.Questions == nil {
		form.Questions = []*models.Question{}
	}

	return &Builder{form: form}
}

// Form returns the underlying lead form.
func (b *Builder) Form() *models.LeadForm {
	return b.form
}

// AddQuestion appends a question with a fresh id.
func (b *Builder) AddQuestion(questionType models.QuestionType, label string) (*models.Question, error) {
	if !questionType.Valid() {
		return nil, &QuestionError{Op: "AddQuestion", QuestionID: "", Err: ErrInvalidQuestionType}
	}

	question := &models.Question{
		ID:    uuid.New().String(),
		Type:  questionType,
		Label: label,
	}

	if questionType.SupportsOptions() {
		question.Options = []string{}
	}

	b.form.Questions = append(b.form.Questions, question)

	return question, nil
}

// QuestionPatch carries the mutable question fields for UpdateQuestion.
// Type and ID stay fixed after creation.
type QuestionPatch struct {
	Label       *string
	Required    *bool
	Placeholder *string
	HelpText    *string
}

// UpdateQuestion merges the patch into the question's mutable fields.
func (b *Builder) UpdateQuestion(id string, patch QuestionPatch) (*models.Question, error) {
	question := b.form.QuestionByID(id)
	if question == nil {
		return nil, &QuestionError{Op: "UpdateQuestion", QuestionID: id, Err: ErrQuestionNotFound}
	}

	if patch.Label != nil {
		question.Label = *patch.Label
	}

	if patch.Required != nil {
		question.Required = *patch.Required
	}

	if patch.Placeholder != nil {
		question.Placeholder = *patch.Placeholder
	}

	if patch.HelpText != nil {
		question.HelpText = *patch.HelpText
	}

	return question, nil
}

// SetOptions replaces the option list of a choice question. Non-choice
// types reject the edit outright; the UI hides the option editor for
// them, but programmatic callers get a hard error instead of silent
// acceptance.
func (b *Builder) SetOptions(id string, options []string) (*models.Question, error) {
	question := b.form.QuestionByID(id)
	if question == nil {
		return nil, &QuestionError{Op: "SetOptions", QuestionID: id, Err: ErrQuestionNotFound}
	}

	if !question.Type.SupportsOptions() {
		return nil, &QuestionError{Op: "SetOptions", QuestionID: id, Err: ErrOptionsNotSupported}
	}

	question.Options = make([]string, len(options))
	copy(question.Options, options)

	return question, nil
}

// AddOption appends one option to a choice question.
func (b *Builder) AddOption(id, option string) (*models.Question, error) {
	question := b.form.QuestionByID(id)
	if question == nil {
		return nil, &QuestionError{Op: "AddOption", QuestionID: id, Err: ErrQuestionNotFound}
	}

	if !question.Type.SupportsOptions() {
		return nil, &QuestionError{Op: "AddOption", QuestionID: id, Err: ErrOptionsNotSupported}
	}

	question.Options = append(question.Options, option)

	return question, nil
}

// SetConditional makes a question visible only when the target question's
// answer equals value. The target must exist, be a discrete-answer type,
// differ from the question itself, and the resulting chain must stay
// acyclic.
func (b *Builder) SetConditional(id, targetID string, value any) (*models.Question, error) {
	question := b.form.QuestionByID(id)
	if question == nil {
		return nil, &QuestionError{Op: "SetConditional", QuestionID: id, Err: ErrQuestionNotFound}
	}

	if targetID == id {
		return nil, &QuestionError{Op: "SetConditional", QuestionID: id, Err: ErrConditionalSelfReference}
	}

	target := b.form.QuestionByID(targetID)
	if target == nil {
		return nil, &QuestionError{Op: "SetConditional", QuestionID: targetID, Err: ErrConditionalTargetNotFound}
	}

	if !target.Type.SupportsConditional() {
		return nil, &QuestionError{Op: "SetConditional", QuestionID: targetID, Err: ErrConditionalTargetType}
	}

	if b.wouldCycle(id, targetID) {
		return nil, &QuestionError{Op: "SetConditional", QuestionID: id, Err: ErrConditionalCycle}
	}

	question.ConditionalOn = &models.ConditionalRule{QuestionID: targetID, Value: value}

	return question, nil
}

// ClearConditional removes a question's visibility rule.
func (b *Builder) ClearConditional(id string) (*models.Question, error) {
	question := b.form.QuestionByID(id)
	if question == nil {
		return nil, &QuestionError{Op: "ClearConditional", QuestionID: id, Err: ErrQuestionNotFound}
	}

	question.ConditionalOn = nil

	return question, nil
}

// RemoveQuestion deletes a question and cascade-clears every other
// question's conditional that pointed at it, so no rule is left
// referencing a missing id. Removing an absent question is a no-op.
func (b *Builder) RemoveQuestion(id string) {
	index := -1

	for i, question := range b.form.Questions {
		if question.ID == id {
			index = i

			break
		}
	}

	if index < 0 {
		return
	}

	b.form.Questions = append(b.form.Questions[:index], b.form.Questions[index+1:]...)

	for _, question := range b.form.Questions {
		if question.ConditionalOn != nil && question.ConditionalOn.QuestionID == id {
			question.ConditionalOn = nil
		}
	}
}

// wouldCycle reports whether pointing question id at targetID closes a
// loop in the conditional chain (A depends on B depends on A).
func (b *Builder) wouldCycle(id, targetID string) bool {
	seen := map[string]bool{id: true}
	current := targetID

	for current != "" {
		if seen[current] {
			return true
		}

		seen[current] = true

		next := b.form.QuestionByID(current)
		if next == nil || next.ConditionalOn == nil {
			return false
		}

		current = next.ConditionalOn.QuestionID
	}

	return false
}
