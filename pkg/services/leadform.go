package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/launchpadhq/launchpad/pkg/aicopy"
	"github.com/launchpadhq/launchpad/pkg/leadform"
	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/launchpadhq/launchpad/pkg/persistence"
)

// LeadForm is the business layer over lead-form storage and the
// question builder. Mutations follow the same load-edit-save shape as
// the graph service.
type LeadForm struct {
	persistence persistence.Persistence
	aiClient    *aicopy.Client
}

// NewLeadForm creates a new lead-form service.
func NewLeadForm(persistence persistence.Persistence, aiClient *aicopy.Client) *LeadForm {
	return &LeadForm{
		persistence: persistence,
		aiClient:    aiClient,
	}
}

// ListForms returns forms, optionally filtered by workspace.
func (s *LeadForm) ListForms(ctx context.Context, workspaceID string) ([]*models.LeadForm, error) {
	forms, err := s.persistence.LeadFormRepository().ListForms(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}

	if forms == nil {
		forms = []*models.LeadForm{}
	}

	return forms, nil
}

// FetchByID retrieves a lead form by its ID.
func (s *LeadForm) FetchByID(ctx context.Context, id string) (*models.LeadForm, error) {
	form, err := s.persistence.LeadFormRepository().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if form == nil {
		return nil, ErrFormNotFound
	}

	return form, nil
}

// Create adds a new lead form to the repository.
func (s *LeadForm) Create(ctx context.Context, form *models.LeadForm) (*models.LeadForm, error) {
	if form == nil {
		return nil, NewValidationError("Create", "INVALID_FORM", "form must not be nil", ErrInvalidRequest)
	}

	if strings.TrimSpace(form.Name) == "" {
		return nil, NewValidationError("Create", "NAME_REQUIRED", "form name is required", ErrInvalidRequest)
	}

	now := time.Now().UTC()
	form.ID = uuid.New().String()
	form.CreatedAt = now
	form.UpdatedAt = now

	if form.Questions == nil {
		form.Questions = []*models.Question{}
	}

	err := s.persistence.LeadFormRepository().Save(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("failed to create form: %w", err)
	}

	return form, nil
}

// Delete removes a lead form by its ID.
func (s *LeadForm) Delete(ctx context.Context, formID string) error {
	_, err := s.FetchByID(ctx, formID)
	if err != nil {
		return err
	}

	err = s.persistence.LeadFormRepository().Delete(ctx, formID)
	if err != nil {
		return fmt.Errorf("failed to delete form: %w", err)
	}

	return nil
}

// mutate loads the form, runs fn against a builder and saves the
// result. When fn fails nothing is written back.
func (s *LeadForm) mutate(ctx context.Context, formID string, fn func(*leadform.Builder) error) (*models.LeadForm, error) {
	form, err := s.FetchByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	builder := leadform.NewBuilder(form)

	err = fn(builder)
	if err != nil {
		return nil, err
	}

	form.UpdatedAt = time.Now().UTC()

	err = s.persistence.LeadFormRepository().Save(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("failed to save form: %w", err)
	}

	return form, nil
}

// AddQuestion appends a question of the given type to the form.
func (s *LeadForm) AddQuestion(ctx context.Context, formID string, questionType models.QuestionType, label string) (*models.Question, error) {
	var question *models.Question

	_, err := s.mutate(ctx, formID, func(builder *leadform.Builder) error {
		var addErr error
		question, addErr = builder.AddQuestion(questionType, label)

		return addErr
	})
	if err != nil {
		return nil, err
	}

	return question, nil
}

// UpdateQuestion patches a question's mutable fields.
func (s *LeadForm) UpdateQuestion(ctx context.Context, formID, questionID string, patch leadform.QuestionPatch) (*models.Question, error) {
	var question *models.Question

	_, err := s.mutate(ctx, formID, func(builder *leadform.Builder) error {
		var updateErr error
		question, updateErr = builder.UpdateQuestion(questionID, patch)

		return updateErr
	})
	if err != nil {
		return nil, err
	}

	return question, nil
}

// SetOptions replaces the option list of a choice question.
func (s *LeadForm) SetOptions(ctx context.Context, formID, questionID string, options []string) (*models.Question, error) {
	var question *models.Question

	_, err := s.mutate(ctx, formID, func(builder *leadform.Builder) error {
		var setErr error
		question, setErr = builder.SetOptions(questionID, options)

		return setErr
	})
	if err != nil {
		return nil, err
	}

	return question, nil
}

// SetConditional makes a question depend on another question's answer.
func (s *LeadForm) SetConditional(ctx context.Context, formID, questionID, targetID string, value any) (*models.Question, error) {
	var question *models.Question

	_, err := s.mutate(ctx, formID, func(builder *leadform.Builder) error {
		var setErr error
		question, setErr = builder.SetConditional(questionID, targetID, value)

		return setErr
	})
	if err != nil {
		return nil, err
	}

	return question, nil
}

// ClearConditional removes a question's visibility rule.
func (s *LeadForm) ClearConditional(ctx context.Context, formID, questionID string) (*models.Question, error) {
	var question *models.Question

	_, err := s.mutate(ctx, formID, func(builder *leadform.Builder) error {
		var clearErr error
		question, clearErr = builder.ClearConditional(questionID)

		return clearErr
	})
	if err != nil {
		return nil, err
	}

	return question, nil
}

// RemoveQuestion deletes a question and clears any rules that depended
// on it. Idempotent.
func (s *LeadForm) RemoveQuestion(ctx context.Context, formID, questionID string) error {
	_, err := s.mutate(ctx, formID, func(builder *leadform.Builder) error {
		builder.RemoveQuestion(questionID)

		return nil
	})

	return err
}

// GenerateQuestions asks the AI backend for a question set and appends
// the normalized result to the form. The form is reloaded after the
// fetch so edits committed while the request was in flight survive;
// generated questions are appended to the fresh snapshot, never to the
// pre-fetch one.
func (s *LeadForm) GenerateQuestions(ctx context.Context, formID string, req aicopy.LeadFormRequest) (*models.LeadForm, error) {
	// Existence check before the remote call.
	_, err := s.FetchByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	questions, err := s.aiClient.GenerateLeadForm(ctx, req)
	if err != nil {
		return nil, err
	}

	// Reload: the form may have been edited while the fetch was pending.
	fresh, err := s.FetchByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	fresh.Questions = append(fresh.Questions, questions...)
	fresh.UpdatedAt = time.Now().UTC()

	err = s.persistence.LeadFormRepository().Save(ctx, fresh)
	if err != nil {
		return nil, fmt.Errorf("failed to save form: %w", err)
	}

	return fresh, nil
}
