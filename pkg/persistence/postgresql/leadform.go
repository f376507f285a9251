package postgresql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/launchpadhq/launchpad/pkg/persistence"
)

// LeadFormRepository stores lead forms in the lead_forms table.
type LeadFormRepository struct {
	db *sql.DB
}

// NewLeadFormRepository creates a new lead-form repository.
func NewLeadFormRepository(db *sql.DB) *LeadFormRepository {
	return &LeadFormRepository{db: db}
}

// ListForms returns every form, optionally filtered by workspace.
func (fr *LeadFormRepository) ListForms(ctx context.Context, workspaceID string) ([]*models.LeadForm, error) {
	rows, err := fr.db.QueryContext(ctx,
		"SELECT doc FROM lead_forms WHERE ($1 = '' OR workspace_id = $1) ORDER BY created_at DESC",
		workspaceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}

	defer func() {
		_ = rows.Close()
	}()

	var forms []*models.LeadForm

	for rows.Next() {
		var doc []byte

		err = rows.Scan(&doc)
		if err != nil {
			return nil, fmt.Errorf("failed to scan form row: %w", err)
		}

		var form models.LeadForm

		err = json.Unmarshal(doc, &form)
		if err != nil {
			return nil, fmt.Errorf("failed to decode form document: %w", err)
		}

		forms = append(forms, &form)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate form rows: %w", err)
	}

	return forms, nil
}

// GetByID loads a form document, returning (nil, nil) when absent.
func (fr *LeadFormRepository) GetByID(ctx context.Context, id string) (*models.LeadForm, error) {
	var doc []byte

	err := fr.db.QueryRowContext(ctx, "SELECT doc FROM lead_forms WHERE id = $1", id).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, &persistence.FormError{Op: "GetByID", FormID: id, Err: err}
	}

	var form models.LeadForm

	err = json.Unmarshal(doc, &form)
	if err != nil {
		return nil, &persistence.FormError{Op: "GetByID", FormID: id, Err: err}
	}

	return &form, nil
}

// Save upserts the form document and its listing columns.
func (fr *LeadFormRepository) Save(ctx context.Context, form *models.LeadForm) error {
	doc, err := json.Marshal(form)
	if err != nil {
		return &persistence.FormError{Op: "Save", FormID: form.ID, Err: err}
	}

	_, err = fr.db.ExecContext(ctx, `
		INSERT INTO lead_forms (id, workspace_id, name, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			workspace_id = EXCLUDED.workspace_id,
			name = EXCLUDED.name,
			doc = EXCLUDED.doc,
			updated_at = EXCLUDED.updated_at
	`, form.ID, form.WorkspaceID, form.Name, doc, form.CreatedAt, form.UpdatedAt)
	if err != nil {
		return &persistence.FormError{Op: "Save", FormID: form.ID, Err: err}
	}

	return nil
}

// Delete removes the form row. Deleting an absent form is a no-op.
func (fr *LeadFormRepository) Delete(ctx context.Context, id string) error {
	_, err := fr.db.ExecContext(ctx, "DELETE FROM lead_forms WHERE id = $1", id)
	if err != nil {
		return &persistence.FormError{Op: "Delete", FormID: id, Err: err}
	}

	return nil
}
