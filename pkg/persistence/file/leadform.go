package file

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/launchpadhq/launchpad/pkg/persistence"
)

// LeadFormRepository stores each form as root/forms/<id>.json.
type LeadFormRepository struct {
	root string
}

// NewLeadFormRepository creates a new lead-form repository.
func NewLeadFormRepository(root string) *LeadFormRepository {
	return &LeadFormRepository{root: root}
}

func (fr *LeadFormRepository) dir() string {
	return path.Join(fr.root, "forms")
}

func (fr *LeadFormRepository) filePath(id string) string {
	return path.Join(fr.dir(), id+".json")
}

// ListForms returns every form, optionally filtered by workspace.
func (fr *LeadFormRepository) ListForms(ctx context.Context, workspaceID string) ([]*models.LeadForm, error) {
	root := os.DirFS(fr.dir())

	jsonFiles, err := fs.Glob(root, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list form files: %w", err)
	}

	forms := make([]*models.LeadForm, 0, len(jsonFiles))

	for _, file := range jsonFiles {
		formID := strings.TrimSuffix(file, ".json")

		form, err := fr.GetByID(ctx, formID)
		if err != nil {
			return nil, fmt.Errorf("failed to load form %s: %w", formID, err)
		}

		if form == nil {
			continue
		}

		if workspaceID != "" && form.WorkspaceID != workspaceID {
			continue
		}

		forms = append(forms, form)
	}

	return forms, nil
}

// GetByID loads a form document, returning (nil, nil) when absent.
func (fr *LeadFormRepository) GetByID(_ context.Context, id string) (*models.LeadForm, error) {
	data, err := os.ReadFile(fr.filePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, &persistence.FormError{Op: "GetByID", FormID: id, Err: err}
	}

	var form models.LeadForm

	err = json.Unmarshal(data, &form)
	if err != nil {
		return nil, &persistence.FormError{Op: "GetByID", FormID: id, Err: err}
	}

	return &form, nil
}

// Save writes the form document, creating the directory on first use.
func (fr *LeadFormRepository) Save(_ context.Context, form *models.LeadForm) error {
	err := os.MkdirAll(fr.dir(), 0o755)
	if err != nil {
		return &persistence.FormError{Op: "Save", FormID: form.ID, Err: err}
	}

	data, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return &persistence.FormError{Op: "Save", FormID: form.ID, Err: err}
	}

	err = os.WriteFile(fr.filePath(form.ID), data, 0o644)
	if err != nil {
		return &persistence.FormError{Op: "Save", FormID: form.ID, Err: err}
	}

	return nil
}

// Delete removes the form document. Deleting an absent form is a no-op.
func (fr *LeadFormRepository) Delete(_ context.Context, id string) error {
	err := os.Remove(fr.filePath(id))
	if err != nil && !os.IsNotExist(err) {
		return &persistence.FormError{Op: "Delete", FormID: id, Err: err}
	}

	return nil
}
