package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/launchpadhq/launchpad/pkg/persistence"
)

// LeadFormRepository stores each form as a JSON blob under
// launchpad:form:<id>.
type LeadFormRepository struct {
	client redis.UniversalClient
}

// NewLeadFormRepository creates a new lead-form repository.
func NewLeadFormRepository(client redis.UniversalClient) *LeadFormRepository {
	return &LeadFormRepository{client: client}
}

// ListForms scans the form namespace, optionally filtered by workspace.
func (fr *LeadFormRepository) ListForms(ctx context.Context, workspaceID string) ([]*models.LeadForm, error) {
	keys, err := scanKeys(ctx, fr.client, formKeyPrefix)
	if err != nil {
		return nil, err
	}

	forms := make([]*models.LeadForm, 0, len(keys))

	for _, key := range keys {
		data, err := fr.client.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}

			return nil, fmt.Errorf("failed to load form %s: %w", key, err)
		}

		var form models.LeadForm

		err = json.Unmarshal(data, &form)
		if err != nil {
			return nil, fmt.Errorf("failed to decode form %s: %w", key, err)
		}

		if workspaceID != "" && form.WorkspaceID != workspaceID {
			continue
		}

		forms = append(forms, &form)
	}

	return forms, nil
}

// GetByID loads a form, returning (nil, nil) when absent.
func (fr *LeadFormRepository) GetByID(ctx context.Context, id string) (*models.LeadForm, error) {
	data, err := fr.client.Get(ctx, formKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
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

// Save writes the form blob without expiry.
func (fr *LeadFormRepository) Save(ctx context.Context, form *models.LeadForm) error {
	data, err := json.Marshal(form)
	if err != nil {
		return &persistence.FormError{Op: "Save", FormID: form.ID, Err: err}
	}

	err = fr.client.Set(ctx, formKeyPrefix+form.ID, data, 0).Err()
	if err != nil {
		return &persistence.FormError{Op: "Save", FormID: form.ID, Err: err}
	}

	return nil
}

// Delete removes the form blob. Deleting an absent form is a no-op.
func (fr *LeadFormRepository) Delete(ctx context.Context, id string) error {
	err := fr.client.Del(ctx, formKeyPrefix+id).Err()
	if err != nil {
		return &persistence.FormError{Op: "Delete", FormID: id, Err: err}
	}

	return nil
}
