// Package persistence provides the data storage abstraction for
// workflow graphs and lead forms.
package persistence

import (
	"context"

	"github.com/launchpadhq/launchpad/pkg/models"
)

// Persistence is the storage entry point. Backends exist for the file
// system, Redis and PostgreSQL; the editor never knows which one it got.
type Persistence interface {
	GraphRepository() GraphRepository
	LeadFormRepository() LeadFormRepository
	HealthCheck(ctx context.Context) error
	Close(ctx context.Context) error
}

// ListGraphsOptions controls filtering, sorting and pagination for
// graph listings.
type ListGraphsOptions struct {
	Limit       int
	Offset      int
	WorkspaceID string
	SortBy      string // created_at, updated_at or name
	SortOrder   string // asc or desc
}

// GraphListResult is one page of graphs plus paging metadata.
type GraphListResult struct {
	Graphs      []*models.Graph `json:"graphs"`
	TotalCount  int64           `json:"total_count"`
	HasNextPage bool            `json:"has_next_page"`
}

// GraphRepository stores workflow graphs. GetByID returns (nil, nil)
// when no graph exists with the given id; callers translate that to
// their own not-found error.
type GraphRepository interface {
	ListGraphs(ctx context.Context, opts ListGraphsOptions) (*GraphListResult, error)
	GetByID(ctx context.Context, id string) (*models.Graph, error)
	Save(ctx context.Context, graph *models.Graph) error
	Delete(ctx context.Context, id string) error
}

// LeadFormRepository stores lead forms with the same nil-on-absent
// convention as GraphRepository.
type LeadFormRepository interface {
	ListForms(ctx context.Context, workspaceID string) ([]*models.LeadForm, error)
	GetByID(ctx context.Context, id string) (*models.LeadForm, error)
	Save(ctx context.Context, form *models.LeadForm) error
	Delete(ctx context.Context, id string) error
}
