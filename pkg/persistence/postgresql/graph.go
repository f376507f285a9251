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

// GraphRepository stores graphs in the graphs table.
type GraphRepository struct {
	db *sql.DB
}

// NewGraphRepository creates a new graph repository.
func NewGraphRepository(db *sql.DB) *GraphRepository {
	return &GraphRepository{db: db}
}

// sortColumns maps request sort fields to real columns; anything outside
// the allowlist is rejected before it reaches the query string.
var sortColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"name":       "name",
}

// ListGraphs filters, sorts and pages in SQL.
func (gr *GraphRepository) ListGraphs(ctx context.Context, opts persistence.ListGraphsOptions) (*persistence.GraphListResult, error) {
	if opts.Limit <= 0 || opts.Limit > 100 {
		opts.Limit = 20
	}

	if opts.Offset < 0 {
		opts.Offset = 0
	}

	if opts.SortBy == "" {
		opts.SortBy = "created_at"
	}

	if opts.SortOrder == "" {
		opts.SortOrder = "desc"
	}

	column, ok := sortColumns[opts.SortBy]
	if !ok {
		return nil, fmt.Errorf("%w: %s", persistence.ErrInvalidSortField, opts.SortBy)
	}

	direction := "DESC"
	if opts.SortOrder == "asc" {
		direction = "ASC"
	}

	var total int64

	err := gr.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM graphs WHERE ($1 = '' OR workspace_id = $1)",
		opts.WorkspaceID,
	).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("failed to count graphs: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT doc FROM graphs WHERE ($1 = '' OR workspace_id = $1) ORDER BY %s %s LIMIT $2 OFFSET $3",
		column, direction,
	)

	rows, err := gr.db.QueryContext(ctx, query, opts.WorkspaceID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list graphs: %w", err)
	}

	defer func() {
		_ = rows.Close()
	}()

	graphs := make([]*models.Graph, 0, opts.Limit)

	for rows.Next() {
		var doc []byte

		err = rows.Scan(&doc)
		if err != nil {
			return nil, fmt.Errorf("failed to scan graph row: %w", err)
		}

		var graph models.Graph

		err = json.Unmarshal(doc, &graph)
		if err != nil {
			return nil, fmt.Errorf("failed to decode graph document: %w", err)
		}

		graphs = append(graphs, &graph)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate graph rows: %w", err)
	}

	return &persistence.GraphListResult{
		Graphs:      graphs,
		TotalCount:  total,
		HasNextPage: int64(opts.Offset+len(graphs)) < total,
	}, nil
}

// GetByID loads a graph document, returning (nil, nil) when absent.
func (gr *GraphRepository) GetByID(ctx context.Context, id string) (*models.Graph, error) {
	var doc []byte

	err := gr.db.QueryRowContext(ctx, "SELECT doc FROM graphs WHERE id = $1", id).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, persistence.NewGraphError("GetByID", id, err)
	}

	var graph models.Graph

	err = json.Unmarshal(doc, &graph)
	if err != nil {
		return nil, persistence.NewGraphError("GetByID", id, err)
	}

	return &graph, nil
}

// Save upserts the graph document and its listing columns.
func (gr *GraphRepository) Save(ctx context.Context, graph *models.Graph) error {
	doc, err := json.Marshal(graph)
	if err != nil {
		return persistence.NewGraphError("Save", graph.ID, err)
	}

	_, err = gr.db.ExecContext(ctx, `
		INSERT INTO graphs (id, workspace_id, name, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			workspace_id = EXCLUDED.workspace_id,
			name = EXCLUDED.name,
			doc = EXCLUDED.doc,
			updated_at = EXCLUDED.updated_at
	`, graph.ID, graph.WorkspaceID, graph.Name, doc, graph.CreatedAt, graph.UpdatedAt)
	if err != nil {
		return persistence.NewGraphError("Save", graph.ID, err)
	}

	return nil
}

// Delete removes the graph row. Deleting an absent graph is a no-op.
func (gr *GraphRepository) Delete(ctx context.Context, id string) error {
	_, err := gr.db.ExecContext(ctx, "DELETE FROM graphs WHERE id = $1", id)
	if err != nil {
		return persistence.NewGraphError("Delete", id, err)
	}

	return nil
}
