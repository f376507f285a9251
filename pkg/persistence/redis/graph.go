package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/launchpadhq/launchpad/pkg/persistence"
)

// GraphRepository stores each graph as a JSON blob under
// launchpad:graph:<id>.
type GraphRepository struct {
	client redis.UniversalClient
}

// NewGraphRepository creates a new graph repository.
func NewGraphRepository(client redis.UniversalClient) *GraphRepository {
	return &GraphRepository{client: client}
}

// ListGraphs scans the graph namespace and filters, sorts and pages in
// memory.
func (gr *GraphRepository) ListGraphs(ctx context.Context, opts persistence.ListGraphsOptions) (*persistence.GraphListResult, error) {
	applyListDefaults(&opts)

	if !allowedSortFields[opts.SortBy] {
		return nil, fmt.Errorf("%w: %s", persistence.ErrInvalidSortField, opts.SortBy)
	}

	keys, err := scanKeys(ctx, gr.client, graphKeyPrefix)
	if err != nil {
		return nil, err
	}

	all := make([]*models.Graph, 0, len(keys))

	for _, key := range keys {
		data, err := gr.client.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}

			return nil, fmt.Errorf("failed to load graph %s: %w", key, err)
		}

		var graph models.Graph

		err = json.Unmarshal(data, &graph)
		if err != nil {
			return nil, fmt.Errorf("failed to decode graph %s: %w", key, err)
		}

		if opts.WorkspaceID != "" && graph.WorkspaceID != opts.WorkspaceID {
			continue
		}

		all = append(all, &graph)
	}

	sortGraphs(all, opts.SortBy, opts.SortOrder)

	total := int64(len(all))

	start := opts.Offset
	if start > len(all) {
		start = len(all)
	}

	end := start + opts.Limit
	if end > len(all) {
		end = len(all)
	}

	return &persistence.GraphListResult{
		Graphs:      all[start:end],
		TotalCount:  total,
		HasNextPage: end < len(all),
	}, nil
}

// GetByID loads a graph, returning (nil, nil) when absent.
func (gr *GraphRepository) GetByID(ctx context.Context, id string) (*models.Graph, error) {
	data, err := gr.client.Get(ctx, graphKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, persistence.NewGraphError("GetByID", id, err)
	}

	var graph models.Graph

	err = json.Unmarshal(data, &graph)
	if err != nil {
		return nil, persistence.NewGraphError("GetByID", id, err)
	}

	return &graph, nil
}

// Save writes the graph blob without expiry.
func (gr *GraphRepository) Save(ctx context.Context, graph *models.Graph) error {
	data, err := json.Marshal(graph)
	if err != nil {
		return persistence.NewGraphError("Save", graph.ID, err)
	}

	err = gr.client.Set(ctx, graphKeyPrefix+graph.ID, data, 0).Err()
	if err != nil {
		return persistence.NewGraphError("Save", graph.ID, err)
	}

	return nil
}

// Delete removes the graph blob. Deleting an absent graph is a no-op.
func (gr *GraphRepository) Delete(ctx context.Context, id string) error {
	err := gr.client.Del(ctx, graphKeyPrefix+id).Err()
	if err != nil {
		return persistence.NewGraphError("Delete", id, err)
	}

	return nil
}

var allowedSortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

func applyListDefaults(opts *persistence.ListGraphsOptions) {
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
}

func sortGraphs(graphs []*models.Graph, sortBy, sortOrder string) {
	sort.SliceStable(graphs, func(i, j int) bool {
		var less bool

		switch sortBy {
		case "name":
			less = graphs[i].Name < graphs[j].Name
		case "updated_at":
			less = graphs[i].UpdatedAt.Before(graphs[j].UpdatedAt)
		default:
			less = graphs[i].CreatedAt.Before(graphs[j].CreatedAt)
		}

		if sortOrder == "desc" {
			return !less
		}

		return less
	})
}
