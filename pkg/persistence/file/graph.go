package file

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/launchpadhq/launchpad/pkg/persistence"
)

// GraphRepository stores each graph as root/graphs/<id>.json.
type GraphRepository struct {
	root string
}

// NewGraphRepository creates a new graph repository.
func NewGraphRepository(root string) *GraphRepository {
	return &GraphRepository{root: root}
}

func (gr *GraphRepository) dir() string {
	return path.Join(gr.root, "graphs")
}

func (gr *GraphRepository) filePath(id string) string {
	return path.Join(gr.dir(), id+".json")
}

// ListGraphs returns paginated and filtered graphs with in-memory operations.
func (gr *GraphRepository) ListGraphs(ctx context.Context, opts persistence.ListGraphsOptions) (*persistence.GraphListResult, error) {
	applyListDefaults(&opts)

	if !allowedSortFields[opts.SortBy] {
		return nil, fmt.Errorf("%w: %s", persistence.ErrInvalidSortField, opts.SortBy)
	}

	root := os.DirFS(gr.dir())

	jsonFiles, err := fs.Glob(root, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list graph files: %w", err)
	}

	all := make([]*models.Graph, 0, len(jsonFiles))

	for _, file := range jsonFiles {
		graphID := strings.TrimSuffix(file, ".json")

		graph, err := gr.GetByID(ctx, graphID)
		if err != nil {
			return nil, fmt.Errorf("failed to load graph %s: %w", graphID, err)
		}

		if graph == nil {
			continue
		}

		if opts.WorkspaceID != "" && graph.WorkspaceID != opts.WorkspaceID {
			continue
		}

		all = append(all, graph)
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

// GetByID loads a graph document, returning (nil, nil) when absent.
func (gr *GraphRepository) GetByID(_ context.Context, id string) (*models.Graph, error) {
	data, err := os.ReadFile(gr.filePath(id))
	if err != nil {
		if os.IsNotExist(err) {
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

// Save writes the graph document, creating the directory on first use.
func (gr *GraphRepository) Save(_ context.Context, graph *models.Graph) error {
	err := os.MkdirAll(gr.dir(), 0o755)
	if err != nil {
		return persistence.NewGraphError("Save", graph.ID, err)
	}

	data, err := json.MarshalIndent(graph, "", "  ")
	if err != nil {
		return persistence.NewGraphError("Save", graph.ID, err)
	}

	err = os.WriteFile(gr.filePath(graph.ID), data, 0o644)
	if err != nil {
		return persistence.NewGraphError("Save", graph.ID, err)
	}

	return nil
}

// Delete removes the graph document. Deleting an absent graph is a no-op.
func (gr *GraphRepository) Delete(_ context.Context, id string) error {
	err := os.Remove(gr.filePath(id))
	if err != nil && !os.IsNotExist(err) {
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
