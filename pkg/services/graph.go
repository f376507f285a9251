package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/launchpadhq/launchpad/pkg/aicopy"
	"github.com/launchpadhq/launchpad/pkg/catalog"
	"github.com/launchpadhq/launchpad/pkg/graph"
	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/launchpadhq/launchpad/pkg/persistence"
	"github.com/launchpadhq/launchpad/pkg/registry"
)

// Graph is the business layer over graph storage and the mutation API.
// Every structural operation loads the graph, mutates it through an
// editor, and saves it back; mutation failures leave storage untouched.
type Graph struct {
	persistence persistence.Persistence
	registry    *registry.Registry
	catalog     *catalog.Catalog
	aiClient    *aicopy.Client
}

// NewGraph creates a new graph service.
func NewGraph(
	persistence persistence.Persistence,
	registry *registry.Registry,
	catalog *catalog.Catalog,
	aiClient *aicopy.Client,
) *Graph {
	return &Graph{
		persistence: persistence,
		registry:    registry,
		catalog:     catalog,
		aiClient:    aiClient,
	}
}

// HealthCheck checks the health of the persistence layer.
func (s *Graph) HealthCheck(ctx context.Context) (string, bool) {
	if s.persistence == nil {
		return "Persistence layer not initialized", false
	}

	err := s.persistence.HealthCheck(ctx)
	if err != nil {
		return "Persistence layer is unhealthy: " + err.Error(), false
	}

	return "Persistence layer is healthy", true
}

// ListGraphsRequest contains options for listing graphs.
type ListGraphsRequest struct {
	Limit       int `validate:"min=0,max=100"`
	Offset      int `validate:"min=0"`
	WorkspaceID string
	SortBy      string
	SortOrder   string
}

// ListGraphs retrieves graphs with filtering, sorting and pagination.
func (s *Graph) ListGraphs(ctx context.Context, req ListGraphsRequest) (*persistence.GraphListResult, error) {
	if err := s.validateListGraphsRequest(&req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	result, err := s.persistence.GraphRepository().ListGraphs(ctx, persistence.ListGraphsOptions{
		Limit:       req.Limit,
		Offset:      req.Offset,
		WorkspaceID: req.WorkspaceID,
		SortBy:      req.SortBy,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		if persistence.IsInvalidSortField(err) {
			return nil, ErrInvalidSortField
		}

		return nil, fmt.Errorf("failed to list graphs: %w", err)
	}

	return result, nil
}

func (s *Graph) validateListGraphsRequest(req *ListGraphsRequest) error {
	if req.Limit <= 0 {
		req.Limit = 20
	}

	if req.Limit > 100 {
		req.Limit = 100
	}

	if req.Offset < 0 {
		req.Offset = 0
	}

	if req.SortBy == "" {
		req.SortBy = "created_at"
	}

	if req.SortOrder == "" {
		req.SortOrder = "desc"
	}

	allowedSorts := []string{"created_at", "updated_at", "name"}
	if !slices.Contains(allowedSorts, req.SortBy) {
		return NewValidationError(
			"validateListGraphsRequest",
			"INVALID_SORT_FIELD",
			fmt.Sprintf("invalid sort field '%s', allowed: %s", req.SortBy, strings.Join(allowedSorts, ", ")),
			ErrInvalidSortField,
		)
	}

	if req.SortOrder != "asc" && req.SortOrder != "desc" {
		return NewValidationError(
			"validateListGraphsRequest",
			"INVALID_SORT_ORDER",
			fmt.Sprintf("invalid sort order '%s', allowed: asc, desc", req.SortOrder),
			ErrInvalidSortOrder,
		)
	}

	return nil
}

// FetchByID retrieves a graph by its ID.
func (s *Graph) FetchByID(ctx context.Context, id string) (*models.Graph, error) {
	g, err := s.persistence.GraphRepository().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if g == nil {
		return nil, ErrGraphNotFound
	}

	return g, nil
}

// Create adds a new empty graph to the repository.
func (s *Graph) Create(ctx context.Context, g *models.Graph) (*models.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	if strings.TrimSpace(g.Name) == "" {
		return nil, ErrGraphNameRequired
	}

	now := time.Now().UTC()
	g.ID = uuid.New().String()
	g.CreatedAt = now
	g.UpdatedAt = now

	if g.Nodes == nil {
		g.Nodes = []*models.Node{}
	}

	if g.Edges == nil {
		g.Edges = []*models.Edge{}
	}

	err := s.persistence.GraphRepository().Save(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("failed to create graph: %w", err)
	}

	return g, nil
}

// Update modifies an existing graph's metadata by its ID.
func (s *Graph) Update(ctx context.Context, graphID string, g *models.Graph) (*models.Graph, error) {
	existing, err := s.FetchByID(ctx, graphID)
	if err != nil {
		return nil, err
	}

	g.ID = graphID
	g.CreatedAt = existing.CreatedAt
	g.UpdatedAt = time.Now().UTC()

	err = s.persistence.GraphRepository().Save(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("failed to update graph: %w", err)
	}

	return g, nil
}

// Delete removes a graph by its ID.
func (s *Graph) Delete(ctx context.Context, graphID string) error {
	_, err := s.FetchByID(ctx, graphID)
	if err != nil {
		return err
	}

	err = s.persistence.GraphRepository().Delete(ctx, graphID)
	if err != nil {
		return fmt.Errorf("failed to delete graph: %w", err)
	}

	return nil
}

// mutate loads the graph, runs fn against an editor and saves the
// result. When fn fails nothing is written back.
func (s *Graph) mutate(ctx context.Context, graphID string, fn func(*graph.Editor) error) (*models.Graph, error) {
	g, err := s.FetchByID(ctx, graphID)
	if err != nil {
		return nil, err
	}

	editor := graph.NewEditor(g, s.registry)

	err = fn(editor)
	if err != nil {
		return nil, err
	}

	g.UpdatedAt = time.Now().UTC()

	err = s.persistence.GraphRepository().Save(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("failed to save graph: %w", err)
	}

	return g, nil
}

// AddNode creates a node with registry defaults in the given graph.
func (s *Graph) AddNode(ctx context.Context, graphID string, kind models.NodeKind, position models.Position) (*models.Node, error) {
	var node *models.Node

	_, err := s.mutate(ctx, graphID, func(editor *graph.Editor) error {
		var addErr error
		node, addErr = editor.AddNode(kind, position)

		return addErr
	})
	if err != nil {
		return nil, err
	}

	return node, nil
}

// UpdateNode patches a node's mutable fields.
func (s *Graph) UpdateNode(ctx context.Context, graphID, nodeID string, patch graph.NodePatch) (*models.Node, error) {
	var node *models.Node

	_, err := s.mutate(ctx, graphID, func(editor *graph.Editor) error {
		var updateErr error
		node, updateErr = editor.UpdateNode(nodeID, patch)

		return updateErr
	})
	if err != nil {
		return nil, err
	}

	return node, nil
}

// RemoveNode deletes a node and its incident edges. Idempotent.
func (s *Graph) RemoveNode(ctx context.Context, graphID, nodeID string) error {
	_, err := s.mutate(ctx, graphID, func(editor *graph.Editor) error {
		editor.RemoveNode(nodeID)

		return nil
	})

	return err
}

// DuplicateNode clones a node without its edges.
func (s *Graph) DuplicateNode(ctx context.Context, graphID, nodeID string) (*models.Node, error) {
	var node *models.Node

	_, err := s.mutate(ctx, graphID, func(editor *graph.Editor) error {
		var dupErr error
		node, dupErr = editor.DuplicateNode(nodeID)

		return dupErr
	})
	if err != nil {
		return nil, err
	}

	return node, nil
}

// AddEdge connects two existing nodes.
func (s *Graph) AddEdge(ctx context.Context, graphID, source, target, edgeType string) (*models.Edge, error) {
	var edge *models.Edge

	_, err := s.mutate(ctx, graphID, func(editor *graph.Editor) error {
		var addErr error
		edge, addErr = editor.AddEdge(source, target, edgeType)

		return addErr
	})
	if err != nil {
		return nil, err
	}

	return edge, nil
}

// RemoveEdge deletes an edge by id. Idempotent.
func (s *Graph) RemoveEdge(ctx context.Context, graphID, edgeID string) error {
	_, err := s.mutate(ctx, graphID, func(editor *graph.Editor) error {
		editor.RemoveEdge(edgeID)

		return nil
	})

	return err
}

// ListTemplates returns catalog templates, optionally filtered by category.
func (s *Graph) ListTemplates(category string) []*models.Template {
	return s.catalog.List(category)
}

// ApplyTemplate instantiates a catalog template and merges the
// remapped fragment into the graph.
func (s *Graph) ApplyTemplate(ctx context.Context, graphID, templateID string) (*models.Graph, error) {
	template, err := s.catalog.ByID(templateID)
	if err != nil {
		return nil, ErrTemplateNotFound
	}

	return s.mutate(ctx, graphID, func(editor *graph.Editor) error {
		instance := s.catalog.Instantiate(template)

		return editor.Merge(instance.Nodes, instance.Edges)
	})
}

// ValidateGraph loads a graph and returns its advisory structural issues.
func (s *Graph) ValidateGraph(ctx context.Context, graphID string) ([]graph.Issue, error) {
	g, err := s.FetchByID(ctx, graphID)
	if err != nil {
		return nil, err
	}

	return graph.NewEditor(g, s.registry).Validate(), nil
}

// GenerateCopyForNode fetches AI copy variations for one node. The
// request is stamped with the graph version at issue time; if the graph
// changes while the fetch is in flight the response is discarded
// instead of overwriting newer edits.
func (s *Graph) GenerateCopyForNode(ctx context.Context, graphID, nodeID string, req aicopy.CopyRequest) (*models.Node, error) {
	g, err := s.FetchByID(ctx, graphID)
	if err != nil {
		return nil, err
	}

	editor := graph.NewEditor(g, s.registry)
	if g.NodeByID(nodeID) == nil {
		return nil, graph.NewMutationError("GenerateCopyForNode", nodeID, graph.ErrNodeNotFound)
	}

	ticket := aicopy.NewTicket(editor, nodeID)

	variations, err := s.aiClient.GenerateCopy(ctx, req)
	if err != nil {
		return nil, err
	}

	// Reload: the graph may have been edited while the fetch was pending.
	fresh, err := s.FetchByID(ctx, graphID)
	if err != nil {
		return nil, err
	}

	freshEditor := graph.NewEditor(fresh, s.registry)

	err = aicopy.NewApplier(freshEditor).ApplyVariations(ticket, variations)
	if err != nil {
		return nil, err
	}

	fresh.UpdatedAt = time.Now().UTC()

	err = s.persistence.GraphRepository().Save(ctx, fresh)
	if err != nil {
		return nil, fmt.Errorf("failed to save graph: %w", err)
	}

	return fresh.NodeByID(nodeID), nil
}
