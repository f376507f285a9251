// Package web provides HTTP handlers and REST API endpoints for graph
// and lead-form management.
package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/launchpadhq/launchpad/pkg/aicopy"
	"github.com/launchpadhq/launchpad/pkg/graph"
	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/launchpadhq/launchpad/pkg/registry"
	"github.com/launchpadhq/launchpad/pkg/services"
)

type APIHandlers struct {
	graphService    *services.Graph
	leadFormService *services.LeadForm
	validator       *validator.Validate
	registry        *registry.Registry
}

func NewAPIHandlers(
	graphService *services.Graph,
	leadFormService *services.LeadForm,
	validator *validator.Validate,
	registry *registry.Registry,
) *APIHandlers {
	return &APIHandlers{
		graphService:    graphService,
		leadFormService: leadFormService,
		validator:       validator,
		registry:        registry,
	}
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	registryCheck, regOk := h.registry.HealthCheck()
	repositoryCheck, repOk := h.graphService.HealthCheck(c.Context())

	status := "unhealthy"
	message := "Launchpad API is unhealthy"
	httpStatus := http.StatusInternalServerError

	if regOk && repOk {
		status = "healthy"
		message = "Launchpad API is healthy"
		httpStatus = http.StatusOK
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"checkers": fiber.Map{
			"registry":   registryCheck,
			"repository": repositoryCheck,
		},
		"timestamp": time.Now().UTC(),
	})
}

// GetNodeKinds lists the node kinds the registry knows, with their
// default label and config so the palette can render without a second
// round trip.
func (h *APIHandlers) GetNodeKinds(c fiber.Ctx) error {
	kinds := h.registry.Kinds()
	out := make([]fiber.Map, 0, len(kinds))

	for _, kind := range kinds {
		defaults, err := h.registry.DefaultsFor(kind)
		if err != nil {
			continue
		}

		out = append(out, fiber.Map{
			"kind":   kind,
			"label":  defaults.Label,
			"config": defaults.Config,
		})
	}

	return c.JSON(fiber.Map{"kinds": out})
}

func (h *APIHandlers) GetGraphs(c fiber.Ctx) error {
	req, err := h.parseListGraphsRequest(c)
	if err != nil {
		return badRequest(c, "Invalid query parameters: "+err.Error())
	}

	result, err := h.graphService.ListGraphs(c.Context(), *req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"graphs":        result.Graphs,
		"total_count":   result.TotalCount,
		"has_next_page": result.HasNextPage,
		"pagination": fiber.Map{
			"limit":  req.Limit,
			"offset": req.Offset,
		},
		"sorting": fiber.Map{
			"sort_by":    req.SortBy,
			"sort_order": req.SortOrder,
		},
	})
}

// parseListGraphsRequest parses and validates query parameters for listing graphs.
func (h *APIHandlers) parseListGraphsRequest(c fiber.Ctx) (*services.ListGraphsRequest, error) {
	req := &services.ListGraphsRequest{}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, err
		}

		req.Limit = limit
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return nil, err
		}

		req.Offset = offset
	}

	req.WorkspaceID = c.Query("workspace_id")
	req.SortBy = c.Query("sort_by")
	req.SortOrder = c.Query("sort_order")

	return req, nil
}

func (h *APIHandlers) GetGraph(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Graph ID is required")
	}

	g, err := h.graphService.FetchByID(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(g)
}

func (h *APIHandlers) CreateGraph(c fiber.Ctx) error {
	var req CreateGraphRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	g := &models.Graph{
		Name:        req.Name,
		WorkspaceID: req.WorkspaceID,
		Nodes:       []*models.Node{}, // Empty - nodes added separately
		Edges:       []*models.Edge{}, // Empty - edges added separately
	}

	created, err := h.graphService.Create(c.Context(), g)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *APIHandlers) UpdateGraph(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Graph ID is required")
	}

	var req UpdateGraphRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	existing, err := h.graphService.FetchByID(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	// Apply partial updates (nodes and edges managed separately)
	if req.Name != nil {
		existing.Name = *req.Name
	}

	updated, err := h.graphService.Update(c.Context(), id, existing)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(updated)
}

func (h *APIHandlers) DeleteGraph(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Graph ID is required")
	}

	err := h.graphService.Delete(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) ValidateGraph(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Graph ID is required")
	}

	issues, err := h.graphService.ValidateGraph(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	if issues == nil {
		issues = []graph.Issue{}
	}

	return c.JSON(fiber.Map{
		"issues": issues,
		"valid":  len(issues) == 0,
	})
}

func (h *APIHandlers) CreateNode(c fiber.Ctx) error {
	graphID := c.Params("id")
	if graphID == "" {
		return badRequest(c, "Graph ID is required")
	}

	var req CreateNodeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	node, err := h.graphService.AddNode(
		c.Context(),
		graphID,
		models.NodeKind(req.Kind),
		models.Position{X: req.PositionX, Y: req.PositionY},
	)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(node)
}

func (h *APIHandlers) UpdateNode(c fiber.Ctx) error {
	graphID := c.Params("id")
	nodeID := c.Params("nodeId")

	if graphID == "" || nodeID == "" {
		return badRequest(c, "Graph ID and node ID are required")
	}

	var req UpdateNodeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	patch := graph.NodePatch{
		Label:       req.Label,
		Description: req.Description,
		Config:      req.Config,
	}

	if req.Status != nil {
		status := models.NodeStatus(*req.Status)
		patch.Status = &status
	}

	node, err := h.graphService.UpdateNode(c.Context(), graphID, nodeID, patch)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(node)
}

func (h *APIHandlers) DeleteNode(c fiber.Ctx) error {
	graphID := c.Params("id")
	nodeID := c.Params("nodeId")

	if graphID == "" || nodeID == "" {
		return badRequest(c, "Graph ID and node ID are required")
	}

	err := h.graphService.RemoveNode(c.Context(), graphID, nodeID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) DuplicateNode(c fiber.Ctx) error {
	graphID := c.Params("id")
	nodeID := c.Params("nodeId")

	if graphID == "" || nodeID == "" {
		return badRequest(c, "Graph ID and node ID are required")
	}

	node, err := h.graphService.DuplicateNode(c.Context(), graphID, nodeID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(node)
}

func (h *APIHandlers) CreateEdge(c fiber.Ctx) error {
	graphID := c.Params("id")
	if graphID == "" {
		return badRequest(c, "Graph ID is required")
	}

	var req CreateEdgeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	edge, err := h.graphService.AddEdge(c.Context(), graphID, req.Source, req.Target, req.Type)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(edge)
}

func (h *APIHandlers) DeleteEdge(c fiber.Ctx) error {
	graphID := c.Params("id")
	edgeID := c.Params("edgeId")

	if graphID == "" || edgeID == "" {
		return badRequest(c, "Graph ID and edge ID are required")
	}

	err := h.graphService.RemoveEdge(c.Context(), graphID, edgeID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) GetTemplates(c fiber.Ctx) error {
	templates := h.graphService.ListTemplates(c.Query("category"))

	return c.JSON(fiber.Map{
		"templates":   templates,
		"total_count": len(templates),
	})
}

func (h *APIHandlers) ApplyTemplate(c fiber.Ctx) error {
	graphID := c.Params("id")
	templateID := c.Params("templateId")

	if graphID == "" || templateID == "" {
		return badRequest(c, "Graph ID and template ID are required")
	}

	g, err := h.graphService.ApplyTemplate(c.Context(), graphID, templateID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(g)
}

func (h *APIHandlers) GenerateCopy(c fiber.Ctx) error {
	graphID := c.Params("id")
	nodeID := c.Params("nodeId")

	if graphID == "" || nodeID == "" {
		return badRequest(c, "Graph ID and node ID are required")
	}

	var req GenerateCopyRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	g, err := h.graphService.FetchByID(c.Context(), graphID)
	if err != nil {
		return handleServiceError(c, err)
	}

	node, err := h.graphService.GenerateCopyForNode(c.Context(), graphID, nodeID, aicopy.CopyRequest{
		Product:   req.Product,
		Workspace: g.WorkspaceID,
		Draft:     req.Draft,
		Count:     req.Count,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(node)
}
