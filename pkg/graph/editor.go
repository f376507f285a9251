// Package graph maintains the working node/edge state of one editor
// session and exposes structural mutations with referential-integrity
// guarantees: node deletion cascades to incident edges, edge creation
// rejects dangling endpoints, and no operation leaves the graph
// partially mutated.
package graph

import (
	"github.com/google/uuid"
	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/launchpadhq/launchpad/pkg/registry"
)

// duplicateOffset keeps a duplicated node from rendering exactly on top
// of its original.
const duplicateOffset = 40

// Editor owns a graph for the duration of an editing session. It is not
// safe for concurrent use; all mutations arrive from a single UI-driven
// request path (last-write-wins across sessions).
type Editor struct {
	graph    *models.Graph
	registry *registry.Registry
}

// NewEditor wraps an existing graph. The editor mutates the graph in
// place; callers persist via the services layer when done.
func NewEditor(g *models.Graph, reg *registry.Registry) *Editor {
	if g.Nodes == nil {
		g.Nodes = []*models.Node{}
	}

	if g.Edges == nil {
		g.Edges = []*models.Edge{}
	}

	return &Editor{graph: g, registry: reg}
}

// Graph returns the underlying graph.
func (e *Editor) Graph() *models.Graph {
	return e.graph
}

// Version returns the current mutation stamp. Async callers capture it
// when issuing a request and compare on response arrival; a mismatch
// means the graph changed in the meantime and the response is stale.
func (e *Editor) Version() int64 {
	return e.graph.Version
}

func (e *Editor) bump() {
	e.graph.Version++
}

// NodePatch carries the mutable node fields for UpdateNode. Kind and ID
// are deliberately absent; changing behavior requires delete-and-recreate.
type NodePatch struct {
	Label       *string
	Description *string
	Config      map[string]any
	Status      *models.NodeStatus
}

// AddNode creates a node of the given kind with registry defaults and a
// fresh unique id, and appends it to the graph.
func (e *Editor) AddNode(kind models.NodeKind, position models.Position) (*models.Node, error) {
	defaults, err := e.registry.DefaultsFor(kind)
	if err != nil {
		return nil, &MutationError{
			Op:      "AddNode",
			ID:      string(kind),
			Message: "unknown node kind",
			Err:     ErrInvalidOperation,
		}
	}

	node := &models.Node{
		ID:       uuid.New().String(),
		Kind:     kind,
		Label:    defaults.Label,
		Config:   defaults.Config,
		Position: position,
		Status:   models.NodeStatusIdle,
	}

	e.graph.Nodes = append(e.graph.Nodes, node)
	e.bump()

	return node, nil
}

// UpdateNode merges the patch into the node's mutable fields. A nil
// pointer in the patch leaves the field untouched; a non-nil Config
// replaces the config map wholesale.
func (e *Editor) UpdateNode(id string, patch NodePatch) (*models.Node, error) {
	node := e.graph.NodeByID(id)
	if node == nil {
		return nil, NewMutationError("UpdateNode", id, ErrNodeNotFound)
	}

	if patch.Label != nil {
		node.Label = *patch.Label
	}

	if patch.Description != nil {
		node.Description = *patch.Description
	}

	if patch.Config != nil {
		node.Config = models.CloneConfig(patch.Config)
	}

	if patch.Status != nil {
		node.Status = *patch.Status
	}

	e.bump()

	return node, nil
}

// RemoveNode deletes the node and cascade-deletes every edge whose
// source or target equals id. Removing an absent node is a no-op.
func (e *Editor) RemoveNode(id string) {
	index := -1

	for i, node := range e.graph.Nodes {
		if node.ID == id {
			index = i

			break
		}
	}

	if index < 0 {
		return
	}

	e.graph.Nodes = append(e.graph.Nodes[:index], e.graph.Nodes[index+1:]...)

	kept := e.graph.Edges[:0]

	for _, edge := range e.graph.Edges {
		if edge.Source == id || edge.Target == id {
			continue
		}

		kept = append(kept, edge)
	}

	e.graph.Edges = kept
	e.bump()
}

// DuplicateNode clones label, description and config into a new node
// with a fresh id and an offset position. Incident edges are not
// duplicated: copies start disconnected so the user wires them in
// deliberately.
func (e *Editor) DuplicateNode(id string) (*models.Node, error) {
	original := e.graph.NodeByID(id)
	if original == nil {
		return nil, NewMutationError("DuplicateNode", id, ErrNodeNotFound)
	}

	clone := original.Clone()
	clone.ID = uuid.New().String()
	clone.Position = models.Position{
		X: original.Position.X + duplicateOffset,
		Y: original.Position.Y + duplicateOffset,
	}
	clone.Status = models.NodeStatusIdle

	e.graph.Nodes = append(e.graph.Nodes, clone)
	e.bump()

	return clone, nil
}

// AddEdge connects two existing nodes. Both endpoints must resolve to
// current node ids; a dangling edge is never created.
func (e *Editor) AddEdge(source, target, edgeType string) (*models.Edge, error) {
	if !e.graph.HasNode(source) {
		return nil, &MutationError{
			Op:      "AddEdge",
			ID:      source,
			Message: "source node does not exist",
			Err:     ErrInvalidReference,
		}
	}

	if !e.graph.HasNode(target) {
		return nil, &MutationError{
			Op:      "AddEdge",
			ID:      target,
			Message: "target node does not exist",
			Err:     ErrInvalidReference,
		}
	}

	edge := &models.Edge{
		ID:     uuid.New().String(),
		Source: source,
		Target: target,
		Type:   edgeType,
	}

	e.graph.Edges = append(e.graph.Edges, edge)
	e.bump()

	return edge, nil
}

// RemoveEdge deletes an edge by id. Removing an absent edge is a no-op.
func (e *Editor) RemoveEdge(id string) {
	for i, edge := range e.graph.Edges {
		if edge.ID == id {
			e.graph.Edges = append(e.graph.Edges[:i], e.graph.Edges[i+1:]...)
			e.bump()

			return
		}
	}
}

// Merge appends an instantiated template fragment to the graph. The
// fragment must arrive with remapped ids (see catalog.Instantiate); any
// collision with current ids rejects the whole merge and the graph is
// left untouched.
func (e *Editor) Merge(nodes []*models.Node, edges []*models.Edge) error {
	incoming := make(map[string]bool, len(nodes))

	for _, node := range nodes {
		if e.graph.HasNode(node.ID) || incoming[node.ID] {
			return NewMutationError("Merge", node.ID, ErrDuplicateID)
		}

		incoming[node.ID] = true
	}

	for _, edge := range edges {
		if e.graph.EdgeByID(edge.ID) != nil {
			return NewMutationError("Merge", edge.ID, ErrDuplicateID)
		}

		if !incoming[edge.Source] && !e.graph.HasNode(edge.Source) {
			return NewMutationError("Merge", edge.Source, ErrInvalidReference)
		}

		if !incoming[edge.Target] && !e.graph.HasNode(edge.Target) {
			return NewMutationError("Merge", edge.Target, ErrInvalidReference)
		}
	}

	e.graph.Nodes = append(e.graph.Nodes, nodes...)
	e.graph.Edges = append(e.graph.Edges, edges...)
	e.bump()

	return nil
}
