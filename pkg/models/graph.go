// Package models defines the core domain models for the campaign workflow editor
package models

import "time"

// NodeKind identifies the behavior class of a node. The set is closed;
// a node's kind is fixed at creation time because config schemas differ per kind.
type NodeKind string

const (
	NodeKindTrigger      NodeKind = "trigger"      // Starts a workflow on a schedule or event
	NodeKindSelector     NodeKind = "selector"     // Selects campaigns/ads matching a metric filter
	NodeKindCondition    NodeKind = "condition"    // Branches on a metric comparison
	NodeKindAction       NodeKind = "action"       // Applies a change (pause, boost, duplicate)
	NodeKindApproval     NodeKind = "approval"     // Holds for human sign-off
	NodeKindNotification NodeKind = "notification" // Sends email/Slack/webhook messages
	NodeKindAI           NodeKind = "ai"           // Requests AI-generated creative variations
	NodeKindAnalytics    NodeKind = "analytics"    // Collects and summarizes performance data
)

// NodeKinds returns every valid node kind in declaration order.
func NodeKinds() []NodeKind {
	return []NodeKind{
		NodeKindTrigger,
		NodeKindSelector,
		NodeKindCondition,
		NodeKindAction,
		NodeKindApproval,
		NodeKindNotification,
		NodeKindAI,
		NodeKindAnalytics,
	}
}

// Valid reports whether k is a member of the closed kind set.
func (k NodeKind) Valid() bool {
	switch k {
	case NodeKindTrigger, NodeKindSelector, NodeKindCondition, NodeKindAction,
		NodeKindApproval, NodeKindNotification, NodeKindAI, NodeKindAnalytics:
		return true
	default:
		return false
	}
}

// NodeStatus is the display-only execution state of a node.
// It is never authoritative; the execution backend owns the real state.
type NodeStatus string

const (
	NodeStatusIdle    NodeStatus = "idle"
	NodeStatusRunning NodeStatus = "running"
	NodeStatusSuccess NodeStatus = "success"
	NodeStatusFailed  NodeStatus = "failed"
)

// Position is a 2D layout coordinate. It has no effect on execution order.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Node represents a single step in a campaign workflow graph.
type Node struct {
	ID          string         `json:"id"          validate:"required"`
	Kind        NodeKind       `json:"kind"        validate:"required"`
	Label       string         `json:"label"       validate:"required,min=1"`
	Description string         `json:"description,omitempty"`
	Config      map[string]any `json:"config"`
	Position    Position       `json:"position"`
	Status      NodeStatus     `json:"status"`
}

// Clone returns a deep copy of the node. The config map is copied
// recursively so edits to the clone never leak into the original.
func (n *Node) Clone() *Node {
	clone := *n
	clone.Config = CloneConfig(n.Config)

	return &clone
}

// Edge is a directed connection between two node ids in the same graph.
// Type distinguishes conditional branches (e.g. "approval-denied").
type Edge struct {
	ID       string `json:"id"     validate:"required"`
	Source   string `json:"source" validate:"required"`
	Target   string `json:"target" validate:"required"`
	Type     string `json:"type,omitempty"`
	Animated bool   `json:"animated,omitempty"`
}

// Clone returns a copy of the edge.
func (e *Edge) Clone() *Edge {
	clone := *e

	return &clone
}

// Graph is the aggregate a single editor session works on: nodes, edges
// and metadata. Version increments on every structural mutation and is
// compared against in-flight async responses to discard stale results.
type Graph struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"         validate:"required,min=3"`
	WorkspaceID string    `json:"workspace_id"`
	Nodes       []*Node   `json:"nodes"`
	Edges       []*Edge   `json:"edges"`
	Version     int64     `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NodeByID returns the node with the given id, or nil when absent.
func (g *Graph) NodeByID(id string) *Node {
	for _, node := range g.Nodes {
		if node.ID == id {
			return node
		}
	}

	return nil
}

// EdgeByID returns the edge with the given id, or nil when absent.
func (g *Graph) EdgeByID(id string) *Edge {
	for _, edge := range g.Edges {
		if edge.ID == id {
			return edge
		}
	}

	return nil
}

// HasNode reports whether a node with the given id exists in the graph.
func (g *Graph) HasNode(id string) bool {
	return g.NodeByID(id) != nil
}

// CloneConfig deep-copies a node config map. Nested maps and slices are
// copied; scalar values are shared (they are immutable from Go's side).
func CloneConfig(config map[string]any) map[string]any {
	if config == nil {
		return nil
	}

	clone := make(map[string]any, len(config))
	for key, value := range config {
		clone[key] = cloneValue(value)
	}

	return clone
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return CloneConfig(v)
	case []any:
		clone := make([]any, len(v))
		for i, item := range v {
			clone[i] = cloneValue(item)
		}

		return clone
	case []string:
		clone := make([]string, len(v))
		copy(clone, v)

		return clone
	default:
		return v
	}
}
