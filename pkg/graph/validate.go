package graph

import (
	"fmt"

	"github.com/launchpadhq/launchpad/pkg/models"
)

// Issue is an advisory diagnostic produced by Validate. Issues never
// block editing; the execution backend decides what it accepts.
type Issue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	NodeID  string `json:"node_id,omitempty"`
	EdgeID  string `json:"edge_id,omitempty"`
}

const (
	IssueCycle        = "cycle"
	IssueDanglingEdge = "dangling_edge"
	IssueOrphanNode   = "orphan_node"
)

// Validate inspects the graph for structural problems: cycles in the
// directed node graph, edges whose endpoints no longer resolve, and
// non-trigger nodes with no incident edges. The mutation API prevents
// the dangling case; the check remains for graphs loaded from storage.
func (e *Editor) Validate() []Issue {
	var issues []Issue

	adjacency := make(map[string][]string)
	connected := make(map[string]bool)

	for _, edge := range e.graph.Edges {
		if !e.graph.HasNode(edge.Source) || !e.graph.HasNode(edge.Target) {
			issues = append(issues, Issue{
				Code:    IssueDanglingEdge,
				Message: fmt.Sprintf("edge %s references a missing node", edge.ID),
				EdgeID:  edge.ID,
			})

			continue
		}

		adjacency[edge.Source] = append(adjacency[edge.Source], edge.Target)
		connected[edge.Source] = true
		connected[edge.Target] = true
	}

	if cycleNode := findCycle(e.graph.Nodes, adjacency); cycleNode != "" {
		issues = append(issues, Issue{
			Code:    IssueCycle,
			Message: fmt.Sprintf("graph contains a cycle through node %s", cycleNode),
			NodeID:  cycleNode,
		})
	}

	if len(e.graph.Nodes) > 1 {
		for _, node := range e.graph.Nodes {
			if !connected[node.ID] {
				issues = append(issues, Issue{
					Code:    IssueOrphanNode,
					Message: fmt.Sprintf("node %s is not connected to the rest of the graph", node.ID),
					NodeID:  node.ID,
				})
			}
		}
	}

	return issues
}

// findCycle runs a three-color DFS over the adjacency map and
// returns a node id on a cycle, or "" when the graph is acyclic.
func findCycle(nodes []*models.Node, adjacency map[string][]string) string {
	const (
		white = 0 // unvisited
		gray  = 1 // on the current DFS path
		black = 2 // fully explored
	)

	color := make(map[string]int, len(nodes))

	var visit func(id string) string

	visit = func(id string) string {
		color[id] = gray

		for _, next := range adjacency[id] {
			switch color[next] {
			case gray:
				return next
			case white:
				if hit := visit(next); hit != "" {
					return hit
				}
			}
		}

		color[id] = black

		return ""
	}

	for _, node := range nodes {
		if color[node.ID] == white {
			if hit := visit(node.ID); hit != "" {
				return hit
			}
		}
	}

	return ""
}
