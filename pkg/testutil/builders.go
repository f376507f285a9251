// Package testutil provides test data builders and utilities for testing.
package testutil

import (
	"github.com/google/uuid"
	"github.com/launchpadhq/launchpad/pkg/models"
)

// CreateTestNode creates a test Node with default values that can be overridden.
func CreateTestNode(overrides ...func(*models.Node)) *models.Node {
	node := &models.Node{
		ID:       uuid.New().String(),
		Kind:     models.NodeKindAction,
		Label:    "Test Node",
		Config:   map[string]any{"action": "pause", "threshold": 0},
		Position: models.Position{X: 100, Y: 200},
		Status:   models.NodeStatusIdle,
	}

	for _, override := range overrides {
		override(node)
	}

	return node
}

// WithKind sets the node kind.
func WithKind(kind models.NodeKind) func(*models.Node) {
	return func(n *models.Node) {
		n.Kind = kind
	}
}

// WithConfig sets the node configuration.
func WithConfig(config map[string]any) func(*models.Node) {
	return func(n *models.Node) {
		n.Config = config
	}
}

// WithLabel sets the node label.
func WithLabel(label string) func(*models.Node) {
	return func(n *models.Node) {
		n.Label = label
	}
}

// WithPosition sets the node position.
func WithPosition(x, y int) func(*models.Node) {
	return func(n *models.Node) {
		n.Position = models.Position{X: x, Y: y}
	}
}

// WithID sets the node ID.
func WithID(id string) func(*models.Node) {
	return func(n *models.Node) {
		n.ID = id
	}
}

// CreateTestEdge creates an edge between two nodes.
func CreateTestEdge(sourceID, targetID string) *models.Edge {
	return &models.Edge{
		ID:     uuid.New().String(),
		Source: sourceID,
		Target: targetID,
		Type:   "default",
	}
}

// CreateTestGraph creates an empty test graph.
func CreateTestGraph() *models.Graph {
	return &models.Graph{
		ID:          uuid.New().String(),
		Name:        "Test Graph",
		WorkspaceID: "test-workspace",
		Nodes:       []*models.Node{},
		Edges:       []*models.Edge{},
	}
}

// CreateTestGraphWithNodes creates a test graph with a small trigger
// to action chain wired up.
func CreateTestGraphWithNodes() *models.Graph {
	graph := CreateTestGraph()

	triggerNode := CreateTestNode(
		WithID("trigger-1"),
		WithKind(models.NodeKindTrigger),
		WithConfig(map[string]any{"schedule": "0 9 * * *"}),
	)
	actionNode := CreateTestNode(WithID("action-1"), WithLabel("Pause Action"))

	graph.Nodes = []*models.Node{triggerNode, actionNode}
	graph.Edges = []*models.Edge{
		{
			ID:     "edge-1",
			Source: "trigger-1",
			Target: "action-1",
			Type:   "default",
		},
	}

	return graph
}

// CreateTestQuestion creates a test Question with default values that
// can be overridden.
func CreateTestQuestion(overrides ...func(*models.Question)) *models.Question {
	question := &models.Question{
		ID:    uuid.New().String(),
		Type:  models.QuestionTypeText,
		Label: "Test Question",
	}

	for _, override := range overrides {
		override(question)
	}

	return question
}

// WithQuestionType sets the question type, seeding an option list for
// choice types.
func WithQuestionType(questionType models.QuestionType) func(*models.Question) {
	return func(q *models.Question) {
		q.Type = questionType
		if questionType.SupportsOptions() {
			q.Options = []string{"Option A", "Option B"}
		}
	}
}

// WithQuestionID sets the question ID.
func WithQuestionID(id string) func(*models.Question) {
	return func(q *models.Question) {
		q.ID = id
	}
}

// CreateTestLeadForm creates an empty test lead form.
func CreateTestLeadForm() *models.LeadForm {
	return &models.LeadForm{
		ID:          uuid.New().String(),
		Name:        "Test Lead Form",
		WorkspaceID: "test-workspace",
		Questions:   []*models.Question{},
	}
}
