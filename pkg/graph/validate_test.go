package graph

import (
	"testing"

	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/launchpadhq/launchpad/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueCodes(issues []Issue) []string {
	codes := make([]string, 0, len(issues))
	for _, issue := range issues {
		codes = append(codes, issue.Code)
	}

	return codes
}

func TestValidate_CleanGraph(t *testing.T) {
	editor := newTestEditor(t)

	a, err := editor.AddNode(models.NodeKindTrigger, models.Position{})
	require.NoError(t, err)
	b, err := editor.AddNode(models.NodeKindAction, models.Position{})
	require.NoError(t, err)

	_, err = editor.AddEdge(a.ID, b.ID, "default")
	require.NoError(t, err)

	assert.Empty(t, editor.Validate())
}

func TestValidate_EmptyGraph(t *testing.T) {
	editor := newTestEditor(t)

	assert.Empty(t, editor.Validate())
}

func TestValidate_ReportsCycle(t *testing.T) {
	editor := newTestEditor(t)

	a, err := editor.AddNode(models.NodeKindSelector, models.Position{})
	require.NoError(t, err)
	b, err := editor.AddNode(models.NodeKindCondition, models.Position{})
	require.NoError(t, err)
	c, err := editor.AddNode(models.NodeKindAction, models.Position{})
	require.NoError(t, err)

	_, err = editor.AddEdge(a.ID, b.ID, "default")
	require.NoError(t, err)
	_, err = editor.AddEdge(b.ID, c.ID, "default")
	require.NoError(t, err)
	_, err = editor.AddEdge(c.ID, a.ID, "default")
	require.NoError(t, err)

	issues := editor.Validate()
	assert.Contains(t, issueCodes(issues), IssueCycle)
}

func TestValidate_CycleIsAdvisoryNotBlocking(t *testing.T) {
	editor := newTestEditor(t)

	a, err := editor.AddNode(models.NodeKindSelector, models.Position{})
	require.NoError(t, err)
	b, err := editor.AddNode(models.NodeKindAction, models.Position{})
	require.NoError(t, err)

	_, err = editor.AddEdge(a.ID, b.ID, "default")
	require.NoError(t, err)

	// Closing the loop is allowed; Validate flags it afterwards.
	_, err = editor.AddEdge(b.ID, a.ID, "default")
	require.NoError(t, err)

	assert.Contains(t, issueCodes(editor.Validate()), IssueCycle)
}

func TestValidate_ReportsOrphanNode(t *testing.T) {
	editor := newTestEditor(t)

	a, err := editor.AddNode(models.NodeKindTrigger, models.Position{})
	require.NoError(t, err)
	b, err := editor.AddNode(models.NodeKindAction, models.Position{})
	require.NoError(t, err)

	_, err = editor.AddEdge(a.ID, b.ID, "default")
	require.NoError(t, err)

	orphan, err := editor.AddNode(models.NodeKindNotification, models.Position{})
	require.NoError(t, err)

	issues := editor.Validate()
	require.Len(t, issues, 1)
	assert.Equal(t, IssueOrphanNode, issues[0].Code)
	assert.Equal(t, orphan.ID, issues[0].NodeID)
}

func TestValidate_ReportsDanglingEdgeFromStorage(t *testing.T) {
	// The mutation API cannot produce this state; simulate a graph that
	// was corrupted in storage.
	g := testutil.CreateTestGraphWithNodes()
	g.Edges = append(g.Edges, &models.Edge{ID: "bad-edge", Source: "trigger-1", Target: "vanished"})

	editor := NewEditor(g, nil)

	issues := editor.Validate()
	assert.Contains(t, issueCodes(issues), IssueDanglingEdge)
}
