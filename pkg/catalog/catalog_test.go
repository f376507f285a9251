package catalog

import (
	"io"
	"log/slog"
	"testing"

	"github.com/launchpadhq/launchpad/pkg/graph"
	"github.com/launchpadhq/launchpad/pkg/registry"
	"github.com/launchpadhq/launchpad/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_List(t *testing.T) {
	catalog := NewCatalog()

	all := catalog.List("")
	assert.Len(t, all, 4)
}

func TestCatalog_List_CategoryFilter(t *testing.T) {
	catalog := NewCatalog()

	optimization := catalog.List(CategoryOptimization)
	require.Len(t, optimization, 1)
	assert.Equal(t, "pause-underperformers", optimization[0].ID)
}

func TestCatalog_List_UnknownCategoryYieldsEmptySlice(t *testing.T) {
	catalog := NewCatalog()

	result := catalog.List("astrology")
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestCatalog_ByID(t *testing.T) {
	catalog := NewCatalog()

	template, err := catalog.ByID("budget-rebalancer")
	require.NoError(t, err)
	assert.Equal(t, CategoryBudget, template.Category)
}

func TestCatalog_ByID_NotFound(t *testing.T) {
	catalog := NewCatalog()

	template, err := catalog.ByID("ghost-template")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	assert.Nil(t, template)
}

func TestCatalog_Categories(t *testing.T) {
	catalog := NewCatalog()

	assert.Equal(t, []string{
		CategoryOptimization,
		CategoryBudget,
		CategoryGovernance,
		CategoryReporting,
	}, catalog.Categories())
}

func TestCatalog_Instantiate_RemapsIDs(t *testing.T) {
	catalog := NewCatalog()

	template, err := catalog.ByID("pause-underperformers")
	require.NoError(t, err)

	instance := catalog.Instantiate(template)

	require.Len(t, instance.Nodes, 4)
	require.Len(t, instance.Edges, 3)

	// No literal template id survives instantiation.
	ids := make(map[string]bool)
	for _, node := range instance.Nodes {
		assert.NotContains(t, []string{"trigger-1", "selector-1", "action-1", "notification-1"}, node.ID)
		ids[node.ID] = true
	}

	// Every edge endpoint resolves inside the instance.
	for _, edge := range instance.Edges {
		assert.True(t, ids[edge.Source], "edge source %s must resolve", edge.Source)
		assert.True(t, ids[edge.Target], "edge target %s must resolve", edge.Target)
	}
}

func TestCatalog_Instantiate_TwiceProducesDisjointIDs(t *testing.T) {
	catalog := NewCatalog()

	template, err := catalog.ByID("pause-underperformers")
	require.NoError(t, err)

	first := catalog.Instantiate(template)
	second := catalog.Instantiate(template)

	firstIDs := make(map[string]bool)
	for _, node := range first.Nodes {
		firstIDs[node.ID] = true
	}

	for _, node := range second.Nodes {
		assert.False(t, firstIDs[node.ID], "id %s reused across instantiations", node.ID)
	}
}

func TestCatalog_Instantiate_DoesNotMutateTemplate(t *testing.T) {
	catalog := NewCatalog()

	template, err := catalog.ByID("pause-underperformers")
	require.NoError(t, err)

	instance := catalog.Instantiate(template)
	instance.Nodes[0].Config["schedule"] = "*/5 * * * *"

	assert.Equal(t, "trigger-1", template.Nodes[0].ID)
	assert.NotEqual(t, "*/5 * * * *", template.Nodes[0].Config["schedule"])
}

func TestCatalog_Instantiate_MergeTwiceIntoOneGraph(t *testing.T) {
	catalog := NewCatalog()
	reg := registry.NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))
	editor := graph.NewEditor(testutil.CreateTestGraph(), reg)

	template, err := catalog.ByID("pause-underperformers")
	require.NoError(t, err)

	for range 2 {
		instance := catalog.Instantiate(template)
		require.NoError(t, editor.Merge(instance.Nodes, instance.Edges))
	}

	assert.Len(t, editor.Graph().Nodes, 8)
	assert.Len(t, editor.Graph().Edges, 6)
}

func TestBuiltinTemplates_NodeKindsAreValid(t *testing.T) {
	catalog := NewCatalog()

	for _, template := range catalog.List("") {
		for _, node := range template.Nodes {
			assert.True(t, node.Kind.Valid(), "template %s node %s has unknown kind %s", template.ID, node.ID, node.Kind)
		}
	}
}

func TestBuiltinTemplates_EdgesResolve(t *testing.T) {
	catalog := NewCatalog()

	for _, template := range catalog.List("") {
		ids := make(map[string]bool, len(template.Nodes))
		for _, node := range template.Nodes {
			ids[node.ID] = true
		}

		for _, edge := range template.Edges {
			assert.True(t, ids[edge.Source], "template %s edge %s has dangling source", template.ID, edge.ID)
			assert.True(t, ids[edge.Target], "template %s edge %s has dangling target", template.ID, edge.ID)
		}
	}
}

func TestBuiltinTemplates_BranchingEdgeTypes(t *testing.T) {
	catalog := NewCatalog()

	template, err := catalog.ByID("budget-rebalancer")
	require.NoError(t, err)

	types := make(map[string]bool)
	for _, edge := range template.Edges {
		types[edge.Type] = true
	}

	assert.True(t, types["condition-true"])
	assert.True(t, types["condition-false"])
}
