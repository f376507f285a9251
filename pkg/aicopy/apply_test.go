package aicopy

import (
	"io"
	"log/slog"
	"testing"

	"github.com/launchpadhq/launchpad/pkg/graph"
	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/launchpadhq/launchpad/pkg/registry"
	"github.com/launchpadhq/launchpad/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplyEditor(t *testing.T) *graph.Editor {
	t.Helper()

	reg := registry.NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))

	return graph.NewEditor(testutil.CreateTestGraph(), reg)
}

func TestApplier_ApplyVariations(t *testing.T) {
	editor := newApplyEditor(t)

	node, err := editor.AddNode(models.NodeKindAI, models.Position{})
	require.NoError(t, err)

	ticket := NewTicket(editor, node.ID)

	err = NewApplier(editor).ApplyVariations(ticket, []Variation{
		{Headline: "Boost ROAS", Description: "Smarter budgets", CTA: "Start"},
		{Description: "Free text suggestion"},
	})
	require.NoError(t, err)

	stored, ok := editor.Graph().NodeByID(node.ID).Config["variations"].([]any)
	require.True(t, ok)
	require.Len(t, stored, 2)

	first, ok := stored[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Boost ROAS", first["headline"])
	assert.Equal(t, "Start", first["cta"])

	second, ok := stored[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Free text suggestion", second["description"])
	assert.NotContains(t, second, "headline")
}

func TestApplier_ApplyVariations_StaleResponseDiscarded(t *testing.T) {
	editor := newApplyEditor(t)

	node, err := editor.AddNode(models.NodeKindAI, models.Position{})
	require.NoError(t, err)

	ticket := NewTicket(editor, node.ID)

	// The user keeps editing while the request is in flight.
	label := "Renamed meanwhile"
	_, err = editor.UpdateNode(node.ID, graph.NodePatch{Label: &label})
	require.NoError(t, err)

	err = NewApplier(editor).ApplyVariations(ticket, []Variation{{Headline: "Late"}})
	require.Error(t, err)
	assert.True(t, IsStaleResponse(err))

	// The late response must not clobber the newer edit.
	current := editor.Graph().NodeByID(node.ID)
	assert.Equal(t, "Renamed meanwhile", current.Label)
	assert.NotContains(t, current.Config, "variations")
}

func TestApplier_ApplyVariations_NodeRemovedMeanwhile(t *testing.T) {
	editor := newApplyEditor(t)

	node, err := editor.AddNode(models.NodeKindAI, models.Position{})
	require.NoError(t, err)

	editor.RemoveNode(node.ID)

	// Stamp after the removal so the version matches; only the node is gone.
	ticket := NewTicket(editor, node.ID)

	err = NewApplier(editor).ApplyVariations(ticket, []Variation{{Headline: "Hi"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestApplier_ApplyVariations_ExtraFieldsStored(t *testing.T) {
	editor := newApplyEditor(t)

	node, err := editor.AddNode(models.NodeKindAI, models.Position{})
	require.NoError(t, err)

	ticket := NewTicket(editor, node.ID)

	err = NewApplier(editor).ApplyVariations(ticket, []Variation{
		{Headline: "Hi", Extra: map[string]any{"tone": "urgent"}},
	})
	require.NoError(t, err)

	stored := editor.Graph().NodeByID(node.ID).Config["variations"].([]any)
	entry := stored[0].(map[string]any)
	assert.Equal(t, "urgent", entry["tone"])
}
