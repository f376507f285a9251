package file

import (
	"testing"
	"time"

	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/launchpadhq/launchpad/pkg/persistence"
	"github.com/launchpadhq/launchpad/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphRepository_SaveAndGetByID(t *testing.T) {
	p := NewPersistence(t.TempDir())

	graph := testutil.CreateTestGraphWithNodes()
	graph.Version = 7

	require.NoError(t, p.GraphRepository().Save(t.Context(), graph))

	loaded, err := p.GraphRepository().GetByID(t.Context(), graph.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, graph.ID, loaded.ID)
	assert.Equal(t, int64(7), loaded.Version)
	require.Len(t, loaded.Nodes, 2)
	assert.Equal(t, "trigger-1", loaded.Nodes[0].ID)
	require.Len(t, loaded.Edges, 1)
}

func TestGraphRepository_GetByID_AbsentReturnsNilNil(t *testing.T) {
	p := NewPersistence(t.TempDir())

	loaded, err := p.GraphRepository().GetByID(t.Context(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestGraphRepository_Delete(t *testing.T) {
	p := NewPersistence(t.TempDir())

	graph := testutil.CreateTestGraph()
	require.NoError(t, p.GraphRepository().Save(t.Context(), graph))
	require.NoError(t, p.GraphRepository().Delete(t.Context(), graph.ID))

	loaded, err := p.GraphRepository().GetByID(t.Context(), graph.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting again is a no-op.
	assert.NoError(t, p.GraphRepository().Delete(t.Context(), graph.ID))
}

func TestGraphRepository_ListGraphs(t *testing.T) {
	p := NewPersistence(t.TempDir())

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	names := []string{"Alpha", "Bravo", "Charlie"}
	for i, name := range names {
		graph := testutil.CreateTestGraph()
		graph.Name = name
		graph.CreatedAt = base.Add(time.Duration(i) * time.Hour)

		require.NoError(t, p.GraphRepository().Save(t.Context(), graph))
	}

	result, err := p.GraphRepository().ListGraphs(t.Context(), persistence.ListGraphsOptions{
		SortBy:    "created_at",
		SortOrder: "desc",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.TotalCount)
	assert.False(t, result.HasNextPage)
	require.Len(t, result.Graphs, 3)
	assert.Equal(t, "Charlie", result.Graphs[0].Name, "newest first")
}

func TestGraphRepository_ListGraphs_Pagination(t *testing.T) {
	p := NewPersistence(t.TempDir())

	for range 5 {
		require.NoError(t, p.GraphRepository().Save(t.Context(), testutil.CreateTestGraph()))
	}

	result, err := p.GraphRepository().ListGraphs(t.Context(), persistence.ListGraphsOptions{
		Limit:  2,
		Offset: 0,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.TotalCount)
	assert.Len(t, result.Graphs, 2)
	assert.True(t, result.HasNextPage)

	last, err := p.GraphRepository().ListGraphs(t.Context(), persistence.ListGraphsOptions{
		Limit:  2,
		Offset: 4,
	})
	require.NoError(t, err)
	assert.Len(t, last.Graphs, 1)
	assert.False(t, last.HasNextPage)
}

func TestGraphRepository_ListGraphs_WorkspaceFilter(t *testing.T) {
	p := NewPersistence(t.TempDir())

	mine := testutil.CreateTestGraph()
	mine.WorkspaceID = "ws-mine"
	require.NoError(t, p.GraphRepository().Save(t.Context(), mine))

	other := testutil.CreateTestGraph()
	other.WorkspaceID = "ws-other"
	require.NoError(t, p.GraphRepository().Save(t.Context(), other))

	result, err := p.GraphRepository().ListGraphs(t.Context(), persistence.ListGraphsOptions{
		WorkspaceID: "ws-mine",
	})
	require.NoError(t, err)
	require.Len(t, result.Graphs, 1)
	assert.Equal(t, mine.ID, result.Graphs[0].ID)
}

func TestGraphRepository_ListGraphs_InvalidSortField(t *testing.T) {
	p := NewPersistence(t.TempDir())

	_, err := p.GraphRepository().ListGraphs(t.Context(), persistence.ListGraphsOptions{
		SortBy: "password",
	})
	require.Error(t, err)
	assert.True(t, persistence.IsInvalidSortField(err))
}

func TestGraphRepository_ListGraphs_EmptyDir(t *testing.T) {
	p := NewPersistence(t.TempDir())

	result, err := p.GraphRepository().ListGraphs(t.Context(), persistence.ListGraphsOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.TotalCount)
	assert.Empty(t, result.Graphs)
}

func TestLeadFormRepository_RoundTrip(t *testing.T) {
	p := NewPersistence(t.TempDir())

	form := testutil.CreateTestLeadForm()
	form.Questions = []*models.Question{
		testutil.CreateTestQuestion(testutil.WithQuestionID("q-1")),
		testutil.CreateTestQuestion(
			testutil.WithQuestionID("q-2"),
			testutil.WithQuestionType(models.QuestionTypeDropdown),
		),
	}
	form.Questions[1].ConditionalOn = &models.ConditionalRule{QuestionID: "q-1", Value: "yes"}

	require.NoError(t, p.LeadFormRepository().Save(t.Context(), form))

	loaded, err := p.LeadFormRepository().GetByID(t.Context(), form.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	require.Len(t, loaded.Questions, 2)
	assert.Equal(t, []string{"Option A", "Option B"}, loaded.Questions[1].Options)
	require.NotNil(t, loaded.Questions[1].ConditionalOn)
	assert.Equal(t, "q-1", loaded.Questions[1].ConditionalOn.QuestionID)
}

func TestLeadFormRepository_ListForms_WorkspaceFilter(t *testing.T) {
	p := NewPersistence(t.TempDir())

	mine := testutil.CreateTestLeadForm()
	mine.WorkspaceID = "ws-mine"
	require.NoError(t, p.LeadFormRepository().Save(t.Context(), mine))

	other := testutil.CreateTestLeadForm()
	other.WorkspaceID = "ws-other"
	require.NoError(t, p.LeadFormRepository().Save(t.Context(), other))

	forms, err := p.LeadFormRepository().ListForms(t.Context(), "ws-mine")
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, mine.ID, forms[0].ID)

	all, err := p.LeadFormRepository().ListForms(t.Context(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPersistence_HealthCheck(t *testing.T) {
	p := NewPersistence(t.TempDir())
	assert.NoError(t, p.HealthCheck(t.Context()))

	missing := NewPersistence("/nonexistent/launchpad-test-dir")
	assert.Error(t, missing.HealthCheck(t.Context()))
}
