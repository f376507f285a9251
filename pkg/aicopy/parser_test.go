package aicopy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Direct(t *testing.T) {
	doc, err := ParseJSON(`{"variations": []}`)
	require.NoError(t, err)

	root, ok := doc.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, root, "variations")
}

func TestParseJSON_CodeFence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "json fence",
			raw:  "```json\n{\"variations\":[{\"headline\":\"Hi\"}]}\n```",
		},
		{
			name: "bare fence",
			raw:  "```\n{\"variations\":[{\"headline\":\"Hi\"}]}\n```",
		},
		{
			name: "fence with prose around it",
			raw:  "Here you go:\n```json\n{\"variations\":[{\"headline\":\"Hi\"}]}\n```\nLet me know!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseJSON(tt.raw)
			require.NoError(t, err)

			root, ok := doc.(map[string]any)
			require.True(t, ok)
			assert.Contains(t, root, "variations")
		})
	}
}

func TestParseJSON_EmbeddedBlock(t *testing.T) {
	doc, err := ParseJSON(`Sure! Here is the JSON you asked for: {"headline": "Hi"} Hope it helps.`)
	require.NoError(t, err)

	root, ok := doc.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Hi", root["headline"])
}

func TestParseJSON_RepairsSingleQuotes(t *testing.T) {
	doc, err := ParseJSON(`{'headline': 'Hi'}`)
	require.NoError(t, err)

	root, ok := doc.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Hi", root["headline"])
}

func TestParseJSON_RepairsPythonLiterals(t *testing.T) {
	doc, err := ParseJSON(`{"active": True, "archived": False, "notes": None}`)
	require.NoError(t, err)

	root, ok := doc.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, root["active"])
	assert.Equal(t, false, root["archived"])
	assert.Nil(t, root["notes"])
}

func TestParseJSON_RepairsTrailingCommas(t *testing.T) {
	doc, err := ParseJSON(`{"items": ["a", "b",],}`)
	require.NoError(t, err)

	root, ok := doc.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, root["items"])
}

func TestParseJSON_PreservesApostrophesInValidJSON(t *testing.T) {
	doc, err := ParseJSON(`{"headline": "Don't miss out"}`)
	require.NoError(t, err)

	root, ok := doc.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Don't miss out", root["headline"])
}

func TestParseJSON_Blank(t *testing.T) {
	_, err := ParseJSON("   ")
	require.Error(t, err)
	assert.True(t, IsRemoteParse(err))
}

func TestExtractVariations_WrappedList(t *testing.T) {
	raw := `{"variations": [
		{"headline": "Boost your ROAS", "description": "Smarter budgets", "cta": "Start now"},
		{"headline": "Stop wasting spend", "description": "Pause losers automatically", "call_to_action": "Try free"}
	]}`

	variations, err := ExtractVariations(raw)
	require.NoError(t, err)
	require.Len(t, variations, 2)

	assert.Equal(t, "Boost your ROAS", variations[0].Headline)
	assert.Equal(t, "Start now", variations[0].CTA)
	assert.Equal(t, "Try free", variations[1].CTA, "call_to_action maps onto CTA")
}

func TestExtractVariations_TopLevelArray(t *testing.T) {
	variations, err := ExtractVariations(`[{"headline": "One"}, {"headline": "Two"}]`)
	require.NoError(t, err)
	require.Len(t, variations, 2)
	assert.Equal(t, "Two", variations[1].Headline)
}

func TestExtractVariations_SingleObject(t *testing.T) {
	variations, err := ExtractVariations(`{"headline": "Solo", "description": "Just one"}`)
	require.NoError(t, err)
	require.Len(t, variations, 1)
	assert.Equal(t, "Solo", variations[0].Headline)
}

func TestExtractVariations_UnknownFieldsRideInExtra(t *testing.T) {
	variations, err := ExtractVariations(`[{"headline": "Hi", "tone": "urgent", "score": 0.9}]`)
	require.NoError(t, err)
	require.Len(t, variations, 1)

	assert.Equal(t, "urgent", variations[0].Extra["tone"])
	assert.Equal(t, 0.9, variations[0].Extra["score"])
}

func TestExtractVariations_NestedRawField(t *testing.T) {
	raw := `{"raw": "{\"variations\": [{\"headline\": \"Nested\"}]}"}`

	variations, err := ExtractVariations(raw)
	require.NoError(t, err)
	require.Len(t, variations, 1)
	assert.Equal(t, "Nested", variations[0].Headline)
}

func TestExtractVariations_FreeTextFallback(t *testing.T) {
	raw := "Try leading with urgency: your audience responds to deadlines."

	variations, err := ExtractVariations(raw)
	require.NoError(t, err)
	require.Len(t, variations, 1)
	assert.Equal(t, raw, variations[0].Description)
}

func TestExtractVariations_Blank(t *testing.T) {
	_, err := ExtractVariations("")
	require.Error(t, err)
	assert.True(t, IsRemoteParse(err))
}

func TestNormalizeQuestions_Shapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "top-level array", raw: `[{"label": "Email", "type": "EMAIL"}]`},
		{name: "questions key", raw: `{"questions": [{"label": "Email", "type": "EMAIL"}]}`},
		{name: "data key", raw: `{"data": [{"label": "Email", "type": "EMAIL"}]}`},
		{name: "items key", raw: `{"items": [{"label": "Email", "type": "EMAIL"}]}`},
		{name: "form wrapper", raw: `{"form": {"questions": [{"label": "Email", "type": "EMAIL"}]}}`},
		{name: "lead_form wrapper", raw: `{"lead_form": {"questions": [{"label": "Email", "type": "EMAIL"}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := NormalizeQuestions(tt.raw)
			require.NoError(t, err)
			require.Len(t, questions, 1)
			assert.Equal(t, "Email", questions[0].Label)
		})
	}
}

func TestNormalizeQuestions_AltLabelKeys(t *testing.T) {
	questions, err := NormalizeQuestions(`[{"question": "Your role?"}, {"title": "Company"}]`)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "Your role?", questions[0].Label)
	assert.Equal(t, "Company", questions[1].Label)
}

func TestNormalizeQuestions_TypeNormalization(t *testing.T) {
	questions, err := NormalizeQuestions(`[
		{"label": "Email", "type": "email"},
		{"label": "Pick one", "type": "mcq_single", "options": ["A", "B"]},
		{"label": "Mystery", "type": "QUANTUM"}
	]`)
	require.NoError(t, err)
	require.Len(t, questions, 3)

	assert.Equal(t, "EMAIL", string(questions[0].Type))
	assert.Equal(t, []string{"A", "B"}, questions[1].Options)
	assert.Equal(t, "TEXT", string(questions[2].Type), "unknown types fall back to TEXT")
}

func TestNormalizeQuestions_GeneratesMissingIDs(t *testing.T) {
	questions, err := NormalizeQuestions(`[{"label": "Email"}, {"label": "Phone"}]`)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	assert.NotEmpty(t, questions[0].ID)
	assert.NotEmpty(t, questions[1].ID)
	assert.NotEqual(t, questions[0].ID, questions[1].ID)
}

func TestNormalizeQuestions_RemapsEchoedIDs(t *testing.T) {
	questions, err := NormalizeQuestions(`[
		{"id": "q-dup", "label": "Email"},
		{"id": "q-dup", "label": "Phone"}
	]`)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	assert.NotEqual(t, "q-dup", questions[0].ID)
	assert.NotEqual(t, "q-dup", questions[1].ID)
	assert.NotEqual(t, questions[0].ID, questions[1].ID)
}

func TestNormalizeQuestions_SkipsLabellessEntries(t *testing.T) {
	questions, err := NormalizeQuestions(`[{"type": "EMAIL"}, {"label": "Kept"}]`)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Kept", questions[0].Label)
}

func TestNormalizeQuestions_NothingUsable(t *testing.T) {
	_, err := NormalizeQuestions(`{"message": "I could not generate a form"}`)
	require.Error(t, err)
	assert.True(t, IsRemoteParse(err))
}
