package aicopy

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_GenerateCopy(t *testing.T) {
	var captured CopyRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, generateCopyPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte("```json\n{\"variations\":[{\"headline\":\"Hi\"}]}\n```"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", newTestLogger())

	variations, err := client.GenerateCopy(t.Context(), CopyRequest{
		Product:   "Acme CRM",
		Workspace: "ws-1",
		Draft:     "Try our CRM",
	})
	require.NoError(t, err)
	require.Len(t, variations, 1)

	assert.Equal(t, "Hi", variations[0].Headline)
	assert.Equal(t, 3, captured.Count, "unset count defaults to 3")
}

func TestClient_GenerateCopy_FreeTextResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Lead with the discount, your audience is price sensitive."))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", newTestLogger())

	variations, err := client.GenerateCopy(t.Context(), CopyRequest{Product: "Acme", Workspace: "ws-1", Count: 1})
	require.NoError(t, err)
	require.Len(t, variations, 1)
	assert.Contains(t, variations[0].Description, "price sensitive")
}

func TestClient_GenerateCopy_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", newTestLogger())

	_, err := client.GenerateCopy(t.Context(), CopyRequest{Product: "Acme", Workspace: "ws-1", Count: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestClient_GenerateLeadForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, generateLeadFormPath, r.URL.Path)

		_, _ = w.Write([]byte(`{"questions": [
			{"label": "Work email", "type": "email", "required": true},
			{"label": "Team size", "type": "dropdown", "options": ["1-10", "11-50", "50+"]}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", newTestLogger())

	questions, err := client.GenerateLeadForm(t.Context(), LeadFormRequest{
		Workspace: "ws-1",
		Prompt:    "B2B SaaS demo request",
	})
	require.NoError(t, err)
	require.Len(t, questions, 2)

	assert.Equal(t, "EMAIL", string(questions[0].Type))
	assert.True(t, questions[0].Required)
	assert.Equal(t, []string{"1-10", "11-50", "50+"}, questions[1].Options)
}

func TestClient_GenerateLeadForm_UnusableResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("I'm sorry, I cannot help with that."))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", newTestLogger())

	_, err := client.GenerateLeadForm(t.Context(), LeadFormRequest{Workspace: "ws-1", Prompt: "x"})
	require.Error(t, err)
	assert.True(t, IsRemoteParse(err))
}
