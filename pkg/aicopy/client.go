package aicopy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/launchpadhq/launchpad/pkg/models"
)

const (
	generateCopyPath     = "/api/v1/generate-copy"
	generateLeadFormPath = "/api/v1/generate-lead-form"

	defaultTimeout = 30 * time.Second

	// maxResponseBytes bounds how much of a runaway model response we
	// read before giving up.
	maxResponseBytes = 1 << 20
)

// Client talks to the AI generation backend. Requests honor the passed
// context, so the editor can abort an in-flight fetch when the selected
// node changes.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a generation client against the given base URL.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger.With("module", "aicopy"),
	}
}

// CopyRequest asks for ad-copy variations for a product draft.
type CopyRequest struct {
	Product   string `json:"product"   validate:"required"`
	Workspace string `json:"workspace" validate:"required"`
	Draft     string `json:"draft"`
	Count     int    `json:"count"     validate:"min=1,max=10"`
}

// LeadFormRequest asks for generated lead-form questions.
type LeadFormRequest struct {
	Workspace string `json:"workspace" validate:"required"`
	Audience  string `json:"audience"`
	Prompt    string `json:"prompt"    validate:"required"`
}

// GenerateCopy requests creative variations and runs the tolerant
// importer over whatever comes back.
func (c *Client) GenerateCopy(ctx context.Context, req CopyRequest) ([]Variation, error) {
	if req.Count < 1 {
		req.Count = 3
	}

	body, err := c.post(ctx, generateCopyPath, req)
	if err != nil {
		return nil, err
	}

	variations, err := ExtractVariations(body)
	if err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "Parsed copy variations", "count", len(variations))

	return variations, nil
}

// GenerateLeadForm requests lead-form questions and normalizes the
// response through the same tolerant strategy chain.
func (c *Client) GenerateLeadForm(ctx context.Context, req LeadFormRequest) ([]*models.Question, error) {
	body, err := c.post(ctx, generateLeadFormPath, req)
	if err != nil {
		return nil, err
	}

	return NormalizeQuestions(body)
}

func (c *Client) post(ctx context.Context, path string, payload any) (string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")

	if c.apiKey != "" {
		request.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}

	defer func() {
		_ = response.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", ErrRequestFailed, response.StatusCode)
	}

	return string(body), nil
}
