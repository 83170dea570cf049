package embed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is an HTTP client for the embedding model service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// embedRequest is the request body for embedding.
type embedRequest struct {
	Texts []string `json:"texts"`
}

// embedResponse is the response from the embedding service.
type embedResponse struct {
	Embeddings [][]float64 `json:"embeddings"`
}

// HealthResponse is the response from the health check.
type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model,omitempty"`
}

// NewClient creates a new embedding service client. Timeout should be
// generous; model inference on a cold service can take a while.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Health checks if the embedding service is running.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to embedding service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("health check failed: %s", string(body))
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &health, nil
}

// EnsureRunning checks the service and returns a helpful error if it is
// not reachable.
func (c *Client) EnsureRunning(ctx context.Context) error {
	health, err := c.Health(ctx)
	if err == nil && health.Status == "ok" {
		return nil
	}

	return fmt.Errorf(
		"embedding service not running at %s\n\n"+
			"Start it with:\n"+
			"  cd embedder && uvicorn src.embedder.main:app --port 8731",
		c.baseURL,
	)
}

// Embed implements Embedder for a single text.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	vectors, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch implements Embedder. All texts go out in one request; the
// service returns vectors in input order.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	body, err := json.Marshal(embedRequest{Texts: texts})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/embed", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("embedding failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding service returned %d vectors for %d texts", len(result.Embeddings), len(texts))
	}

	return result.Embeddings, nil
}
