package demo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"interviewhub/models"
)

const (
	evaluatePath = "/api/evaluate"

	CodeNetworkError = "NETWORK_ERROR"
)

// Result is whatever the evaluation endpoint answered with.
type Result struct {
	StatusCode int
	Response   models.EvaluationResponse
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient targets the service at baseURL. A nil httpClient gets a client
// whose timeout covers the server's own evaluation budget.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 35 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Evaluate posts the sample payload. Transport and decoding failures are folded
// into a NETWORK_ERROR result so callers always have something to render.
func (c *Client) Evaluate(ctx context.Context) *Result {
	return c.EvaluateRequest(ctx, SamplePayload())
}

func (c *Client) EvaluateRequest(ctx context.Context, payload models.EvaluationRequest) *Result {
	result, err := c.post(ctx, payload)
	if err != nil {
		return &Result{
			Response: models.EvaluationResponse{
				Success: false,
				Error: &models.ErrorBody{
					Code:    CodeNetworkError,
					Message: "Failed to connect to API",
					Details: err.Error(),
				},
			},
		}
	}
	return result
}

func (c *Client) post(ctx context.Context, payload models.EvaluationRequest) (*Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+evaluatePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	result := &Result{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(data, &result.Response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result, nil
}
