package flow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/promptpilot/prompt-pilot-service/types"
)

const defaultTimeout = 90 * time.Second

// APIError is an error response from the service. RawText carries the
// upstream model's unparseable output when the server preserved one.
type APIError struct {
	StatusCode int
	Message    string
	RawText    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is the typed HTTP client for the prompt-pilot service.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// Clarify requests clarifying questions for the goal input.
func (c *Client) Clarify(ctx context.Context, input types.GoalInput) ([]string, error) {
	payload := struct {
		Input types.GoalInput `json:"input"`
	}{Input: input}

	var resp types.ClarifyResponse
	if err := c.postJSON(ctx, "/clarify", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

// Roadmap requests the full prompt roadmap for the goal input and the
// clarification answers.
func (c *Client) Roadmap(ctx context.Context, input types.GoalInput, answers []types.ClarificationAnswer) (*types.PromptRoadmapResponse, error) {
	payload := struct {
		Input          types.GoalInput             `json:"input"`
		Clarifications []types.ClarificationAnswer `json:"clarifications"`
	}{Input: input, Clarifications: answers}

	var resp types.PromptRoadmapResponse
	if err := c.postJSON(ctx, "/roadmap", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ShareSession uploads a completed session to the server-side cache and
// returns the id it was stored under.
func (c *Client) ShareSession(ctx context.Context, sess *types.Session) (string, error) {
	var resp types.SessionCreatedResponse
	if err := c.postJSON(ctx, "/session", sess, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr types.ErrorResponse
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error, RawText: apiErr.RawText}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("request failed (status %d)", resp.StatusCode)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
