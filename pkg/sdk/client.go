package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps calls to the summarizer backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// GenerateSummary creates a new summary from a transcript and instruction
func (c *Client) GenerateSummary(ctx context.Context, req *GenerateSummaryRequest) (*GenerateSummaryResponse, error) {
	path := "/api/v1/summary/generate"

	var out GenerateSummaryResponse
	if err := c.doJSON(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}

	if out.ID == "" {
		return nil, fmt.Errorf("no id returned")
	}

	return &out, nil
}

// EditSummary overwrites the summary text of an existing record
func (c *Client) EditSummary(ctx context.Context, id, summaryText string) (*EditSummaryResponse, error) {
	path := fmt.Sprintf("/api/v1/summary/edit/%s", id)

	var out EditSummaryResponse
	if err := c.doJSON(ctx, http.MethodPut, path, &EditSummaryRequest{Summary: summaryText}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ShareSummary emails an existing summary to the given recipients
func (c *Client) ShareSummary(ctx context.Context, id string, recipients []string) (*MessageResponse, error) {
	path := fmt.Sprintf("/api/v1/summary/share/%s", id)

	var out MessageResponse
	if err := c.doJSON(ctx, http.MethodPost, path, &ShareSummaryRequest{Recipients: recipients}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ListSummaries retrieves every summary, newest first
func (c *Client) ListSummaries(ctx context.Context) ([]Summary, error) {
	path := "/api/v1/summary/summaries"

	var out []Summary
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// DeleteSummary permanently removes an existing summary
func (c *Client) DeleteSummary(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/v1/summary/deleteSummaries/%s", id)

	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// doJSON is a helper to perform JSON requests to the backend
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	// Create request body if input is provided
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	// Create the request
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	// Perform the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// On error, surface the backend's error message when one is present
		b, _ := io.ReadAll(resp.Body)

		var apiErr ErrorResponse
		if json.Unmarshal(b, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("backend '%s %s' failed: %d: %s", method, path, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("backend '%s %s' failed: %d: %s", method, path, resp.StatusCode, string(b))
	}

	// If no output expected, return early
	if out == nil {
		return nil
	}

	// Decode the response body into the output struct
	dec := json.NewDecoder(resp.Body)
	return dec.Decode(out)
}
