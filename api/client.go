// Package api is the Go client for the bizclock rest facade.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	default_address = "http://127.0.0.1:8080"
)

type Client struct {
	client   *http.Client
	Endpoint string
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = default_address
	}
	return &Client{
		client:   http.DefaultClient,
		Endpoint: endpoint,
	}
}

// ToolInfo mirrors one catalog entry.
type ToolInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// ToolResult mirrors the server's tool call answer.
type ToolResult struct {
	Text    string          `json:"text"`
	Data    json.RawMessage `json:"data,omitempty"`
	IsError bool            `json:"isError,omitempty"`
}

// Tools fetches the tool catalog.
func (c *Client) Tools(ctx context.Context) ([]ToolInfo, error) {
	urlString := fmt.Sprintf("%s/v1/tools", c.Endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlString, nil)
	if err != nil {
		return nil, fmt.Errorf("client failed create request: %v", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error: status %d, body: %s", resp.StatusCode, string(b))
	}

	var out struct {
		Tools []ToolInfo `json:"tools"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Tools, nil
}

// Call invokes one tool by name with the given arguments.
func (c *Client) Call(ctx context.Context, name string, args map[string]any) (*ToolResult, error) {
	urlString := fmt.Sprintf("%s/v1/tools/%s", c.Endpoint, name)

	if args == nil {
		args = map[string]any{}
	}
	b, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, urlString, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("client failed create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error: status %d, body: %s", resp.StatusCode, string(b))
	}

	var out ToolResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
