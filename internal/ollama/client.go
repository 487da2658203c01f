package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Default sampling parameters. Low temperature keeps classifications
// consistent across runs.
const (
	defaultTemperature = 0.1
	defaultTopP        = 0.9
	defaultTimeout     = 60 * time.Second
)

// Client talks to an Ollama server's generate endpoint.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL and model name.
// A non-positive timeout falls back to the 60s default.
func NewClient(baseURL, model string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("model cannot be empty")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:          10,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}, nil
}

// Model returns the model name this client generates with.
func (c *Client) Model() string {
	return c.model
}

// Generate sends a prompt to the generate endpoint and returns the response
// text. Network failures, timeouts, and non-2xx statuses are errors; an empty
// response body field is not.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload := GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: GenerateOptions{
			Temperature: defaultTemperature,
			TopP:        defaultTopP,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode generate request: %w", err)
	}

	url := c.baseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("generate request to %s returned status %s", url, res.Status)
	}

	var result GenerateResponse
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode generate response: %w", err)
	}

	return result.Response, nil
}
