package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls a hosted text2text-generation endpoint. The wire format is
// the HuggingFace Inference API: a JSON body with "inputs" and "parameters",
// answered by a list of {"generated_text": ...} objects.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiToken   string
}

// Params controls a single generation request.
type Params struct {
	MaxLength int  `json:"max_length,omitempty"`
	DoSample  bool `json:"do_sample"`
}

type request struct {
	Inputs     string `json:"inputs"`
	Parameters Params `json:"parameters"`
}

type generation struct {
	GeneratedText string `json:"generated_text"`
}

// NewClient creates a client for the given endpoint URL. The API token may
// be empty for unauthenticated endpoints.
func NewClient(endpoint, apiToken string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		apiToken:   apiToken,
	}
}

// Generate sends one input through the model and returns the generated text.
// The call is synchronous and is not retried; the caller decides whether a
// failure is worth a resubmit.
func (c *Client) Generate(ctx context.Context, input string, params Params) (string, error) {
	body, err := json.Marshal(request{Inputs: input, Parameters: params})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call inference endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read a little of the body for diagnostics; the API returns a
		// JSON error object on failure.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("inference endpoint returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var generations []generation
	if err := json.NewDecoder(resp.Body).Decode(&generations); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(generations) == 0 {
		return "", fmt.Errorf("inference endpoint returned no generations")
	}

	return generations[0].GeneratedText, nil
}
