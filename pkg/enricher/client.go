package enricher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"taskboard/pkg/supabase"
)

// Client is the HTTP wrapper for the external enrichment webhook: it
// submits a raw task description and resolves the service's variable
// response shape into a tagged Outcome.
type Client struct {
	webhookURL string
	groqAPIKey string
	groqModel  string
	httpClient *http.Client
}

// NewClient creates a new enrichment webhook client. groqAPIKey and
// groqModel are optional and forwarded verbatim in the request body.
func NewClient(webhookURL, groqAPIKey, groqModel string) *Client {
	return &Client{
		webhookURL: webhookURL,
		groqAPIKey: groqAPIKey,
		groqModel:  groqModel,
		httpClient: &http.Client{},
	}
}

// SetWebhookURL overrides the webhook URL for testing purposes.
func (c *Client) SetWebhookURL(url string) {
	c.webhookURL = url
}

// Process submits a description for enrichment and resolves the response.
// Transport failures return ErrUnreachable; HTTP failures map to the typed
// errors in errors.go.
func (c *Client) Process(ctx context.Context, req ProcessRequest) (Outcome, error) {
	body, err := json.Marshal(submitPayload{
		Description: req.Description,
		UserID:      req.UserID,
		GroqAPIKey:  c.groqAPIKey,
		GroqModel:   c.groqModel,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to build webhook request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(req.Token) != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", req.Token))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Outcome{}, statusError(resp.StatusCode, raw)
	}

	return resolve(raw)
}

// statusError maps a non-2xx webhook status to a typed error with a
// user-actionable message.
func statusError(status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuthFailed
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, strings.TrimSpace(string(body)))
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d: %s", ErrStatus, status, strings.TrimSpace(string(body)))
	}
}

// resolve classifies a 2xx response body into one of the Outcome variants.
// The order matters: a direct record wins over a wrapped one, and anything
// else that parsed is ambiguous rather than an error.
func resolve(raw []byte) (Outcome, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Outcome{}, ErrEmptyResponse
	}

	if !json.Valid(raw) {
		return Outcome{}, fmt.Errorf("%w: %s", ErrInvalidResponse, truncate(raw, 200))
	}

	// Arrays, strings and other non-object bodies are valid workflow
	// replies that simply carry no record. The row may already exist
	// server-side, so treat them as ambiguous rather than invalid.
	var p probe
	if err := json.Unmarshal(raw, &p); err != nil {
		return Outcome{Kind: OutcomeAmbiguous}, nil
	}

	if p.ID != "" && p.UserID != "" {
		var task supabase.TaskRow
		if err := json.Unmarshal(raw, &task); err != nil {
			return Outcome{}, fmt.Errorf("%w: %s", ErrInvalidResponse, truncate(raw, 200))
		}
		return Outcome{Kind: OutcomeTask, Task: &task}, nil
	}

	if p.Success && p.Task != nil {
		return Outcome{Kind: OutcomeWrapped, Task: p.Task}, nil
	}

	return Outcome{Kind: OutcomeAmbiguous}, nil
}

func truncate(raw []byte, n int) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
