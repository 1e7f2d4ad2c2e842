package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client is the HTTP wrapper for the hosted store's REST query API
// (PostgREST dialect): select with filters, insert returning the row,
// partial update returning the row.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewClient creates a new store client for the given project URL and key.
func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		anonKey:    anonKey,
		httpClient: &http.Client{},
	}
}

// ListTasks fetches all task rows owned by userID, newest first.
// token is the caller's bearer token; the anon key is used when empty.
func (c *Client) ListTasks(ctx context.Context, token, userID string) ([]TaskRow, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/tasks?select=*&user_id=eq.%s&order=created_at.desc",
		c.baseURL, url.QueryEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list tasks request: %w", err)
	}
	c.setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call store list API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("store list error %d: %s", resp.StatusCode, string(raw))
	}

	var rows []TaskRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode store list response: %w", err)
	}
	return rows, nil
}

// InsertTask inserts one row and returns it as the store persisted it.
func (c *Client) InsertTask(ctx context.Context, token string, row InsertTaskRow) (*TaskRow, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/tasks", c.baseURL)

	body, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal insert payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build insert task request: %w", err)
	}
	c.setHeaders(req, token)
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call store insert API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("store insert error %d: %s", resp.StatusCode, string(raw))
	}

	return decodeSingleRow(resp.Body)
}

// UpdateTask applies a partial field set to the row with the given id and
// returns the updated row. Returns nil row when no row matched.
func (c *Client) UpdateTask(ctx context.Context, token, id string, patch map[string]any) (*TaskRow, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/tasks?id=eq.%s", c.baseURL, url.QueryEscape(id))

	body, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal update payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build update task request: %w", err)
	}
	c.setHeaders(req, token)
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call store update API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("store update error %d: %s", resp.StatusCode, string(raw))
	}

	return decodeSingleRow(resp.Body)
}

// decodeSingleRow reads a representation response. The query API returns an
// array even for single-row writes.
func decodeSingleRow(r io.Reader) (*TaskRow, error) {
	var rows []TaskRow
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode store row response: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	if token == "" {
		token = c.anonKey
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
}
