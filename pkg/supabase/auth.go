package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// AuthClient is the HTTP wrapper for the hosted auth service
// (GoTrue-style endpoints under /auth/v1).
type AuthClient struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewAuthClient creates a new auth client for the given project URL and key.
func NewAuthClient(baseURL, anonKey string) *AuthClient {
	return &AuthClient{
		baseURL:    baseURL,
		anonKey:    anonKey,
		httpClient: &http.Client{},
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a new account and returns the issued session.
func (c *AuthClient) SignUp(ctx context.Context, email, password string) (*Session, error) {
	return c.sessionRequest(ctx, "/auth/v1/signup", credentials{Email: email, Password: password})
}

// SignIn exchanges email+password for a session (password grant).
func (c *AuthClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	return c.sessionRequest(ctx, "/auth/v1/token?grant_type=password", credentials{Email: email, Password: password})
}

// SignOut revokes the given session token.
func (c *AuthClient) SignOut(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return fmt.Errorf("failed to build sign-out request: %w", err)
	}
	c.setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call auth sign-out API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("auth sign-out error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// GetUser resolves the account behind a bearer token.
func (c *AuthClient) GetUser(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build get-user request: %w", err)
	}
	c.setHeaders(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call auth user API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("auth user error %d: %s", resp.StatusCode, string(raw))
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode auth user response: %w", err)
	}
	return &user, nil
}

func (c *AuthClient) sessionRequest(ctx context.Context, path string, creds credentials) (*Session, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build auth request: %w", err)
	}
	c.setHeaders(req, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call auth API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("auth error %d: %s", resp.StatusCode, string(raw))
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode auth session response: %w", err)
	}
	return &session, nil
}

func (c *AuthClient) setHeaders(req *http.Request, token string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
}
