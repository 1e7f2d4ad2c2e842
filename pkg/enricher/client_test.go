package enricher_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/pkg/enricher"
)

func newClient(url string) *enricher.Client {
	return enricher.NewClient(url, "groq-key", "llama-3")
}

func TestProcessDirectRecord(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer jwt-token" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}

		var payload map[string]any
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["description"] != "Buy milk" || payload["user_id"] != "user-1" {
			t.Errorf("unexpected payload: %v", payload)
		}
		if payload["groqApiKey"] != "groq-key" || payload["groqModel"] != "llama-3" {
			t.Errorf("model credentials must be forwarded: %v", payload)
		}

		fmt.Fprint(w, `{"id": 5, "user_id": "user-1", "description": "Buy milk", "category": "Home", "is_done": "false", "created_at": "2024-05-01T10:00:00Z"}`)
	}))
	defer ts.Close()

	outcome, err := newClient(ts.URL).Process(context.Background(), enricher.ProcessRequest{
		Description: "Buy milk",
		UserID:      "user-1",
		Token:       "jwt-token",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome.Kind != enricher.OutcomeTask {
		t.Fatalf("expected direct task outcome, got %v", outcome.Kind)
	}
	if outcome.Task.ID != "5" || outcome.Task.IsDone.Bool() {
		t.Errorf("unexpected task: %+v", outcome.Task)
	}
}

func TestProcessWrappedRecord(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success": true, "task": {"id": 5, "user_id": "user-1", "description": "Buy milk", "is_done": "false", "created_at": "2024-05-01T10:00:00Z"}}`)
	}))
	defer ts.Close()

	outcome, err := newClient(ts.URL).Process(context.Background(), enricher.ProcessRequest{
		Description: "Buy milk", UserID: "user-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome.Kind != enricher.OutcomeWrapped {
		t.Fatalf("expected wrapped outcome, got %v", outcome.Kind)
	}
	if outcome.Task.ID != "5" || outcome.Task.IsDone.Bool() {
		t.Errorf("unexpected task: %+v", outcome.Task)
	}
}

func TestProcessAmbiguousSuccess(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "Acknowledgement only", body: `{"status": "queued"}`},
		{name: "Success flag without task", body: `{"success": true}`},
		{name: "Record missing user", body: `{"id": 5, "description": "x"}`},
		{name: "Array body", body: `[{"id": 5, "user_id": "user-1", "description": "x"}]`},
		{name: "Bare string body", body: `"workflow finished"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()

			outcome, err := newClient(ts.URL).Process(context.Background(), enricher.ProcessRequest{
				Description: "x", UserID: "user-1",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if outcome.Kind != enricher.OutcomeAmbiguous {
				t.Errorf("expected ambiguous outcome, got %v", outcome.Kind)
			}
			if outcome.Task != nil {
				t.Errorf("ambiguous outcome must carry no task")
			}
		})
	}
}

func TestProcessStatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusUnauthorized, want: enricher.ErrAuthFailed},
		{status: http.StatusForbidden, want: enricher.ErrAuthFailed},
		{status: http.StatusBadRequest, want: enricher.ErrBadRequest},
		{status: http.StatusNotFound, want: enricher.ErrNotFound},
		{status: http.StatusBadGateway, want: enricher.ErrStatus},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, "nope")
			}))
			defer ts.Close()

			_, err := newClient(ts.URL).Process(context.Background(), enricher.ProcessRequest{
				Description: "x", UserID: "user-1",
			})
			if !errors.Is(err, tt.want) {
				t.Errorf("status %d: got %v, want %v", tt.status, err, tt.want)
			}
		})
	}
}

func TestProcessMalformedBody(t *testing.T) {
	t.Run("Empty body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer ts.Close()

		_, err := newClient(ts.URL).Process(context.Background(), enricher.ProcessRequest{Description: "x", UserID: "u"})
		if !errors.Is(err, enricher.ErrEmptyResponse) {
			t.Errorf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("Non-JSON body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "<html>oops</html>")
		}))
		defer ts.Close()

		_, err := newClient(ts.URL).Process(context.Background(), enricher.ProcessRequest{Description: "x", UserID: "u"})
		if !errors.Is(err, enricher.ErrInvalidResponse) {
			t.Errorf("expected ErrInvalidResponse, got %v", err)
		}
	})
}

func TestProcessUnreachable(t *testing.T) {
	client := newClient("http://127.0.0.1:1")

	_, err := client.Process(context.Background(), enricher.ProcessRequest{Description: "x", UserID: "u"})
	if !errors.Is(err, enricher.ErrUnreachable) {
		t.Errorf("expected ErrUnreachable, got %v", err)
	}
}

func TestIsFallbackEligible(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{err: enricher.ErrUnreachable, want: true},
		{err: enricher.ErrEmptyResponse, want: true},
		{err: enricher.ErrInvalidResponse, want: true},
		{err: enricher.ErrNotFound, want: true},
		{err: enricher.ErrStatus, want: true},
		{err: enricher.ErrAuthFailed, want: false},
		{err: enricher.ErrBadRequest, want: false},
		{err: errors.New("unrelated"), want: false},
	}

	for _, tt := range tests {
		if got := enricher.IsFallbackEligible(tt.err); got != tt.want {
			t.Errorf("IsFallbackEligible(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
