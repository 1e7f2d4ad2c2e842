package supabase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// FlexBool is a bool that tolerates the store's loose representations.
// The hosted store historically persisted is_done as text, so every row
// crossing this boundary goes through FlexBool exactly once: true and
// "true" decode to true, anything else to false. A single odd row must
// never fail the whole collection decode.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler for FlexBool.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true", `"true"`:
		*b = true
	default:
		*b = false
	}
	return nil
}

// Bool returns the normalized strict boolean.
func (b FlexBool) Bool() bool { return bool(b) }

// FlexID is an identifier that decodes from either a JSON number or string.
type FlexID string

// UnmarshalJSON implements json.Unmarshaler for FlexID.
func (id *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("cannot decode %s as id", string(data))
	}
	*id = FlexID(n.String())
	return nil
}

// MarshalJSON implements json.Marshaler for FlexID. Numeric ids round-trip
// as numbers so updates address the same row the store handed out.
func (id FlexID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return json.Marshal(n)
	}
	return json.Marshal(string(id))
}

// TaskRow is the tasks-table row as the store (and the enrichment webhook,
// which echoes store rows) serializes it.
type TaskRow struct {
	ID           FlexID     `json:"id"`
	UserID       string     `json:"user_id"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	TimeEstimate string     `json:"time_estimate"`
	Summary      string     `json:"summary"`
	IsDone       FlexBool   `json:"is_done"`
	Tags         []string   `json:"tags"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	CreatedAt    time.Time  `json:"created_at"`
}

// InsertTaskRow is the payload for inserting a new tasks-table row.
// The store assigns id and created_at.
type InsertTaskRow struct {
	UserID       string   `json:"user_id"`
	Description  string   `json:"description"`
	Category     string   `json:"category,omitempty"`
	TimeEstimate string   `json:"time_estimate,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	IsDone       bool     `json:"is_done"`
	Tags         []string `json:"tags,omitempty"`
}

// User is the authenticated account as the auth service reports it.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is an issued auth session including the bearer token.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}
