package enricher

import "taskboard/pkg/supabase"

// ProcessRequest is the submission sent to the enrichment webhook.
type ProcessRequest struct {
	Description string
	UserID      string
	Token       string // bearer token set as Authorization header when present
}

// OutcomeKind tags the variants of a webhook response.
type OutcomeKind int

const (
	// OutcomeTask: the response body was a complete task record.
	OutcomeTask OutcomeKind = iota
	// OutcomeWrapped: the record arrived inside a {success, task} envelope.
	OutcomeWrapped
	// OutcomeAmbiguous: the call succeeded but carried no usable task
	// payload. The caller should re-fetch from the store after a settle
	// delay, since the webhook may persist asynchronously.
	OutcomeAmbiguous
)

// Outcome is the resolved webhook response. Task is set for OutcomeTask
// and OutcomeWrapped, nil for OutcomeAmbiguous.
type Outcome struct {
	Kind OutcomeKind
	Task *supabase.TaskRow
}

// submitPayload is the webhook request body. The upstream model key/model
// pair rides along so the workflow can call its language model.
type submitPayload struct {
	Description string `json:"description"`
	UserID      string `json:"user_id"`
	GroqAPIKey  string `json:"groqApiKey,omitempty"`
	GroqModel   string `json:"groqModel,omitempty"`
}

// probe sniffs the response shape before committing to a variant.
type probe struct {
	ID      supabase.FlexID   `json:"id"`
	UserID  string            `json:"user_id"`
	Success bool              `json:"success"`
	Task    *supabase.TaskRow `json:"task"`
}
