package task

import (
	"time"

	"taskboard/internal/model"
)

// SubmitInput is the input for submitting a new task description.
// UserID and the auth token live in model.Scope, not here.
type SubmitInput struct {
	Description string // Free-text task description from the user
}

// SortKey selects the ordering of a listed collection.
type SortKey string

const (
	SortCreated  SortKey = "created"  // newest first (default)
	SortCategory SortKey = "category" // category name ascending
	SortStatus   SortKey = "status"   // schedule-status urgency ascending
)

// ListInput is the input for listing a user's tasks.
type ListInput struct {
	Search string   `json:"search"` // Case-insensitive substring filter
	Tags   []string `json:"tags"`   // Match tasks carrying any of these tags
	Sort   SortKey  `json:"sort"`   // Defaults to SortCreated
}

// ListOutput is the filtered, sorted view of a user's collection.
type ListOutput struct {
	Tasks []model.Task
	Total int // Collection size before filtering
}

// UpdateStatusInput toggles the completion flag of one task.
type UpdateStatusInput struct {
	ID     string
	IsDone bool
}

// UpdateTagsInput replaces the tag set of one task. Tags are deduplicated
// case-insensitively with first-occurrence order preserved.
type UpdateTagsInput struct {
	ID   string
	Tags []string
}

// UpdateScheduleInput sets or clears the schedule window of one task.
// An end date requires a start date and must not precede it.
type UpdateScheduleInput struct {
	ID        string
	StartDate *time.Time
	EndDate   *time.Time
}

// StatsOutput summarizes a collection by schedule status.
type StatsOutput struct {
	Total       int `json:"total"`
	Scheduled   int `json:"scheduled"`
	Unscheduled int `json:"unscheduled"`
	InProgress  int `json:"in_progress"`
	Overdue     int `json:"overdue"`
	Completed   int `json:"completed"`
}
