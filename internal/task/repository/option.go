package repository

import "time"

// InsertTaskOptions holds the parameters for persisting a new task.
type InsertTaskOptions struct {
	UserID       string
	Description  string
	Category     string   // Enrichment category label (may be empty)
	TimeEstimate string   // Free-text duration like "1-2 hours"
	Summary      string   // Action-plan text
	Tags         []string // Deduplicated before insert
}

// ScheduleOptions holds the schedule window for an update. Nil fields
// clear the corresponding column.
type ScheduleOptions struct {
	StartDate *time.Time
	EndDate   *time.Time
}
