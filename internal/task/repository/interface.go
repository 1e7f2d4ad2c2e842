package repository

import (
	"context"

	"taskboard/internal/model"
)

// TaskRepository is the interface for task data access against the hosted
// store. Every call carries the caller's bearer token so the store enforces
// per-user row ownership.
type TaskRepository interface {
	// ListByUser returns all tasks owned by userID, newest first.
	ListByUser(ctx context.Context, token, userID string) ([]model.Task, error)

	// Insert persists a new task and returns the stored row.
	Insert(ctx context.Context, token string, opt InsertTaskOptions) (model.Task, error)

	// UpdateStatus sets the completion flag of one task.
	UpdateStatus(ctx context.Context, token, id string, isDone bool) (model.Task, error)

	// UpdateTags replaces the tag set of one task.
	UpdateTags(ctx context.Context, token, id string, tags []string) (model.Task, error)

	// UpdateSchedule sets or clears the schedule window of one task.
	UpdateSchedule(ctx context.Context, token, id string, opt ScheduleOptions) (model.Task, error)
}
