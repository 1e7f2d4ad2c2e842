package task

import (
	"context"

	"taskboard/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Submit sends a raw description through the enrichment pipeline and
	// returns the persisted task. Falls back to local heuristics when the
	// enrichment webhook is unavailable.
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) (model.Task, error)

	// List fetches the user's tasks with optional search, tag filter and sort.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// UpdateStatus toggles a task's completion flag.
	UpdateStatus(ctx context.Context, sc model.Scope, input UpdateStatusInput) (model.Task, error)

	// UpdateTags replaces a task's tag set.
	UpdateTags(ctx context.Context, sc model.Scope, input UpdateTagsInput) (model.Task, error)

	// UpdateSchedule sets or clears a task's schedule window.
	UpdateSchedule(ctx context.Context, sc model.Scope, input UpdateScheduleInput) (model.Task, error)

	// Stats summarizes the user's collection by schedule status.
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
}
