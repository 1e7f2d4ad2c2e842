package supabase

import (
	"context"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/task/repository"
	supabaseClient "taskboard/pkg/supabase"
)

// ListByUser returns all tasks owned by userID, newest first (the store
// orders by created_at desc).
func (r *implRepository) ListByUser(ctx context.Context, token, userID string) ([]model.Task, error) {
	rows, err := r.client.ListTasks(ctx, token, userID)
	if err != nil {
		r.l.Errorf(ctx, "supabase.ListByUser: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, taskFromRow(row))
	}
	return tasks, nil
}

// Insert persists a new task row and returns the stored representation.
func (r *implRepository) Insert(ctx context.Context, token string, opt repository.InsertTaskOptions) (model.Task, error) {
	row, err := r.client.InsertTask(ctx, token, supabaseClient.InsertTaskRow{
		UserID:       opt.UserID,
		Description:  opt.Description,
		Category:     opt.Category,
		TimeEstimate: opt.TimeEstimate,
		Summary:      opt.Summary,
		IsDone:       false,
		Tags:         model.NormalizeTags(opt.Tags),
	})
	if err != nil {
		r.l.Errorf(ctx, "supabase.Insert: %v", err)
		return model.Task{}, fmt.Errorf("failed to insert task row: %w", err)
	}
	if row == nil {
		return model.Task{}, repository.ErrEmptyResult
	}
	return taskFromRow(*row), nil
}

// UpdateStatus sets the completion flag on one row.
func (r *implRepository) UpdateStatus(ctx context.Context, token, id string, isDone bool) (model.Task, error) {
	return r.patch(ctx, token, id, map[string]any{"is_done": isDone})
}

// UpdateTags replaces the tag set on one row. Tags are deduplicated
// case-insensitively before the write so the stored set honors the
// uniqueness invariant regardless of caller input.
func (r *implRepository) UpdateTags(ctx context.Context, token, id string, tags []string) (model.Task, error) {
	return r.patch(ctx, token, id, map[string]any{"tags": model.NormalizeTags(tags)})
}

// UpdateSchedule sets or clears the schedule window on one row. Nil
// pointers serialize to JSON null which clears the column.
func (r *implRepository) UpdateSchedule(ctx context.Context, token, id string, opt repository.ScheduleOptions) (model.Task, error) {
	return r.patch(ctx, token, id, map[string]any{
		"start_date": opt.StartDate,
		"end_date":   opt.EndDate,
	})
}

func (r *implRepository) patch(ctx context.Context, token, id string, fields map[string]any) (model.Task, error) {
	row, err := r.client.UpdateTask(ctx, token, id, fields)
	if err != nil {
		r.l.Errorf(ctx, "supabase.patch id=%s: %v", id, err)
		return model.Task{}, fmt.Errorf("failed to update task row: %w", err)
	}
	if row == nil {
		// The store filters updates by row ownership, so a missing row and
		// a row owned by someone else look the same here.
		return model.Task{}, repository.ErrNotFound
	}
	return taskFromRow(*row), nil
}

// taskFromRow maps a wire row to the domain model. Boolean and id
// normalization already happened during decode (FlexBool/FlexID); this is
// where tags get deduplicated and a missing category defaults.
func taskFromRow(row supabaseClient.TaskRow) model.Task {
	category := model.Category(row.Category)
	if category == "" {
		category = model.CategoryPersonal
	}
	return model.Task{
		ID:           string(row.ID),
		UserID:       row.UserID,
		Description:  row.Description,
		Category:     category,
		TimeEstimate: row.TimeEstimate,
		Summary:      row.Summary,
		IsDone:       row.IsDone.Bool(),
		Tags:         model.NormalizeTags(row.Tags),
		StartDate:    row.StartDate,
		EndDate:      row.EndDate,
		CreatedAt:    row.CreatedAt,
	}
}
