package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/task/repository"
	"taskboard/pkg/datemath"
	"taskboard/pkg/gcalendar"
)

// UpdateStatus toggles a task's completion flag.
func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input task.UpdateStatusInput) (model.Task, error) {
	if input.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}

	updated, err := uc.repo.UpdateStatus(ctx, sc.Token, input.ID, input.IsDone)
	if err != nil {
		return model.Task{}, uc.mapRepoError(err)
	}

	uc.cacheUpsert(sc.UserID, updated)
	return updated, nil
}

// UpdateTags replaces a task's tag set.
func (uc *implUseCase) UpdateTags(ctx context.Context, sc model.Scope, input task.UpdateTagsInput) (model.Task, error) {
	if input.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}

	updated, err := uc.repo.UpdateTags(ctx, sc.Token, input.ID, input.Tags)
	if err != nil {
		return model.Task{}, uc.mapRepoError(err)
	}

	uc.cacheUpsert(sc.UserID, updated)
	return updated, nil
}

// UpdateSchedule sets or clears a task's schedule window and, when a start
// is set, tries to mirror it as a calendar event. Calendar failure is
// logged and never fails the update.
func (uc *implUseCase) UpdateSchedule(ctx context.Context, sc model.Scope, input task.UpdateScheduleInput) (model.Task, error) {
	if input.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	if input.EndDate != nil {
		if input.StartDate == nil || input.EndDate.Before(*input.StartDate) {
			return model.Task{}, task.ErrInvalidSchedule
		}
	}

	updated, err := uc.repo.UpdateSchedule(ctx, sc.Token, input.ID, repository.ScheduleOptions{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return model.Task{}, uc.mapRepoError(err)
	}

	if updated.StartDate != nil {
		uc.tryCreateCalendarEvent(ctx, updated)
	}

	uc.cacheUpsert(sc.UserID, updated)
	return updated, nil
}

// tryCreateCalendarEvent mirrors a scheduled task into Google Calendar.
// Missing end dates get one derived from the time estimate.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.StartDate == nil {
		return
	}

	end := t.StartDate.Add(time.Duration(datemath.ParseEstimate(t.TimeEstimate)) * time.Minute)
	if t.EndDate != nil {
		end = *t.EndDate
	}

	summary := t.Description
	if len(summary) > 100 {
		summary = summary[:100]
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     summary,
		Description: strings.TrimSpace(fmt.Sprintf("%s\n\n%s", t.Description, t.Summary)),
		StartTime:   *t.StartDate,
		EndTime:     end,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "UpdateSchedule: calendar event creation failed for task %s (non-fatal): %v", t.ID, err)
		return
	}

	uc.l.Infof(ctx, "UpdateSchedule: calendar event created for task %s link=%s", t.ID, event.HtmlLink)
}
