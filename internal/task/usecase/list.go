package usecase

import (
	"context"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/task"
)

// collection returns the user's task collection, serving the cached copy
// when one exists and fetching from the store on a miss. Submits and
// updates merge into the cached copy, so a warm cache already reflects
// this instance's own writes.
func (uc *implUseCase) collection(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	if cached, ok := uc.cache.Get(sc.UserID); ok {
		return cached, nil
	}

	tasks, err := uc.repo.ListByUser(ctx, sc.Token, sc.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	uc.cache.Add(sc.UserID, tasks)
	return tasks, nil
}

// List fetches the user's collection and applies the requested derived
// view (search, tag filter, sort).
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if sc.UserID == "" {
		return task.ListOutput{}, task.ErrUserIDRequired
	}

	tasks, err := uc.collection(ctx, sc)
	if err != nil {
		return task.ListOutput{}, err
	}

	view := filterTasks(tasks, input.Search, input.Tags)
	sortTasks(view, input.Sort, uc.now())

	return task.ListOutput{
		Tasks: view,
		Total: len(tasks),
	}, nil
}

// Stats tallies the user's collection by schedule status.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	if sc.UserID == "" {
		return task.StatsOutput{}, task.ErrUserIDRequired
	}

	tasks, err := uc.collection(ctx, sc)
	if err != nil {
		return task.StatsOutput{}, err
	}

	return countStats(tasks, uc.now()), nil
}
