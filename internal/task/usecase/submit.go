package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/enrich"
	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/task/repository"
	"taskboard/pkg/enricher"
)

// Submit runs the enrichment pipeline for one description: call the
// webhook, resolve its reply into a persisted task, and fall back to local
// heuristics when the webhook is unusable. Auth failures surface to the
// caller instead of falling back, so an expired session never turns into a
// silent unlabeled insert.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input task.SubmitInput) (model.Task, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return model.Task{}, task.ErrDescriptionRequired
	}
	if sc.UserID == "" {
		return model.Task{}, task.ErrUserIDRequired
	}
	if sc.Token == "" {
		return model.Task{}, task.ErrTokenRequired
	}

	if !uc.beginSubmit(sc.UserID) {
		return model.Task{}, task.ErrSubmissionInFlight
	}
	defer uc.endSubmit(sc.UserID)

	uc.l.Infof(ctx, "Submit: user=%s description_length=%d", sc.UserID, len(description))

	outcome, err := uc.enricher.Process(ctx, enricher.ProcessRequest{
		Description: description,
		UserID:      sc.UserID,
		Token:       sc.Token,
	})
	if err != nil {
		if !enricher.IsFallbackEligible(err) {
			return model.Task{}, err
		}
		uc.l.Warnf(ctx, "Submit: enrichment webhook unusable, using local heuristics: %v", err)
		return uc.submitFallback(ctx, sc, description)
	}

	switch outcome.Kind {
	case enricher.OutcomeTask, enricher.OutcomeWrapped:
		created := taskFromRow(*outcome.Task)
		uc.cacheUpsert(sc.UserID, created)
		return created, nil
	default:
		return uc.resolveAmbiguous(ctx, sc)
	}
}

// resolveAmbiguous handles a 2xx webhook reply that carried no task record.
// The workflow writes the row asynchronously, so wait briefly and take the
// newest task from a fresh fetch.
func (uc *implUseCase) resolveAmbiguous(ctx context.Context, sc model.Scope) (model.Task, error) {
	uc.l.Debugf(ctx, "Submit: ambiguous webhook reply, refetching after %s", uc.settleDelay)

	select {
	case <-ctx.Done():
		return model.Task{}, ctx.Err()
	case <-time.After(uc.settleDelay):
	}

	tasks, err := uc.repo.ListByUser(ctx, sc.Token, sc.UserID)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to refetch tasks after ambiguous enrichment reply: %w", err)
	}
	if len(tasks) == 0 {
		return model.Task{}, task.ErrNoTaskReturned
	}

	uc.cache.Add(sc.UserID, tasks)
	return tasks[0], nil
}

// submitFallback enriches locally and inserts directly into the store.
func (uc *implUseCase) submitFallback(ctx context.Context, sc model.Scope, description string) (model.Task, error) {
	enrichment := enrich.Apply(description)

	created, err := uc.repo.Insert(ctx, sc.Token, repository.InsertTaskOptions{
		UserID:       sc.UserID,
		Description:  description,
		Category:     string(enrichment.Category),
		TimeEstimate: enrichment.TimeEstimate,
		Summary:      enrichment.Summary,
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("fallback insert failed: %w", err)
	}

	uc.l.Infof(ctx, "Submit: fallback task created id=%s category=%s", created.ID, created.Category)
	uc.cacheUpsert(sc.UserID, created)
	return created, nil
}
