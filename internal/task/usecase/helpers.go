package usecase

import (
	"errors"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/task/repository"
	"taskboard/pkg/supabase"
)

// beginSubmit reserves the per-user submission slot. Returns false when a
// submission is already running for that user.
func (uc *implUseCase) beginSubmit(userID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, busy := uc.inflight[userID]; busy {
		return false
	}
	uc.inflight[userID] = struct{}{}
	return true
}

func (uc *implUseCase) endSubmit(userID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inflight, userID)
}

// cacheUpsert merges one task into the user's cached collection: replaces
// the entry with the same id, or prepends a new one. No cached collection
// means nothing to merge into.
func (uc *implUseCase) cacheUpsert(userID string, t model.Task) {
	cached, ok := uc.cache.Get(userID)
	if !ok {
		uc.cache.Add(userID, []model.Task{t})
		return
	}

	merged := make([]model.Task, 0, len(cached)+1)
	replaced := false
	for _, existing := range cached {
		if existing.ID == t.ID {
			merged = append(merged, t)
			replaced = true
			continue
		}
		merged = append(merged, existing)
	}
	if !replaced {
		merged = append([]model.Task{t}, merged...)
	}
	uc.cache.Add(userID, merged)
}

// taskFromRow maps a webhook-echoed store row into the domain model.
func taskFromRow(row supabase.TaskRow) model.Task {
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

// mapRepoError translates repository sentinels into domain errors.
func (uc *implUseCase) mapRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	return err
}
