package usecase

import (
	"sort"
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/pkg/datemath"
)

// filterTasks returns the subset matching the search text and tag filter.
// Search matches case-insensitively against description, category, summary
// and every tag; the tag filter keeps tasks carrying any selected tag.
func filterTasks(tasks []model.Task, search string, selectedTags []string) []model.Task {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if search != "" && !matchesSearch(t, search) {
			continue
		}
		if len(selectedTags) > 0 && !matchesAnyTag(t, selectedTags) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesSearch(t model.Task, search string) bool {
	if strings.Contains(strings.ToLower(t.Description), search) ||
		strings.Contains(strings.ToLower(string(t.Category)), search) ||
		strings.Contains(strings.ToLower(t.Summary), search) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func matchesAnyTag(t model.Task, selected []string) bool {
	for _, tag := range selected {
		if t.HasTag(tag) {
			return true
		}
	}
	return false
}

// sortTasks orders the slice in place. The zero key sorts newest first;
// category and status sorts are stable so the newest-first order survives
// as the tie-break.
func sortTasks(tasks []model.Task, key task.SortKey, now time.Time) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	switch key {
	case task.SortCategory:
		sort.SliceStable(tasks, func(i, j int) bool {
			return strings.ToLower(string(tasks[i].Category)) < strings.ToLower(string(tasks[j].Category))
		})
	case task.SortStatus:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].ScheduleStatus(now).Rank() < tasks[j].ScheduleStatus(now).Rank()
		})
	}
}

// countStats tallies the collection by schedule status.
func countStats(tasks []model.Task, now time.Time) task.StatsOutput {
	stats := task.StatsOutput{Total: len(tasks)}
	for _, t := range tasks {
		switch t.ScheduleStatus(now) {
		case datemath.StatusCompleted:
			stats.Completed++
		case datemath.StatusUnscheduled:
			stats.Unscheduled++
		case datemath.StatusOverdue:
			stats.Overdue++
		case datemath.StatusInProgress:
			stats.InProgress++
		case datemath.StatusScheduled:
			stats.Scheduled++
		}
	}
	return stats
}
