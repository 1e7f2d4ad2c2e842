package model

import (
	"strings"
	"time"

	"taskboard/pkg/datemath"
)

// Category is the fixed label set a task can be classified into.
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryHealth   Category = "Health"
	CategoryLearning Category = "Learning"
	CategoryFinance  Category = "Finance"
	CategoryHome     Category = "Home"
	CategoryPersonal Category = "Personal"
)

// Task is a user-owned unit of work with enrichment metadata and an
// optional schedule window.
type Task struct {
	ID           string
	UserID       string
	Description  string
	Category     Category
	TimeEstimate string // free-text duration, advisory only
	Summary      string // action plan from the enrichment service, advisory only
	IsDone       bool
	Tags         []string // ordered, unique case-insensitively
	StartDate    *time.Time
	EndDate      *time.Time
	CreatedAt    time.Time
}

// ScheduleStatus derives the task's temporal state relative to now.
func (t Task) ScheduleStatus(now time.Time) datemath.Status {
	return datemath.ScheduleStatus(t.IsDone, t.StartDate, t.EndDate, now)
}

// HasTag reports whether the task carries the tag, compared case-insensitively.
func (t Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if strings.EqualFold(existing, tag) {
			return true
		}
	}
	return false
}

// NormalizeTags trims, drops empties and deduplicates case-insensitively,
// keeping the first occurrence's spelling and position.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		seen := false
		for _, kept := range out {
			if strings.EqualFold(kept, tag) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, tag)
		}
	}
	return out
}
