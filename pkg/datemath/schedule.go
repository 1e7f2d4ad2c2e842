package datemath

import (
	"fmt"
	"time"
)

// ScheduleStatus classifies a task's temporal state relative to now.
// Priority order is fixed: done > unscheduled > overdue > in-progress > scheduled.
func ScheduleStatus(isDone bool, start, end *time.Time, now time.Time) Status {
	if isDone {
		return StatusCompleted
	}
	if start == nil {
		return StatusUnscheduled
	}
	if end != nil && now.After(*end) {
		return StatusOverdue
	}
	if !now.Before(*start) && (end == nil || !now.After(*end)) {
		return StatusInProgress
	}
	return StatusScheduled
}

// Overlap reports whether two time ranges intersect.
// Touching boundaries do not overlap; any zero bound yields false.
func Overlap(startA, endA, startB, endB time.Time) bool {
	if startA.IsZero() || endA.IsZero() || startB.IsZero() || endB.IsZero() {
		return false
	}
	return startA.Before(endB) && startB.Before(endA)
}

// FormatDisplay renders a timestamp relative to now:
// "Today at 3:04 PM", "Tomorrow at ...", "Yesterday at ...",
// otherwise a short date. The year is shown only when it differs from now's.
func FormatDisplay(t, now time.Time) string {
	day := func(x time.Time) time.Time {
		return time.Date(x.Year(), x.Month(), x.Day(), 0, 0, 0, 0, x.Location())
	}

	clock := t.Format("3:04 PM")
	today := day(now)

	switch day(t) {
	case today:
		return "Today at " + clock
	case today.AddDate(0, 0, 1):
		return "Tomorrow at " + clock
	case today.AddDate(0, 0, -1):
		return "Yesterday at " + clock
	}

	if t.Year() != now.Year() {
		return fmt.Sprintf("%s at %s", t.Format("Jan 2, 2006"), clock)
	}
	return fmt.Sprintf("%s at %s", t.Format("Jan 2"), clock)
}
