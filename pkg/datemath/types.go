package datemath

// Status is the derived temporal state of a task.
type Status string

const (
	StatusUnscheduled Status = "unscheduled"
	StatusScheduled   Status = "scheduled"
	StatusInProgress  Status = "in-progress"
	StatusOverdue     Status = "overdue"
	StatusCompleted   Status = "completed"
)

// Rank returns a sort rank for grouping by status.
// Lower ranks sort first: overdue work surfaces before everything else.
func (s Status) Rank() int {
	switch s {
	case StatusOverdue:
		return 0
	case StatusInProgress:
		return 1
	case StatusScheduled:
		return 2
	case StatusUnscheduled:
		return 3
	case StatusCompleted:
		return 4
	}
	return 5
}

// DefaultEstimateMinutes is used when an estimate string cannot be parsed.
const DefaultEstimateMinutes = 60

const (
	minutesPerHour = 60
	minutesPerDay  = 60 * 24
	minutesPerWeek = 60 * 24 * 7
)
