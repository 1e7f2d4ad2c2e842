package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrDescriptionRequired = errors.New("task description is empty")
	ErrUserIDRequired      = errors.New("user id is required")
	ErrTokenRequired       = errors.New("auth token is required")
	ErrSubmissionInFlight  = errors.New("a submission is already in progress for this user")
	ErrNoTaskReturned      = errors.New("enrichment completed but no task was returned")
	ErrInvalidSchedule     = errors.New("end date requires a start date and must not precede it")
	ErrTaskNotFound        = errors.New("task not found")
)
