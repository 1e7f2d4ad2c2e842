package repository

import "errors"

// Repository-level errors shared by all implementations.
var (
	ErrNotFound     = errors.New("task row not found")
	ErrFailedToList = errors.New("failed to list task rows")
	ErrEmptyResult  = errors.New("store returned no row for a write that should echo one")
)
