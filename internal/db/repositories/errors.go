package repositories

import "errors"

// Domain errors surfaced by the repositories. Services and handlers branch on
// these with errors.Is instead of inspecting driver-specific errors.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrAlreadyCompleted  = errors.New("duty is already completed")
	ErrNotCompleted      = errors.New("duty is already uncompleted")
	ErrAlreadyInactive   = errors.New("member is already inactive")
)
