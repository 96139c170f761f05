package database

import "errors"

// Sentinel errors for data access failures. Repositories wrap these so
// handlers can classify failures without inspecting message text.
var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDatabaseError is returned when the external store call fails.
	ErrDatabaseError = errors.New("database error")

	// ErrInvalidInput is returned when a repository argument is unusable.
	ErrInvalidInput = errors.New("invalid input")
)
