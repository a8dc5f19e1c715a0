package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	// The store's constraint is the authoritative duplicate signal; callers
	// map it to a conflict outcome.
	ErrDuplicate = errors.New("duplicate key")
)
