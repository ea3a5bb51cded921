package repository

import "errors"

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when the store rejects a write because of a
	// uniqueness or referential constraint.
	ErrConflict = errors.New("constraint violation")
)
