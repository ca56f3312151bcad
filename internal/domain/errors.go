package domain

import "errors"

// Sentinel errors shared across the store and its collaborators.
// Callers test with errors.Is; the delivery layer maps them to HTTP statuses.
var (
	// ErrNotFound means an operation referenced a group, image, suggestion or
	// tag id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation means the input failed a constraint check, e.g. an
	// unrecognized review status.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence means a snapshot write or read failed (I/O or
	// serialization).
	ErrPersistence = errors.New("persistence failed")
)
