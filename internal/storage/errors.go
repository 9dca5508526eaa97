package storage

import "errors"

var (
	// ErrNotFound is returned when no record matches the lookup key.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyClaimed is returned when a claim tuple already exists in the
	// ledger. The postgres unique constraint is the canonical source of this
	// error; pre-checks only produce it as a fast path.
	ErrAlreadyClaimed = errors.New("collectible already claimed")

	// ErrUnavailable wraps any backend failure that is not a lookup miss or a
	// uniqueness conflict. Callers may retry; all gateway writes are either
	// idempotent or uniquely constrained.
	ErrUnavailable = errors.New("storage unavailable")
)
