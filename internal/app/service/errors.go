package service

import "errors"

var (
	// ErrInvalidToken covers any token that fails signature verification,
	// including malformed or unsigned tokens. Signature problems are reported
	// before expiry is even considered.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned for a correctly signed token whose embedded
	// expiry has elapsed.
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidRequest is returned when a claim request is missing required
	// fields or carries malformed values. No storage access happens first.
	ErrInvalidRequest = errors.New("invalid claim request")
)
