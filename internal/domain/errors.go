package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors carry no infrastructure dependency.

var (
	// Profile errors
	ErrNameRequired    = errors.New("child name is required")
	ErrInvalidDetails  = errors.New("invalid profile details")
	ErrProfileNotFound = errors.New("profile not found")

	// Day completion errors
	ErrDayNotEligible = errors.New("day cannot be completed yet: drink all glasses and finish two more activities")

	// Storage errors
	ErrUnknownBackend = errors.New("unknown storage backend")
)
