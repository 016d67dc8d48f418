package session

import "errors"

// Domain errors for session operations.
var (
	// ErrNoTechnique indicates a phase-dependent operation was attempted
	// before a technique was selected.
	ErrNoTechnique = errors.New("session: no active technique")
)
