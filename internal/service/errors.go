package service

import "errors"

// Common service-level errors
var (
	// ErrNotOwner indicates the authenticated principal is not the owner
	// of the resource it tried to mutate. The mutation is never attempted.
	ErrNotOwner = errors.New("principal does not own the target resource")
)
