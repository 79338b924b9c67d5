package telemetry

import "errors"

var (
	// ErrMissingField is returned when a required identifier is absent from the request.
	ErrMissingField = errors.New("sessionId is required")
	// ErrNotFound is returned when the session identifier is not known.
	ErrNotFound = errors.New("session not found")
)
