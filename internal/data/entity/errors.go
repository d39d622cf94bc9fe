package entity

import "errors"

// ErrMissingFields is returned when a booking request omits a required
// field. Handlers map this to HTTP 400; nothing is persisted and no
// dispatcher runs.
var ErrMissingFields = errors.New("missing required fields")

// ErrNotFound is returned by repositories and services when the requested
// booking does not exist. Handlers map this to HTTP 404.
var ErrNotFound = errors.New("booking not found")
