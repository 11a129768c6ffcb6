package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	// ErrLocalDataNotAvailable is returned by offline login before any
	// successful online login on this device.
	ErrLocalDataNotAvailable = errors.New("local data not available")
	// ErrConflict is returned when the server refuses a write, e.g. an id
	// owned by another account.
	ErrConflict = errors.New("conflict")
)
