package syncengine

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated = errors.New("not signed in")
	ErrEncryption       = errors.New("encryption failed")
	ErrConflict         = errors.New("conflict detected")
	ErrEngineStopped    = errors.New("sync engine stopped")
)

// ConflictError names the record whose local and remote copies both
// changed since the last sync.
type ConflictError struct {
	ID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict detected for project %s", e.ID)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
