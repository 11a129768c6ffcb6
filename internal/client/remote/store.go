// Package remote is the network-side copy of the user's projects as seen by
// the sync engine. Two backends implement Store: GRPCStore (the DraftKeeper
// server) and S3Store (an S3-compatible bucket).
package remote

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
)

var (
	// ErrUnavailable covers transport failures: offline, timeouts, 5xx.
	ErrUnavailable = errors.New("remote store unavailable")
	// ErrUnauthorized means the session is missing, expired or rejected.
	ErrUnauthorized = errors.New("remote store: unauthorized")
	// ErrNotFound is returned by SelectByID for an id never pushed.
	ErrNotFound = errors.New("remote record not found")
	// ErrRejected is a write refused by the backend.
	ErrRejected = errors.New("remote store rejected the write")
)

// Store is the per-user CRUD surface keyed by project id.
type Store interface {
	SelectAll(ctx context.Context, userID string) ([]*models.CloudProject, error)
	SelectByID(ctx context.Context, id string) (*models.CloudProject, error)
	Upsert(ctx context.Context, rec *models.CloudProject) error
	DeleteByID(ctx context.Context, id string) error
	// DeleteAllUserData is used by account deletion only.
	DeleteAllUserData(ctx context.Context, userID string) error
}
