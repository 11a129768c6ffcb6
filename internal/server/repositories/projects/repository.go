// Package projects stores the encrypted remote copies of writing projects.
package projects

import (
	"context"

	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
)

// Repository is the remote projects table. Every method is scoped to the
// owning user; rows of other users are invisible.
type Repository interface {
	SelectAll(ctx context.Context, userID string) ([]*models.Project, error)
	// SelectByID returns common.ErrorNotFound for a missing or foreign id.
	SelectByID(ctx context.Context, userID, id string) (*models.Project, error)
	// Upsert inserts or replaces p. It returns common.ErrForeignRecord when
	// the id already belongs to another user.
	Upsert(ctx context.Context, p *models.Project) error
	// DeleteByID is idempotent: deleting a missing row is not an error.
	DeleteByID(ctx context.Context, userID, id string) error
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}
