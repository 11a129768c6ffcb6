package projects

import (
	"context"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
)

type Repository interface {
	// FetchAll returns every project ordered by id.
	FetchAll(ctx context.Context) ([]*models.Project, error)
	// FetchByID returns common.ErrorNotFound (wrapped) for an unknown id.
	FetchByID(ctx context.Context, id string) (*models.Project, error)
	// FetchDirty returns projects with NeedsSync set, ordered by id.
	FetchDirty(ctx context.Context) ([]*models.Project, error)

	Insert(ctx context.Context, p *models.Project) error
	// Update writes the editable fields of p, marks the row dirty and
	// increments its revision. Sync state (last synced time, decrypt flag)
	// is never taken from p; it is read back from the row into p along with
	// the new revision.
	Update(ctx context.Context, p *models.Project) error
	// MarkDirty sets NeedsSync on the stored row.
	MarkDirty(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error

	// Save inserts p if absent, or overwrites the stored row only when its
	// revision still equals p.Revision. It reports whether a row was written.
	Save(ctx context.Context, p *models.Project) (bool, error)
	// SaveAll applies Save to every project in one transaction and returns
	// the ids that were skipped because they changed concurrently.
	SaveAll(ctx context.Context, ps []*models.Project) ([]string, error)
	// MarkSynced sets LastSyncedAt and clears NeedsSync if the stored
	// revision is still revision. It reports whether NeedsSync was cleared.
	MarkSynced(ctx context.Context, id string, revision int64, at time.Time) (bool, error)
}
