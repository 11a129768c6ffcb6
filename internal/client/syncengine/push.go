package syncengine

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/draftkeeper/internal/client/remote"
	"github.com/dmitrijs2005/draftkeeper/internal/common"
)

// push uploads the stored state of id. With force the conflict check is
// skipped (keep-local resolution).
func (e *Engine) push(ctx context.Context, uid, id string, force bool) error {
	e.setStatus(Status{State: StateSyncing})

	local, err := e.store.FetchByID(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		// deleted while queued
		e.setStatus(Status{State: StateSynced})
		return nil
	}
	if err != nil {
		e.fail(err)
		return err
	}

	if !force {
		cloud, err := e.remote.SelectByID(ctx, id)
		switch {
		case errors.Is(err, remote.ErrNotFound):
			cloud = nil
		case err != nil:
			e.fail(err)
			return fmt.Errorf("push %s: %w", id, err)
		}

		if cloud != nil && IsConflict(cloud.UpdatedAt, local.LastSyncedAt, local.NeedsSync) {
			e.logger.Warn(ctx, "conflict detected", "project_id", id,
				"cloud_updated_at", cloud.UpdatedAt, "last_synced_at", local.LastSyncedAt)
			e.setStatus(Status{State: StateError, Message: ConflictMessage})
			return &ConflictError{ID: id}
		}
	}

	now := e.now()
	rec, err := e.cipher.toCloud(local, uid, now)
	if err != nil {
		e.fail(err)
		return fmt.Errorf("push %s: %w", id, err)
	}

	if err := e.remote.Upsert(ctx, rec); err != nil {
		e.fail(err)
		return fmt.Errorf("push %s: %w", id, err)
	}

	cleared, err := e.store.MarkSynced(ctx, id, local.Revision, now)
	if err != nil {
		e.fail(err)
		return fmt.Errorf("push %s: %w", id, err)
	}

	e.logger.Info(ctx, "pushed project", "project_id", id, "clean", cleared)
	e.setStatus(Status{State: StateSynced})
	return nil
}
