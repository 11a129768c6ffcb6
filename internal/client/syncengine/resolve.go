package syncengine

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
	"github.com/dmitrijs2005/draftkeeper/internal/common"
)

// keepCloud replaces the local copy of id with the decrypted remote one.
func (e *Engine) keepCloud(ctx context.Context, uid, id string) error {
	e.setStatus(Status{State: StateSyncing})

	cloud, err := e.remote.SelectByID(ctx, id)
	if err != nil {
		e.fail(err)
		return fmt.Errorf("keep cloud %s: %w", id, err)
	}
	cloud.Migrate()

	d, err := e.cipher.decode(cloud, uid)
	if err != nil {
		e.fail(err)
		return fmt.Errorf("keep cloud %s: %w", id, err)
	}

	local, err := e.store.FetchByID(ctx, id)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		local = &models.Project{}
	case err != nil:
		e.fail(err)
		return err
	}

	updated := local.Clone()
	applyCloud(updated, cloud, d)
	updated.NeedsSync = false
	synced := e.now()
	updated.LastSyncedAt = &synced

	ok, err := e.store.Save(ctx, updated)
	if err != nil {
		e.fail(err)
		return err
	}
	if !ok {
		err := fmt.Errorf("keep cloud %s: project changed during resolution", id)
		e.fail(err)
		return err
	}

	e.setStatus(Status{State: StateSynced})
	return nil
}
