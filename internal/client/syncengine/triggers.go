package syncengine

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
)

// OnContentChanged marks p dirty and restarts the debounce timer with p as
// the push target. Edits inside the window are coalesced into one push of
// the latest stored state.
func (e *Engine) OnContentChanged(ctx context.Context, p *models.Project) error {
	p.NeedsSync = true
	return e.submit(ctx, e.guarded(func(ctx context.Context, _ string) error {
		if err := e.store.MarkDirty(ctx, p.ID); err != nil {
			return err
		}
		e.schedule(p.ID)
		return nil
	}))
}

// OnLeaveEditor pushes p at once if it has unsynced edits.
func (e *Engine) OnLeaveEditor(ctx context.Context, p *models.Project) error {
	return e.submit(ctx, e.guarded(func(ctx context.Context, uid string) error {
		local, err := e.store.FetchByID(ctx, p.ID)
		if err != nil {
			return err
		}
		if !local.NeedsSync {
			return nil
		}
		e.cancelDebounce()
		return e.push(ctx, uid, p.ID, false)
	}))
}

// OnAppBackground pushes every dirty record in id order, continuing past
// failures. The returned error joins the individual failures.
func (e *Engine) OnAppBackground(ctx context.Context) error {
	return e.submit(ctx, e.guarded(func(ctx context.Context, uid string) error {
		e.cancelDebounce()

		dirty, err := e.store.FetchDirty(ctx)
		if err != nil {
			e.fail(err)
			return err
		}

		var errs []error
		for _, p := range dirty {
			if err := e.push(ctx, uid, p.ID, false); err != nil {
				errs = append(errs, err)
			}
		}
		if len(errs) > 0 {
			e.fail(fmt.Errorf("%d of %d projects not synced: %w", len(errs), len(dirty), errs[0]))
		}
		return errors.Join(errs...)
	}))
}

// OnAppLaunch pulls and reconciles all remote records.
func (e *Engine) OnAppLaunch(ctx context.Context) (*PullReport, error) {
	return e.pullTrigger(ctx)
}

// OnAppForeground is OnAppLaunch for a resumed app.
func (e *Engine) OnAppForeground(ctx context.Context) (*PullReport, error) {
	return e.pullTrigger(ctx)
}

func (e *Engine) pullTrigger(ctx context.Context) (*PullReport, error) {
	var report *PullReport
	err := e.submit(ctx, e.guarded(func(ctx context.Context, uid string) error {
		r, err := e.pull(ctx, uid)
		report = r
		return err
	}))
	return report, err
}

// OnResolveConflictKeepLocal overwrites the remote copy with the local one.
func (e *Engine) OnResolveConflictKeepLocal(ctx context.Context, id string) error {
	return e.submit(ctx, e.guarded(func(ctx context.Context, uid string) error {
		if err := e.store.MarkDirty(ctx, id); err != nil {
			e.fail(err)
			return err
		}
		e.logger.Info(ctx, "conflict resolved, keeping local", "project_id", id)
		return e.push(ctx, uid, id, true)
	}))
}

// OnResolveConflictKeepCloud overwrites the local copy with the remote one.
func (e *Engine) OnResolveConflictKeepCloud(ctx context.Context, id string) error {
	return e.submit(ctx, e.guarded(func(ctx context.Context, uid string) error {
		e.logger.Info(ctx, "conflict resolved, keeping cloud", "project_id", id)
		return e.keepCloud(ctx, uid, id)
	}))
}

// OnDeleteLocal removes id from the local store, then queues a best-effort
// remote delete whose failure is only logged. The local delete happens even
// when signed out.
func (e *Engine) OnDeleteLocal(ctx context.Context, id string) error {
	return e.submit(ctx, func(ctx context.Context) error {
		if e.Pending() == id {
			e.cancelDebounce()
		}
		if err := e.store.Delete(ctx, id); err != nil {
			return err
		}
		e.logger.Info(ctx, "deleted project locally", "project_id", id)

		if _, err := e.user(ctx); err != nil {
			return nil
		}
		go e.enqueue(func(ctx context.Context) error {
			if err := e.remote.DeleteByID(ctx, id); err != nil {
				e.logger.Warn(ctx, "remote delete failed", "project_id", id, "error", err)
			}
			return nil
		})
		return nil
	})
}

// Retry is a manual push of id.
func (e *Engine) Retry(ctx context.Context, id string) error {
	return e.submit(ctx, e.guarded(func(ctx context.Context, uid string) error {
		return e.push(ctx, uid, id, false)
	}))
}
