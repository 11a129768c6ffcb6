package syncengine

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
)

// PullReport summarizes one reconciliation pass.
type PullReport struct {
	Created   int
	Updated   int
	Unchanged int
	// Conflicts are dirty local records with newer remote copies; both sides
	// were left untouched.
	Conflicts []string
	// DecryptFailed are remote records that could not be decoded.
	DecryptFailed []string
	// Skipped are records edited locally while the pass ran.
	Skipped []string
}

// pull fetches every remote record of uid and reconciles the local store.
func (e *Engine) pull(ctx context.Context, uid string) (*PullReport, error) {
	e.setStatus(Status{State: StateSyncing})

	clouds, err := e.remote.SelectAll(ctx, uid)
	if err != nil {
		e.fail(err)
		return nil, fmt.Errorf("pull: %w", err)
	}

	locals, err := e.store.FetchAll(ctx)
	if err != nil {
		e.fail(err)
		return nil, fmt.Errorf("pull: %w", err)
	}
	byID := make(map[string]*models.Project, len(locals))
	for _, l := range locals {
		byID[l.ID] = l
	}

	now := e.now()
	report := &PullReport{}
	var batch []*models.Project

	for _, c := range clouds {
		c.Migrate()
		l, ok := byID[c.ID]

		if !ok {
			d, err := e.cipher.decode(c, uid)
			if err != nil {
				e.logger.Warn(ctx, "cannot decode remote project, storing placeholder", "project_id", c.ID, "error", err)
				report.DecryptFailed = append(report.DecryptFailed, c.ID)
				batch = append(batch, placeholder(c))
				continue
			}
			p := &models.Project{}
			applyCloud(p, c, d)
			p.NeedsSync = false
			synced := now
			p.LastSyncedAt = &synced
			batch = append(batch, p)
			report.Created++
			continue
		}

		if !remoteIsNewer(c.UpdatedAt, l.LastSyncedAt) {
			report.Unchanged++
			continue
		}

		if l.NeedsSync {
			e.logger.Warn(ctx, "conflict detected during pull, skipping", "project_id", c.ID)
			report.Conflicts = append(report.Conflicts, c.ID)
			continue
		}

		d, err := e.cipher.decode(c, uid)
		if err != nil {
			e.logger.Warn(ctx, "cannot decode remote project, keeping local copy", "project_id", c.ID, "error", err)
			report.DecryptFailed = append(report.DecryptFailed, c.ID)
			if !l.DecryptFailed {
				flagged := l.Clone()
				flagged.DecryptFailed = true
				batch = append(batch, flagged)
			}
			continue
		}

		updated := l.Clone()
		applyCloud(updated, c, d)
		updated.NeedsSync = false
		synced := now
		updated.LastSyncedAt = &synced
		batch = append(batch, updated)
		report.Updated++
	}

	skipped, err := e.store.SaveAll(ctx, batch)
	if err != nil {
		e.fail(err)
		return nil, fmt.Errorf("pull: %w", err)
	}
	report.Skipped = skipped

	e.logger.Info(ctx, "pull finished",
		"created", report.Created, "updated", report.Updated, "unchanged", report.Unchanged,
		"conflicts", len(report.Conflicts), "decrypt_failed", len(report.DecryptFailed))
	e.setStatus(Status{State: StateSynced})
	return report, nil
}
