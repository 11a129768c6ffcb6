package projects

import (
	"database/sql"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (*models.Project, error) {
	var (
		p                          models.Project
		mode                       string
		deadline, progress, synced sql.NullInt64
		createdAt, editedAt        int64
	)

	err := s.Scan(&p.ID, &p.Title, &p.Content, &deadline, &createdAt, &editedAt, &progress,
		&p.Nudge.Enabled, &mode, &p.Nudge.Hour, &p.Nudge.Minute, &p.Nudge.MaxInactivityHours,
		&p.IsArchived, &p.NeedsSync, &synced, &p.Revision, &p.DecryptFailed, &p.SchemaVersion)
	if err != nil {
		return nil, err
	}

	p.Nudge.Mode = models.NudgeMode(mode)
	p.CreatedAt = fromNanos(createdAt)
	p.LastEditedAt = fromNanos(editedAt)
	p.Deadline = fromNullNanos(deadline)
	p.LastProgressAt = fromNullNanos(progress)
	p.LastSyncedAt = fromNullNanos(synced)
	return &p, nil
}

// args returns the values of p in columns order.
func args(p *models.Project) []any {
	schema := p.SchemaVersion
	if schema == 0 {
		schema = models.CurrentSchemaVersion
	}
	return []any{
		p.ID, p.Title, p.Content, toNullNanos(p.Deadline),
		p.CreatedAt.UTC().UnixNano(), p.LastEditedAt.UTC().UnixNano(), toNullNanos(p.LastProgressAt),
		p.Nudge.Enabled, string(p.Nudge.Mode), p.Nudge.Hour, p.Nudge.Minute, p.Nudge.MaxInactivityHours,
		p.IsArchived, p.NeedsSync, toNullNanos(p.LastSyncedAt), p.Revision, p.DecryptFailed, schema,
	}
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func fromNullNanos(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	t := fromNanos(n.Int64)
	return &t
}

func toNullNanos(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UTC().UnixNano(), Valid: true}
}
