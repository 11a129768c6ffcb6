package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
	"github.com/dmitrijs2005/draftkeeper/internal/common"
	"github.com/dmitrijs2005/draftkeeper/internal/dbx"
)

const columns = `id, title, content, deadline, created_at, last_edited_at, last_progress_at,
	nudge_enabled, nudge_mode, nudge_hour, nudge_minute, max_inactivity_hours,
	is_archived, needs_sync, last_synced_at, revision, decrypt_failed, schema_version`

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) FetchAll(ctx context.Context) ([]*models.Project, error) {
	return r.query(ctx, `SELECT `+columns+` FROM projects ORDER BY id`)
}

func (r *SQLiteRepository) FetchDirty(ctx context.Context) ([]*models.Project, error) {
	return r.query(ctx, `SELECT `+columns+` FROM projects WHERE needs_sync = 1 ORDER BY id`)
}

func (r *SQLiteRepository) FetchByID(ctx context.Context, id string) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", id, common.ErrorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project %s: %w", id, err)
	}
	return p, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, p *models.Project) error {
	query := `INSERT INTO projects (` + columns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, args(p)...); err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Update(ctx context.Context, p *models.Project) error {
	query := `UPDATE projects SET title = ?, content = ?, deadline = ?,
			last_edited_at = ?, last_progress_at = ?, nudge_enabled = ?, nudge_mode = ?,
			nudge_hour = ?, nudge_minute = ?, max_inactivity_hours = ?, is_archived = ?,
			needs_sync = 1, revision = revision + 1
		WHERE id = ?
		RETURNING revision, last_synced_at, decrypt_failed`

	a := args(p)
	// editable columns without created_at, then id
	params := append(append(append([]any{}, a[1:4]...), a[5:13]...), a[0])

	var (
		rev    int64
		synced sql.NullInt64
		failed bool
	)
	err := r.db.QueryRowContext(ctx, query, params...).Scan(&rev, &synced, &failed)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("project %s: %w", p.ID, common.ErrorNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	p.Revision = rev
	p.NeedsSync = true
	p.LastSyncedAt = fromNullNanos(synced)
	p.DecryptFailed = failed
	return nil
}

func (r *SQLiteRepository) MarkDirty(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET needs_sync = 1, revision = revision + 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark project dirty: %w", err)
	}
	return expectOne(res, id)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return expectOne(res, id)
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Save(ctx context.Context, p *models.Project) (bool, error) {
	query := `INSERT INTO projects (` + columns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title = excluded.title, content = excluded.content,
			deadline = excluded.deadline, created_at = excluded.created_at,
			last_edited_at = excluded.last_edited_at, last_progress_at = excluded.last_progress_at,
			nudge_enabled = excluded.nudge_enabled, nudge_mode = excluded.nudge_mode,
			nudge_hour = excluded.nudge_hour, nudge_minute = excluded.nudge_minute,
			max_inactivity_hours = excluded.max_inactivity_hours, is_archived = excluded.is_archived,
			needs_sync = excluded.needs_sync, last_synced_at = excluded.last_synced_at,
			decrypt_failed = excluded.decrypt_failed, schema_version = excluded.schema_version,
			revision = projects.revision + 1
		WHERE projects.revision = excluded.revision`

	res, err := r.db.ExecContext(ctx, query, args(p)...)
	if err != nil {
		return false, fmt.Errorf("failed to save project %s: %w", p.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n == 1, nil
}

func (r *SQLiteRepository) SaveAll(ctx context.Context, ps []*models.Project) ([]string, error) {
	if len(ps) == 0 {
		return nil, nil
	}

	var skipped []string
	save := func(ctx context.Context, tx dbx.DBTX) error {
		skipped = skipped[:0]
		repo := NewSQLiteRepository(tx)
		for _, p := range ps {
			ok, err := repo.Save(ctx, p)
			if err != nil {
				return err
			}
			if !ok {
				skipped = append(skipped, p.ID)
			}
		}
		return nil
	}

	// already inside a transaction
	b, ok := r.db.(dbx.TxBeginner)
	if !ok {
		return skipped, save(ctx, r.db)
	}
	if err := dbx.WithTx(ctx, b, nil, save); err != nil {
		return nil, err
	}
	return skipped, nil
}

func (r *SQLiteRepository) MarkSynced(ctx context.Context, id string, revision int64, at time.Time) (bool, error) {
	// LastSyncedAt advances even when the revision moved: the remote now
	// holds what was pushed, and the newer local edit stays dirty.
	query := `UPDATE projects SET last_synced_at = ?,
			needs_sync = CASE WHEN revision = ? THEN 0 ELSE needs_sync END
		WHERE id = ?
		RETURNING needs_sync`

	var dirty bool
	err := r.db.QueryRowContext(ctx, query, at.UTC().UnixNano(), revision, id).Scan(&dirty)
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("project %s: %w", id, common.ErrorNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("failed to mark project synced: %w", err)
	}
	return !dirty, nil
}

func (r *SQLiteRepository) query(ctx context.Context, query string, params ...any) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to select projects: %w", err)
	}
	defer rows.Close()

	var result []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func expectOne(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("project %s: %w", id, common.ErrorNotFound)
	}
	return nil
}
