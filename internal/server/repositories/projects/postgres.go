package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
	"github.com/dmitrijs2005/draftkeeper/internal/dbx"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const projectColumns = `id, user_id, title, content_data, deadline, created_at, last_edited_at,
		 last_progress_at, nudge_enabled, nudge_mode, nudge_hour, nudge_minute,
		 max_inactivity_hours, updated_at, is_archived`

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner) (*models.Project, error) {
	p := &models.Project{}
	var deadline, progress sql.NullTime

	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.ContentData, &deadline, &p.CreatedAt, &p.LastEditedAt,
		&progress, &p.NudgeEnabled, &p.NudgeMode, &p.NudgeHour, &p.NudgeMinute,
		&p.MaxInactivityHours, &p.UpdatedAt, &p.IsArchived)
	if err != nil {
		return nil, err
	}

	if deadline.Valid {
		t := deadline.Time.UTC()
		p.Deadline = &t
	}
	if progress.Valid {
		t := progress.Time.UTC()
		p.LastProgressAt = &t
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.LastEditedAt = p.LastEditedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

func (r *PostgresRepository) SelectAll(ctx context.Context, userID string) ([]*models.Project, error) {
	query :=
		`SELECT ` + projectColumns + `
		 FROM projects
		 WHERE user_id = $1
		 ORDER BY updated_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) SelectByID(ctx context.Context, userID, id string) (*models.Project, error) {
	query :=
		`SELECT ` + projectColumns + `
		 FROM projects
		 WHERE id = $1 AND user_id = $2
		 `

	p, err := scanProject(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, p *models.Project) error {
	query :=
		`INSERT INTO projects (` + projectColumns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 ON CONFLICT (id) DO UPDATE SET
		   title = EXCLUDED.title,
		   content_data = EXCLUDED.content_data,
		   deadline = EXCLUDED.deadline,
		   last_edited_at = EXCLUDED.last_edited_at,
		   last_progress_at = EXCLUDED.last_progress_at,
		   nudge_enabled = EXCLUDED.nudge_enabled,
		   nudge_mode = EXCLUDED.nudge_mode,
		   nudge_hour = EXCLUDED.nudge_hour,
		   nudge_minute = EXCLUDED.nudge_minute,
		   max_inactivity_hours = EXCLUDED.max_inactivity_hours,
		   updated_at = EXCLUDED.updated_at,
		   is_archived = EXCLUDED.is_archived
		 WHERE projects.user_id = EXCLUDED.user_id
		 `

	res, err := r.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.Title, p.ContentData, p.Deadline, p.CreatedAt, p.LastEditedAt,
		p.LastProgressAt, p.NudgeEnabled, p.NudgeMode, p.NudgeHour, p.NudgeMinute,
		p.MaxInactivityHours, p.UpdatedAt, p.IsArchived)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrForeignRecord
	}
	return nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, userID, id string) error {
	query :=
		`DELETE FROM projects
		 WHERE id = $1 AND user_id = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	query :=
		`DELETE FROM projects
		 WHERE user_id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
