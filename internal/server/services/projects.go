package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// ProjectService serves the remote project copies of the authenticated
// user. It stores ciphertext as received and never interprets it.
type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager) *ProjectService {
	return &ProjectService{db: db, repomanager: m}
}

func (s *ProjectService) List(ctx context.Context, userID string) ([]*models.Project, error) {
	list, err := s.repomanager.Projects(s.db).SelectAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	return list, nil
}

func (s *ProjectService) Get(ctx context.Context, userID, id string) (*models.Project, error) {
	p, err := s.repomanager.Projects(s.db).SelectByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("error reading project %s: %w", id, err)
	}
	return p, nil
}

// Upsert writes p on behalf of userID. A record that names another owner,
// or whose id already belongs to another user, yields common.ErrForeignRecord.
func (s *ProjectService) Upsert(ctx context.Context, userID string, p *models.Project) error {
	if p == nil || p.Title == "" {
		return ErrInvalidArgument
	}
	if _, err := uuid.Parse(p.ID); err != nil {
		return fmt.Errorf("%w: project id %q", ErrInvalidArgument, p.ID)
	}
	if p.UserID != userID {
		return common.ErrForeignRecord
	}

	if err := s.repomanager.Projects(s.db).Upsert(ctx, p); err != nil {
		return fmt.Errorf("error saving project %s: %w", p.ID, err)
	}
	return nil
}

func (s *ProjectService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repomanager.Projects(s.db).DeleteByID(ctx, userID, id); err != nil {
		return fmt.Errorf("error deleting project %s: %w", id, err)
	}
	return nil
}
