package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
	"github.com/dmitrijs2005/draftkeeper/internal/client/repositories/projects"
	"github.com/jonboulle/clockwork"
)

// SyncTriggers is the part of the sync engine driven by editing.
type SyncTriggers interface {
	OnContentChanged(ctx context.Context, p *models.Project) error
	OnLeaveEditor(ctx context.Context, p *models.Project) error
	OnDeleteLocal(ctx context.Context, id string) error
}

// FlagUnreadable marks a project whose remote copy could not be decrypted.
const FlagUnreadable = "unreadable"

// ProjectService is the editor: every local mutation goes through it so the
// sync engine hears about it.
type ProjectService interface {
	Create(ctx context.Context, title string, content []byte) (*models.Project, error)
	List(ctx context.Context) ([]models.ViewOverview, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	// Edit applies change to the stored project and records the edit.
	Edit(ctx context.Context, id string, change func(p *models.Project)) (*models.Project, error)
	// Close is called when the user leaves the editor of id.
	Close(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	repo  projects.Repository
	sync  SyncTriggers
	clock clockwork.Clock
}

func NewProjectService(repo projects.Repository, sync SyncTriggers, clock clockwork.Clock) ProjectService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &projectService{repo: repo, sync: sync, clock: clock}
}

func (s *projectService) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}

func (s *projectService) Create(ctx context.Context, title string, content []byte) (*models.Project, error) {
	p := models.NewProject(title, content, s.now())
	if len(content) > 0 {
		at := p.CreatedAt
		p.LastProgressAt = &at
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("saving error: %w", err)
	}
	if err := s.sync.OnContentChanged(ctx, p); err != nil {
		return p, fmt.Errorf("sync error: %w", err)
	}
	return p, nil
}

func (s *projectService) List(ctx context.Context) ([]models.ViewOverview, error) {
	rows, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error: %w", err)
	}

	result := make([]models.ViewOverview, 0, len(rows))
	for _, p := range rows {
		item := models.ViewOverview{
			ID:           p.ID,
			Title:        p.Title,
			NeedsSync:    p.NeedsSync,
			IsArchived:   p.IsArchived,
			LastEditedAt: p.LastEditedAt,
		}
		if p.DecryptFailed {
			item.Flag = FlagUnreadable
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *projectService) Get(ctx context.Context, id string) (*models.Project, error) {
	p, err := s.repo.FetchByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}
	return p, nil
}

// Edit stamps LastEditedAt, and LastProgressAt when the content grew.
func (s *projectService) Edit(ctx context.Context, id string, change func(p *models.Project)) (*models.Project, error) {
	p, err := s.repo.FetchByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}

	before := len(p.Content)
	change(p)

	now := s.now()
	p.Touch(now)
	if len(p.Content) > before {
		p.LastProgressAt = &now
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("saving error: %w", err)
	}
	if err := s.sync.OnContentChanged(ctx, p); err != nil {
		return p, fmt.Errorf("sync error: %w", err)
	}
	return p, nil
}

func (s *projectService) Close(ctx context.Context, id string) error {
	p, err := s.repo.FetchByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving project: %w", err)
	}
	return s.sync.OnLeaveEditor(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if err := s.sync.OnDeleteLocal(ctx, id); err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}
	return nil
}
