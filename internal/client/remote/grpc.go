package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/draftkeeper/internal/client/client"
	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
)

// GRPCStore is a Store backed by the DraftKeeper server.
type GRPCStore struct {
	client client.Client
}

func NewGRPCStore(c client.Client) *GRPCStore {
	return &GRPCStore{client: c}
}

func (s *GRPCStore) SelectAll(ctx context.Context, userID string) ([]*models.CloudProject, error) {
	list, err := s.client.ListProjects(ctx, userID)
	if err != nil {
		return nil, mapClientError("select all", err)
	}
	out := make([]*models.CloudProject, 0, len(list))
	for _, p := range list {
		out = append(out, fromWire(p))
	}
	return out, nil
}

func (s *GRPCStore) SelectByID(ctx context.Context, id string) (*models.CloudProject, error) {
	p, err := s.client.GetProject(ctx, id)
	if err != nil {
		return nil, mapClientError("select "+id, err)
	}
	return fromWire(p), nil
}

func (s *GRPCStore) Upsert(ctx context.Context, rec *models.CloudProject) error {
	if err := s.client.UpsertProject(ctx, toWire(rec)); err != nil {
		return mapClientError("upsert "+rec.ID, err)
	}
	return nil
}

func (s *GRPCStore) DeleteByID(ctx context.Context, id string) error {
	if err := s.client.DeleteProject(ctx, id); err != nil {
		return mapClientError("delete "+id, err)
	}
	return nil
}

func (s *GRPCStore) DeleteAllUserData(ctx context.Context, userID string) error {
	if _, err := s.client.DeleteAllUserData(ctx, userID); err != nil {
		return mapClientError("delete account data", err)
	}
	return nil
}

func mapClientError(op string, err error) error {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	case errors.Is(err, client.ErrUnauthorized):
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	case errors.Is(err, client.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, client.ErrConflict):
		return fmt.Errorf("%s: %w: %w", op, ErrRejected, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
