// Package identity answers who is signed in on this device.
package identity

import (
	"context"

	"github.com/dmitrijs2005/draftkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/draftkeeper/internal/logging"
)

// Provider supplies the current user's id. A failing lookup is reported as
// signed out.
type Provider interface {
	CurrentUserID(ctx context.Context) (string, bool)
	IsSignedIn(ctx context.Context) bool
}

// MetadataProvider reads the session written by the auth service.
type MetadataProvider struct {
	repo   metadata.Repository
	logger logging.Logger
}

func NewMetadataProvider(repo metadata.Repository, logger logging.Logger) *MetadataProvider {
	return &MetadataProvider{repo: repo, logger: logger}
}

func (p *MetadataProvider) CurrentUserID(ctx context.Context) (string, bool) {
	id, err := metadata.GetString(ctx, p.repo, metadata.KeyUserID)
	if err != nil {
		p.logger.Warn(ctx, "identity lookup failed", "error", err)
		return "", false
	}
	if id == "" {
		return "", false
	}
	return id, true
}

func (p *MetadataProvider) IsSignedIn(ctx context.Context) bool {
	_, ok := p.CurrentUserID(ctx)
	return ok
}

// Static is a fixed identity, handy for tools and tests.
type Static string

func (s Static) CurrentUserID(context.Context) (string, bool) {
	return string(s), s != ""
}

func (s Static) IsSignedIn(ctx context.Context) bool {
	_, ok := s.CurrentUserID(ctx)
	return ok
}
