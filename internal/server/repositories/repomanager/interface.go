package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/draftkeeper/internal/dbx"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/projects"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a *sql.DB or a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Projects(db dbx.DBTX) projects.Repository
}
