package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/draftkeeper/internal/common"
	"github.com/dmitrijs2005/draftkeeper/internal/dbx"
	"github.com/dmitrijs2005/draftkeeper/internal/logging"
	"github.com/dmitrijs2005/draftkeeper/internal/server/config"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
	projectsrepo "github.com/dmitrijs2005/draftkeeper/internal/server/repositories/projects"
	refreshtokensrepo "github.com/dmitrijs2005/draftkeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/repomanager"
	usersrepo "github.com/dmitrijs2005/draftkeeper/internal/server/repositories/users"
	"github.com/jonboulle/clockwork"
)

var errBoom = errors.New("boom")

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newUserService(t *testing.T, db *sql.DB, rm repomanager.RepositoryManager, clock clockwork.Clock) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
	return NewUserService(db, rm, cfg, clock, logging.Discard())
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error
	created   *models.User

	getOut *models.User
	getErr error

	deleteErr error
	deleted   []string
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.created = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}
func (f *fakeUsersRepo) GetUserByLogin(context.Context, string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeUsersRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

type createdToken struct {
	userID  string
	token   string
	expires time.Time
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	delErr  error
	deleted []string

	createErr error
	created   []createdToken

	expiredErr error
	expiredN   int64
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID, token string, expires time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, createdToken{userID, token, expires})
	return nil
}
func (f *fakeRefreshRepo) Find(context.Context, string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}
func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	return f.delErr
}
func (f *fakeRefreshRepo) DeleteExpired(context.Context, string, time.Time) (int64, error) {
	return f.expiredN, f.expiredErr
}

// fakeProjectsRepo keeps rows keyed by id with the owner check of the real
// upsert.
type fakeProjectsRepo struct {
	rows map[string]*models.Project
	err  error
}

func newFakeProjectsRepo() *fakeProjectsRepo {
	return &fakeProjectsRepo{rows: map[string]*models.Project{}}
}

func (f *fakeProjectsRepo) SelectAll(_ context.Context, userID string) ([]*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Project
	for _, p := range f.rows {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProjectsRepo) SelectByID(_ context.Context, userID, id string) (*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.rows[id]
	if !ok || p.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return p, nil
}
func (f *fakeProjectsRepo) Upsert(_ context.Context, p *models.Project) error {
	if f.err != nil {
		return f.err
	}
	if cur, ok := f.rows[p.ID]; ok && cur.UserID != p.UserID {
		return common.ErrForeignRecord
	}
	f.rows[p.ID] = p
	return nil
}
func (f *fakeProjectsRepo) DeleteByID(_ context.Context, userID, id string) error {
	if f.err != nil {
		return f.err
	}
	if p, ok := f.rows[id]; ok && p.UserID == userID {
		delete(f.rows, id)
	}
	return nil
}
func (f *fakeProjectsRepo) DeleteAllByUser(_ context.Context, userID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for id, p := range f.rows {
		if p.UserID == userID {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	p *fakeProjectsRepo

	// txSeen records whether a repository was requested on a transaction.
	txSeen bool
}

func (m *fakeRepoManager) note(db dbx.DBTX) {
	if _, ok := db.(*sql.Tx); ok {
		m.txSeen = true
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository {
	m.note(db)
	return m.u
}
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository {
	m.note(db)
	return m.r
}
func (m *fakeRepoManager) Projects(db dbx.DBTX) projectsrepo.Repository {
	m.note(db)
	return m.p
}
