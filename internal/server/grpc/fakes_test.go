package grpc

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
	"github.com/dmitrijs2005/draftkeeper/internal/logging"
	"github.com/dmitrijs2005/draftkeeper/internal/server/auth"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
	"github.com/dmitrijs2005/draftkeeper/internal/server/services"
)

const testSecret = "secret"

type fakeUsers struct {
	refreshResp *services.TokenPair
	refreshErr  error
	refreshed   []string

	regResp *models.User
	regErr  error

	saltResp []byte
	saltErr  error

	loginResp *services.TokenPair
	loginErr  error

	deleteN   int64
	deleteErr error
	deletedID string
}

func (f *fakeUsers) RefreshToken(_ context.Context, refresh string) (*services.TokenPair, error) {
	f.refreshed = append(f.refreshed, refresh)
	return f.refreshResp, f.refreshErr
}
func (f *fakeUsers) Register(context.Context, string, []byte, []byte) (*models.User, error) {
	return f.regResp, f.regErr
}
func (f *fakeUsers) GetSalt(context.Context, string) ([]byte, error) {
	return f.saltResp, f.saltErr
}
func (f *fakeUsers) Login(context.Context, string, []byte) (*services.TokenPair, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeUsers) DeleteAccount(_ context.Context, userID string) (int64, error) {
	f.deletedID = userID
	return f.deleteN, f.deleteErr
}

// fakeProjects is an in-memory project store scoped by owner.
type fakeProjects struct {
	mu   sync.Mutex
	rows map[string]*models.Project
	err  error
}

func newFakeProjects() *fakeProjects {
	return &fakeProjects{rows: map[string]*models.Project{}}
}

func (f *fakeProjects) List(_ context.Context, userID string) ([]*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
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
func (f *fakeProjects) Get(_ context.Context, userID, id string) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.rows[id]
	if !ok || p.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return p, nil
}
func (f *fakeProjects) Upsert(_ context.Context, userID string, p *models.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if p.UserID != userID {
		return common.ErrForeignRecord
	}
	if cur, ok := f.rows[p.ID]; ok && cur.UserID != userID {
		return common.ErrForeignRecord
	}
	f.rows[p.ID] = p
	return nil
}
func (f *fakeProjects) Delete(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if p, ok := f.rows[id]; ok && p.UserID == userID {
		delete(f.rows, id)
	}
	return nil
}

func newTestServer(us UserService, ps ProjectService) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Discard(), us, ps, testSecret)
}

func mustToken(userID string, expires time.Time) string {
	t, err := auth.GenerateToken(userID, []byte(testSecret), expires)
	if err != nil {
		panic(err)
	}
	return t
}
