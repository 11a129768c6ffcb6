package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
	"github.com/dmitrijs2005/draftkeeper/internal/client/repositories"
	pb "github.com/dmitrijs2005/draftkeeper/internal/proto"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := repositories.Open(context.Background(), fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func insertMeta(t *testing.T, db *sql.DB, k string, v []byte) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO metadata(key,value) VALUES(?,?)`, k, v)
	require.NoError(t, err)
}

func getMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return v
}

// ---- fake client ----

// fakeClient implements client.Client for AuthService unit tests.
type fakeClient struct {
	CloseErr    error
	RegisterErr error
	RegisterID  string

	GetSaltRet []byte
	GetSaltErr error

	LoginErr    error
	LoginUserID string
	LoginTokens [2]string

	PingErr error

	access, refresh string
	closed          bool

	LastRegisterUser     string
	LastRegisterSalt     []byte
	LastRegisterVerifier []byte

	LastGetSaltUser string

	LastLoginUser     string
	LastLoginVerifier []byte
}

func (f *fakeClient) Close() error {
	f.closed = true
	return f.CloseErr
}

func (f *fakeClient) Ping(context.Context) error { return f.PingErr }

func (f *fakeClient) Register(_ context.Context, username string, salt []byte, verifier []byte) (string, error) {
	f.LastRegisterUser = username
	f.LastRegisterSalt = append([]byte(nil), salt...)
	f.LastRegisterVerifier = append([]byte(nil), verifier...)
	return f.RegisterID, f.RegisterErr
}

func (f *fakeClient) GetSalt(_ context.Context, username string) ([]byte, error) {
	f.LastGetSaltUser = username
	return append([]byte(nil), f.GetSaltRet...), f.GetSaltErr
}

func (f *fakeClient) Login(_ context.Context, username string, verifier []byte) (string, error) {
	f.LastLoginUser = username
	f.LastLoginVerifier = append([]byte(nil), verifier...)
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	f.access, f.refresh = f.LoginTokens[0], f.LoginTokens[1]
	return f.LoginUserID, nil
}

func (f *fakeClient) SetTokens(access, refresh string) { f.access, f.refresh = access, refresh }
func (f *fakeClient) Tokens() (string, string)         { return f.access, f.refresh }

func (f *fakeClient) ListProjects(context.Context, string) ([]*pb.Project, error) { return nil, nil }
func (f *fakeClient) GetProject(context.Context, string) (*pb.Project, error)      { return nil, nil }
func (f *fakeClient) UpsertProject(context.Context, *pb.Project) error             { return nil }
func (f *fakeClient) DeleteProject(context.Context, string) error                   { return nil }
func (f *fakeClient) DeleteAllUserData(context.Context, string) (int64, error)      { return 0, nil }

// ---- fake remote store ----

type fakeStore struct {
	deleteAllErr  error
	deletedUserID string
}

func (f *fakeStore) SelectAll(context.Context, string) ([]*models.CloudProject, error) {
	return nil, nil
}
func (f *fakeStore) SelectByID(context.Context, string) (*models.CloudProject, error) {
	return nil, nil
}
func (f *fakeStore) Upsert(context.Context, *models.CloudProject) error { return nil }
func (f *fakeStore) DeleteByID(context.Context, string) error           { return nil }
func (f *fakeStore) DeleteAllUserData(_ context.Context, userID string) error {
	f.deletedUserID = userID
	return f.deleteAllErr
}

// ---- fake sync engine ----

type triggerCall struct {
	name string
	id   string
}

type fakeTriggers struct {
	calls []triggerCall
	err   error
	// deleteFn runs on OnDeleteLocal, standing in for the engine's local delete.
	deleteFn func(id string) error
}

func (f *fakeTriggers) OnContentChanged(_ context.Context, p *models.Project) error {
	f.calls = append(f.calls, triggerCall{"changed", p.ID})
	return f.err
}

func (f *fakeTriggers) OnLeaveEditor(_ context.Context, p *models.Project) error {
	f.calls = append(f.calls, triggerCall{"leave", p.ID})
	return f.err
}

func (f *fakeTriggers) OnDeleteLocal(_ context.Context, id string) error {
	f.calls = append(f.calls, triggerCall{"delete", id})
	if f.err != nil {
		return f.err
	}
	if f.deleteFn != nil {
		return f.deleteFn(id)
	}
	return nil
}
