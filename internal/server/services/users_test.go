package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
	"github.com/dmitrijs2005/draftkeeper/internal/server/auth"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
	usersrepo "github.com/dmitrijs2005/draftkeeper/internal/server/repositories/users"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshToken_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	rm := &fakeRepoManager{
		r: &fakeRefreshRepo{
			findOut: &models.RefreshToken{UserID: "u1", Expires: clock.Now().Add(10 * time.Minute)},
		},
	}
	s := newUserService(t, db, rm, clock)

	pair, err := s.RefreshToken(context.Background(), "refresh-xyz")
	require.NoError(t, err)

	assert.Equal(t, "u1", pair.UserID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEqual(t, "refresh-xyz", pair.RefreshToken)
	assert.Equal(t, []string{"refresh-xyz"}, rm.r.deleted)
	require.Len(t, rm.r.created, 1)
	assert.Equal(t, clock.Now().Add(2*time.Hour), rm.r.created[0].expires)
	assert.True(t, rm.txSeen, "rotation must run in the transaction")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_Expired(t *testing.T) {
	db, _ := newSQLMockDB(t)

	clock := clockwork.NewFakeClock()
	rm := &fakeRepoManager{
		r: &fakeRefreshRepo{
			findOut: &models.RefreshToken{UserID: "u1", Expires: clock.Now().Add(-time.Minute)},
		},
	}
	s := newUserService(t, db, rm, clock)

	_, err := s.RefreshToken(context.Background(), "r")
	require.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

func TestRefreshToken_Unknown(t *testing.T) {
	db, _ := newSQLMockDB(t)

	rm := &fakeRepoManager{r: &fakeRefreshRepo{findErr: common.ErrorNotFound}}
	s := newUserService(t, db, rm, nil)

	_, err := s.RefreshToken(context.Background(), "r")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRefreshToken_FindErr(t *testing.T) {
	db, _ := newSQLMockDB(t)

	rm := &fakeRepoManager{r: &fakeRefreshRepo{findErr: errBoom}}
	s := newUserService(t, db, rm, nil)

	_, err := s.RefreshToken(context.Background(), "r")
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`error searching refresh token: .*boom`), err.Error())
}

func TestRefreshToken_DeleteErrRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	clock := clockwork.NewFakeClock()
	rm := &fakeRepoManager{
		r: &fakeRefreshRepo{
			findOut: &models.RefreshToken{UserID: "u1", Expires: clock.Now().Add(10 * time.Minute)},
			delErr:  errBoom,
		},
	}
	s := newUserService(t, db, rm, clock)

	_, err := s.RefreshToken(context.Background(), "r")
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "error deleting refresh token")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_CreateErrRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	clock := clockwork.NewFakeClock()
	rm := &fakeRepoManager{
		r: &fakeRefreshRepo{
			findOut:   &models.RefreshToken{UserID: "u1", Expires: clock.Now().Add(10 * time.Minute)},
			createErr: errBoom,
		},
	}
	s := newUserService(t, db, rm, clock)

	_, err := s.RefreshToken(context.Background(), "r")
	require.ErrorIs(t, err, common.ErrorInternal)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister(t *testing.T) {
	db, _ := newSQLMockDB(t)

	rm := &fakeRepoManager{u: &fakeUsersRepo{createOut: &models.User{ID: "42", UserName: "alice"}}}
	s := newUserService(t, db, rm, nil)

	u, err := s.Register(context.Background(), "alice", []byte("s"), []byte("v"))
	require.NoError(t, err)
	assert.Equal(t, "42", u.ID)
	assert.Equal(t, []byte("s"), rm.u.created.Salt)
	assert.Equal(t, []byte("v"), rm.u.created.Verifier)
}

func TestRegister_Errors(t *testing.T) {
	db, _ := newSQLMockDB(t)

	rm := &fakeRepoManager{u: &fakeUsersRepo{createErr: usersrepo.ErrUserExists}}
	s := newUserService(t, db, rm, nil)

	_, err := s.Register(context.Background(), "bob", []byte("s"), []byte("v"))
	require.ErrorIs(t, err, usersrepo.ErrUserExists)

	_, err = s.Register(context.Background(), "", []byte("s"), []byte("v"))
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.Register(context.Background(), "bob", nil, []byte("v"))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGetSalt(t *testing.T) {
	db, _ := newSQLMockDB(t)

	s := newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{getOut: &models.User{Salt: []byte("SALT")}}}, nil)
	salt, err := s.GetSalt(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "SALT", string(salt))

	s = newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{getErr: common.ErrorNotFound}}, nil)
	salt1, err := s.GetSalt(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Len(t, salt1, 32)
	salt2, _ := s.GetSalt(context.Background(), "ghost")
	assert.NotEqual(t, salt1, salt2)

	s = newUserService(t, db, &fakeRepoManager{u: &fakeUsersRepo{getErr: errBoom}}, nil)
	_, err = s.GetSalt(context.Background(), "xx")
	require.ErrorIs(t, err, common.ErrorInternal)
}

func TestLogin_Flows(t *testing.T) {
	db, _ := newSQLMockDB(t)

	tests := []struct {
		name    string
		users   *fakeUsersRepo
		refresh *fakeRefreshRepo
		cand    string
		wantErr error
	}{
		{name: "unknown user", users: &fakeUsersRepo{getErr: common.ErrorNotFound}, cand: "x", wantErr: common.ErrorUnauthorized},
		{name: "db failure", users: &fakeUsersRepo{getErr: errBoom}, cand: "x", wantErr: common.ErrorInternal},
		{name: "wrong verifier", users: &fakeUsersRepo{getOut: &models.User{ID: "u1", Verifier: []byte("right")}}, cand: "wrong", wantErr: common.ErrorUnauthorized},
		{name: "token store failure", users: &fakeUsersRepo{getOut: &models.User{ID: "u1", Verifier: []byte("right")}}, refresh: &fakeRefreshRepo{createErr: errBoom}, cand: "right", wantErr: common.ErrorInternal},
		{name: "purge failure is not fatal", users: &fakeUsersRepo{getOut: &models.User{ID: "u1", Verifier: []byte("right")}}, refresh: &fakeRefreshRepo{expiredErr: errBoom}, cand: "right"},
		{name: "ok", users: &fakeUsersRepo{getOut: &models.User{ID: "u1", Verifier: []byte("right")}}, refresh: &fakeRefreshRepo{expiredN: 2}, cand: "right"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.refresh == nil {
				tt.refresh = &fakeRefreshRepo{}
			}
			s := newUserService(t, db, &fakeRepoManager{u: tt.users, r: tt.refresh}, nil)

			pair, err := s.Login(context.Background(), "u", []byte(tt.cand))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", pair.UserID)
			assert.NotEmpty(t, pair.RefreshToken)

			uid, err := auth.GetUserIDFromToken(pair.AccessToken, []byte("k"))
			require.NoError(t, err)
			assert.Equal(t, "u1", uid)
		})
	}
}

func TestDeleteAccount(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	p := newFakeProjectsRepo()
	p.rows["a"] = &models.Project{ID: "a", UserID: "u1"}
	p.rows["b"] = &models.Project{ID: "b", UserID: "u1"}
	p.rows["c"] = &models.Project{ID: "c", UserID: "u2"}
	rm := &fakeRepoManager{u: &fakeUsersRepo{}, p: p}
	s := newUserService(t, db, rm, nil)

	n, err := s.DeleteAccount(context.Background(), "u1")
	require.NoError(t, err)

	assert.EqualValues(t, 2, n)
	assert.Len(t, p.rows, 1)
	assert.Equal(t, []string{"u1"}, rm.u.deleted)
	assert.True(t, rm.txSeen)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAccount_UserDeleteFailsRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{u: &fakeUsersRepo{deleteErr: common.ErrorNotFound}, p: newFakeProjectsRepo()}
	s := newUserService(t, db, rm, nil)

	_, err := s.DeleteAccount(context.Background(), "u1")
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAccount_ProjectDeleteFails(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	p := newFakeProjectsRepo()
	p.err = errBoom
	rm := &fakeRepoManager{u: &fakeUsersRepo{}, p: p}
	s := newUserService(t, db, rm, nil)

	_, err := s.DeleteAccount(context.Background(), "u1")
	require.True(t, errors.Is(err, errBoom))
	assert.Empty(t, rm.u.deleted)
}
