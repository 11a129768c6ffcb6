// Package services contains application services for the DraftKeeper client.
// This file defines the authentication service: online/offline login,
// register, logout, account deletion and the local session metadata behind
// them.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/draftkeeper/internal/client/client"
	"github.com/dmitrijs2005/draftkeeper/internal/client/remote"
	"github.com/dmitrijs2005/draftkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/draftkeeper/internal/client/repositories/projects"
	"github.com/dmitrijs2005/draftkeeper/internal/common"
	"github.com/dmitrijs2005/draftkeeper/internal/cryptox"
	"github.com/dmitrijs2005/draftkeeper/internal/dbx"
	"github.com/dmitrijs2005/draftkeeper/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - OnlineLogin: authenticate against the server and persist the session
//     and offline credentials.
//   - OfflineLogin: verify credentials against the locally cached verifier
//     and resume the cached account without the server.
//   - RestoreSession: pick up a session left by a previous run.
//   - Register: create a new user on the server.
//   - Logout: end the session; local projects and offline credentials stay.
//   - DeleteAccount: erase the remote copies of every project and all local
//     data of the signed-in user.
//   - Ping: check server liveness.
//   - Close: persist refreshed tokens and release client resources.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	OfflineLogin(ctx context.Context, username string, password []byte) error
	OnlineLogin(ctx context.Context, username string, password []byte) error
	RestoreSession(ctx context.Context) (string, error)
	Register(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a server Client, the
// remote project store and the local SQLite database.
type authService struct {
	client client.Client
	remote remote.Store
	db     *sql.DB
	logger logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client,
// remote store and DB.
func NewAuthService(c client.Client, r remote.Store, db *sql.DB, logger logging.Logger) AuthService {
	return &authService{client: c, remote: r, db: db, logger: logger.With("module", "auth")}
}

func (a *authService) metadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

// OfflineLogin derives a master key from (password, salt) stored locally and
// verifies it against the cached verifier. If no online login happened on
// this device it returns client.ErrLocalDataNotAvailable; a wrong username or
// password yields client.ErrUnauthorized.
func (a *authService) OfflineLogin(ctx context.Context, username string, password []byte) error {
	repo := a.metadataRepo()

	values, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("read metadata: %w", err)
	}

	savedUsername := values[metadata.KeyUsername]
	savedSalt := values[metadata.KeySalt]
	savedVerifier := values[metadata.KeyVerifier]
	accountID := values[metadata.KeyAccountID]
	if savedUsername == nil || savedSalt == nil || savedVerifier == nil || len(accountID) == 0 {
		return client.ErrLocalDataNotAvailable
	}
	if string(savedUsername) != username {
		return client.ErrUnauthorized
	}

	masterKey := cryptox.DeriveMasterKey(password, savedSalt)
	defer common.WipeByteArray(masterKey)
	verifierCandidate := cryptox.MakeVerifier(masterKey)

	if subtle.ConstantTimeCompare(savedVerifier, verifierCandidate) == 0 {
		return client.ErrUnauthorized
	}

	if err := repo.Set(ctx, metadata.KeyUserID, accountID); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	a.logger.Info(ctx, "signed in offline", "username", username)
	return nil
}

// OnlineLogin authenticates against the server and saves the session and the
// offline credentials (username, salt, verifier, account id). When a
// different account was cached on this device its local projects are wiped
// first, so they are never pushed under the new account.
func (a *authService) OnlineLogin(ctx context.Context, username string, password []byte) error {
	salt, err := a.client.GetSalt(ctx, username)
	if err != nil {
		return fmt.Errorf("get salt error: %w", err)
	}

	masterKey := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(masterKey)
	verifierCandidate := cryptox.MakeVerifier(masterKey)

	userID, err := a.client.Login(ctx, username, verifierCandidate)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.saveSession(ctx, username, userID, salt, verifierCandidate); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	a.logger.Info(ctx, "signed in", "username", username, "user_id", userID)
	return nil
}

// saveSession persists everything OfflineLogin and RestoreSession need, in a
// single transaction.
func (a *authService) saveSession(ctx context.Context, username, userID string, salt, verifier []byte) error {
	access, refresh := a.client.Tokens()

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		previous, err := repo.Get(ctx, metadata.KeyAccountID)
		if err != nil {
			return err
		}
		if previous != nil && string(previous) != userID {
			a.logger.Warn(ctx, "another account was cached on this device, wiping local projects",
				"previous_user_id", string(previous))
			if err := projects.NewSQLiteRepository(tx).Clear(ctx); err != nil {
				return err
			}
		}

		return repo.SetAll(ctx, map[string][]byte{
			metadata.KeyUserID:       []byte(userID),
			metadata.KeyAccountID:    []byte(userID),
			metadata.KeyUsername:     []byte(username),
			metadata.KeySalt:         salt,
			metadata.KeyVerifier:     verifier,
			metadata.KeyAccessToken:  []byte(access),
			metadata.KeyRefreshToken: []byte(refresh),
		})
	})
}

// RestoreSession loads the tokens of a previous run into the client and
// returns the signed-in username, or "" when signed out.
func (a *authService) RestoreSession(ctx context.Context) (string, error) {
	values, err := a.metadataRepo().List(ctx)
	if err != nil {
		return "", fmt.Errorf("read metadata: %w", err)
	}
	if len(values[metadata.KeyUserID]) == 0 {
		return "", nil
	}
	a.client.SetTokens(string(values[metadata.KeyAccessToken]), string(values[metadata.KeyRefreshToken]))
	return string(values[metadata.KeyUsername]), nil
}

// Register creates a new account on the server. It generates a random salt,
// derives a master key from the provided password, computes a verifier, and
// sends salt and verifier to the server.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	salt := common.GenerateRandByteArray(32)
	key := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)
	verifier := cryptox.MakeVerifier(key)

	userID, err := a.client.Register(ctx, username, salt, verifier)
	if err != nil {
		return err
	}
	a.logger.Info(ctx, "registered", "username", username, "user_id", userID)
	return nil
}

// Logout ends the session. Sync triggers become no-ops until the next login.
func (a *authService) Logout(ctx context.Context) error {
	err := a.metadataRepo().DeleteKeys(ctx, metadata.SessionKeys...)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.client.SetTokens("", "")
	a.logger.Info(ctx, "signed out")
	return nil
}

// DeleteAccount removes every remote project of the signed-in user, then the
// local projects and metadata. Local data is kept when the remote call fails.
func (a *authService) DeleteAccount(ctx context.Context) (int, error) {
	repo := a.metadataRepo()
	userID, err := metadata.GetString(ctx, repo, metadata.KeyUserID)
	if err != nil {
		return 0, fmt.Errorf("read metadata: %w", err)
	}
	if userID == "" {
		return 0, client.ErrUnauthorized
	}

	local, err := projects.NewSQLiteRepository(a.db).FetchAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("read projects: %w", err)
	}

	if err := a.remote.DeleteAllUserData(ctx, userID); err != nil {
		return 0, fmt.Errorf("delete remote data: %w", err)
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := projects.NewSQLiteRepository(tx).Clear(ctx); err != nil {
			return err
		}
		return metadata.NewSQLiteRepository(tx).Clear(ctx)
	})
	if err != nil {
		return 0, fmt.Errorf("delete local data: %w", err)
	}
	a.client.SetTokens("", "")

	a.logger.Info(ctx, "account data deleted", "user_id", userID, "local_projects", len(local))
	return len(local), nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close saves the current tokens, which the client may have refreshed, and
// releases the client.
func (a *authService) Close(ctx context.Context) error {
	repo := a.metadataRepo()
	userID, err := metadata.GetString(ctx, repo, metadata.KeyUserID)
	if err == nil && userID != "" {
		access, refresh := a.client.Tokens()
		err := repo.SetAll(ctx, map[string][]byte{
			metadata.KeyAccessToken:  []byte(access),
			metadata.KeyRefreshToken: []byte(refresh),
		})
		if err != nil {
			a.logger.Warn(ctx, "cannot persist tokens", "error", err)
		}
	}
	return a.client.Close()
}
