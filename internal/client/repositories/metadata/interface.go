package metadata

import (
	"context"
)

// Keys of the session values kept in the metadata table. KeyUserID is
// present only while signed in; KeyAccountID, KeyUsername, KeySalt and
// KeyVerifier survive logout so the account can sign in offline.
const (
	KeyUserID       = "user_id"
	KeyAccountID    = "account_id"
	KeyUsername     = "username"
	KeySalt         = "salt"
	KeyVerifier     = "verifier"
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

// SessionKeys are dropped on logout.
var SessionKeys = []string{KeyUserID, KeyAccessToken, KeyRefreshToken}

// Repository is a small key/value store. Get returns (nil, nil) for an
// absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// SetAll writes every pair with one statement.
	SetAll(ctx context.Context, values map[string][]byte) error
	DeleteKeys(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
