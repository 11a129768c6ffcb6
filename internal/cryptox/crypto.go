// Package cryptox implements the per-user payload encryption used before
// project data leaves the device, plus the password-derived verifier used by
// the login flow.
//
// Payload keys are derived with HKDF-SHA256 from the user id, a fixed
// application salt and a context label, so any session of the same user can
// re-derive the key without storing it. Payloads are sealed with AES-256-GCM;
// the output blob is nonce ∥ ciphertext ∥ tag.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the derived key length (AES-256).
	KeySize = 32
	// NonceSize is the GCM nonce length.
	NonceSize = 12
	// TagSize is the GCM authentication tag length.
	TagSize = 16

	// KeyContextLabel binds derived keys to their purpose.
	KeyContextLabel = "draftkeeper/project-payload/v1"
)

// AppKeySalt is the application-wide HKDF salt. Changing it makes every
// previously uploaded payload unreadable.
var AppKeySalt = []byte("draftkeeper.app-salt.2024-05.c1f0a7e2")

var (
	// ErrDecryption is returned when a blob cannot be opened: wrong key,
	// corrupted data, or a blob not produced by Encrypt.
	ErrDecryption = errors.New("decryption failed")
	// ErrEmptyUserID is returned when a key is requested for an empty user id.
	ErrEmptyUserID = errors.New("empty user id")
)

// DeriveKey returns the 256-bit payload key for userID.
func DeriveKey(userID string) ([]byte, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	r := hkdf.New(sha256.New, []byte(userID), AppKeySalt, []byte(KeyContextLabel))
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("hkdf: %w", err)
	}
	return key, nil
}

// Service encrypts and decrypts payloads for a given user. Derived keys are
// cached per user id. The zero value is not usable; call NewService.
type Service struct {
	rand io.Reader

	mu   sync.Mutex
	keys map[string]cipher.AEAD
}

// Option configures a Service.
type Option func(*Service)

// WithRandom replaces the nonce source (crypto/rand by default).
func WithRandom(r io.Reader) Option {
	return func(s *Service) { s.rand = r }
}

func NewService(opts ...Option) *Service {
	s := &Service{rand: rand.Reader, keys: make(map[string]cipher.AEAD)}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) aead(userID string) (cipher.AEAD, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.keys[userID]; ok {
		return a, nil
	}

	key, err := DeriveKey(userID)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	a, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	s.keys[userID] = a
	return a, nil
}

// Encrypt seals plaintext under userID's key with a fresh random nonce and
// returns nonce ∥ ciphertext ∥ tag.
func (s *Service) Encrypt(plaintext []byte, userID string) ([]byte, error) {
	a, err := s.aead(userID)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if _, err := io.ReadFull(s.rand, nonce); err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}

	return a.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a blob produced by Encrypt for the same userID.
// Every failure wraps ErrDecryption.
func (s *Service) Decrypt(blob []byte, userID string) ([]byte, error) {
	if len(blob) < NonceSize+TagSize {
		return nil, fmt.Errorf("%w: blob too short (%d bytes)", ErrDecryption, len(blob))
	}

	a, err := s.aead(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	nonce, sealed := blob[:NonceSize], blob[NonceSize:]
	plaintext, err := a.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

// MakeVerifier returns the server-side verifier for a password-derived key.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// DeriveMasterKey stretches a password with argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}
