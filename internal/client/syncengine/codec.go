package syncengine

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
)

// Cipher is implemented by *cryptox.Service.
type Cipher interface {
	Encrypt(plaintext []byte, userID string) ([]byte, error)
	Decrypt(blob []byte, userID string) ([]byte, error)
}

// payloadCipher turns plaintext fields into base64 ciphertext and back.
// With an empty user id it passes payloads through unencrypted; the engine
// never uploads in that state.
type payloadCipher struct {
	c Cipher
}

func (pc payloadCipher) seal(userID string, plaintext []byte) (string, error) {
	if userID == "" {
		return base64.StdEncoding.EncodeToString(plaintext), nil
	}
	blob, err := pc.c.Encrypt(plaintext, userID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryption, err)
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

// open fails with models.ErrSerialization for bad base64 and with
// cryptox.ErrDecryption for a blob that does not verify.
func (pc payloadCipher) open(userID, encoded string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrSerialization, err)
	}
	if userID == "" {
		return blob, nil
	}
	return pc.c.Decrypt(blob, userID)
}

// toCloud builds the remote record of p with write time updatedAt.
func (pc payloadCipher) toCloud(p *models.Project, userID string, updatedAt time.Time) (*models.CloudProject, error) {
	title, err := pc.seal(userID, []byte(p.Title))
	if err != nil {
		return nil, err
	}

	var content *string
	if p.Content != nil {
		s, err := pc.seal(userID, p.Content)
		if err != nil {
			return nil, err
		}
		content = &s
	}

	c := &models.CloudProject{
		ID:             p.ID,
		UserID:         userID,
		Title:          title,
		ContentData:    content,
		Deadline:       p.Deadline,
		CreatedAt:      p.CreatedAt,
		LastEditedAt:   p.LastEditedAt,
		LastProgressAt: p.LastProgressAt,
		UpdatedAt:      updatedAt,
		IsArchived:     p.IsArchived,
	}
	c.SetNudge(p.Nudge)
	return c, nil
}

// decoded is the plaintext payload of a remote record.
type decoded struct {
	title   string
	content []byte
}

func (pc payloadCipher) decode(c *models.CloudProject, userID string) (decoded, error) {
	title, err := pc.open(userID, c.Title)
	if err != nil {
		return decoded{}, fmt.Errorf("title: %w", err)
	}

	var content []byte
	if c.ContentData != nil {
		content, err = pc.open(userID, *c.ContentData)
		if err != nil {
			return decoded{}, fmt.Errorf("content: %w", err)
		}
	}
	return decoded{title: string(title), content: content}, nil
}

// applyCloud overwrites the mutable fields of dst with the remote copy.
func applyCloud(dst *models.Project, c *models.CloudProject, d decoded) {
	dst.ID = c.ID
	dst.Title = d.title
	dst.Content = d.content
	dst.Deadline = c.Deadline
	dst.CreatedAt = c.CreatedAt
	dst.LastEditedAt = c.LastEditedAt
	dst.LastProgressAt = c.LastProgressAt
	dst.Nudge = c.Nudge()
	dst.IsArchived = c.IsArchived
	dst.DecryptFailed = false
	dst.SchemaVersion = models.CurrentSchemaVersion
}

// placeholder is the local stand-in for a remote record that could not be
// decrypted and has no local copy.
func placeholder(c *models.CloudProject) *models.Project {
	p := &models.Project{}
	applyCloud(p, c, decoded{})
	p.DecryptFailed = true
	p.NeedsSync = false
	p.LastSyncedAt = nil
	return p
}
