package syncengine

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
	"github.com/dmitrijs2005/draftkeeper/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCipher struct{}

func (failingCipher) Encrypt([]byte, string) ([]byte, error) {
	return nil, errors.New("entropy source exhausted")
}

func (failingCipher) Decrypt([]byte, string) ([]byte, error) {
	return nil, cryptox.ErrDecryption
}

func TestPayloadCipher_RoundTrip(t *testing.T) {
	pc := payloadCipher{c: cryptox.NewService()}
	p := project("p1", "Chapter one", at(0))
	p.Deadline = ptr(at(86400))
	p.Nudge = models.Nudge{Enabled: true, Mode: models.NudgeModeDeadline, Hour: 20, Minute: 5, MaxInactivityHours: 12}

	rec, err := pc.toCloud(p, testUser, at(10))
	require.NoError(t, err)
	assert.Equal(t, testUser, rec.UserID)
	assert.Equal(t, at(10), rec.UpdatedAt)
	assert.NotEqual(t, base64.StdEncoding.EncodeToString([]byte("Chapter one")), rec.Title)
	require.NotNil(t, rec.ContentData)

	d, err := pc.decode(rec, testUser)
	require.NoError(t, err)
	assert.Equal(t, "Chapter one", d.title)
	assert.Equal(t, p.Content, d.content)

	got := &models.Project{}
	applyCloud(got, rec, d)
	assert.Equal(t, p.Nudge, got.Nudge)
	assert.Equal(t, p.Deadline, got.Deadline)
	assert.Equal(t, p.CreatedAt, got.CreatedAt)
}

func TestPayloadCipher_NilContentStaysNil(t *testing.T) {
	pc := payloadCipher{c: cryptox.NewService()}
	p := project("p1", "Empty", at(0))
	p.Content = nil

	rec, err := pc.toCloud(p, testUser, at(1))
	require.NoError(t, err)
	assert.Nil(t, rec.ContentData)

	d, err := pc.decode(rec, testUser)
	require.NoError(t, err)
	assert.Nil(t, d.content)
}

func TestPayloadCipher_OtherUserCannotDecode(t *testing.T) {
	pc := payloadCipher{c: cryptox.NewService()}
	rec, err := pc.toCloud(project("p1", "Secret", at(0)), testUser, at(1))
	require.NoError(t, err)

	_, err = pc.decode(rec, "someone-else")
	require.ErrorIs(t, err, cryptox.ErrDecryption)
}

func TestPayloadCipher_BadBase64IsSerializationError(t *testing.T) {
	pc := payloadCipher{c: cryptox.NewService()}
	rec := &models.CloudProject{ID: "p1", Title: "%%% not base64"}

	_, err := pc.decode(rec, testUser)
	require.ErrorIs(t, err, models.ErrSerialization)
}

func TestPayloadCipher_SignedOutPassesThrough(t *testing.T) {
	pc := payloadCipher{c: failingCipher{}}

	s, err := pc.seal("", []byte("plain"))
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("plain")), s)

	b, err := pc.open("", s)
	require.NoError(t, err)
	assert.Equal(t, []byte("plain"), b)
}

func TestPayloadCipher_EncryptFailure(t *testing.T) {
	pc := payloadCipher{c: failingCipher{}}

	_, err := pc.toCloud(project("p1", "x", at(0)), testUser, at(1))
	require.ErrorIs(t, err, ErrEncryption)
}

func TestPlaceholder(t *testing.T) {
	rec := &models.CloudProject{ID: "p9", UserID: testUser, Title: "garbage", CreatedAt: at(0), LastEditedAt: at(1), UpdatedAt: at(2)}
	rec.Migrate()

	p := placeholder(rec)
	assert.Equal(t, "p9", p.ID)
	assert.Empty(t, p.Title)
	assert.Nil(t, p.Content)
	assert.True(t, p.DecryptFailed)
	assert.False(t, p.NeedsSync)
	assert.Nil(t, p.LastSyncedAt)
	assert.Equal(t, models.DefaultNudge(), p.Nudge)
}
