package projects

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
	"github.com/dmitrijs2005/draftkeeper/internal/client/repositories"
	"github.com/dmitrijs2005/draftkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 10, 0, 0, 123456789, time.UTC)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := repositories.Open(context.Background(), fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newProject(id, title string) *models.Project {
	p := models.NewProject(title, []byte("body of "+title), t0)
	p.ID = id
	return p
}

func TestInsertAndFetchByID_RoundTripsAllFields(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	deadline := t0.Add(72 * time.Hour)
	progress := t0.Add(-time.Hour)
	synced := t0.Add(-2 * time.Hour)
	p := newProject("p1", "Novel")
	p.Deadline = &deadline
	p.LastProgressAt = &progress
	p.LastSyncedAt = &synced
	p.Nudge = models.Nudge{Enabled: false, Mode: models.NudgeModeDeadline, Hour: 21, Minute: 30, MaxInactivityHours: 12}
	p.IsArchived = true
	p.DecryptFailed = true

	require.NoError(t, r.Insert(ctx, p))

	got, err := r.FetchByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestFetchByID_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.FetchByID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFetchAll_AndFetchDirty_OrderedByID(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	clean := newProject("b", "Clean")
	clean.NeedsSync = false
	require.NoError(t, r.Insert(ctx, newProject("c", "Third")))
	require.NoError(t, r.Insert(ctx, clean))
	require.NoError(t, r.Insert(ctx, newProject("a", "First")))

	all, err := r.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a", "b", "c"}, ids(all))

	dirty, err := r.FetchDirty(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, ids(dirty))
}

func TestUpdate_BumpsRevision(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	p := newProject("p1", "Draft")
	require.NoError(t, r.Insert(ctx, p))

	p.Title = "Draft v2"
	p.Touch(t0.Add(time.Minute))
	require.NoError(t, r.Update(ctx, p))
	assert.Equal(t, int64(1), p.Revision)

	require.NoError(t, r.Update(ctx, p))
	assert.Equal(t, int64(2), p.Revision)

	got, err := r.FetchByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Draft v2", got.Title)
	assert.Equal(t, int64(2), got.Revision)
	assert.Equal(t, t0.Add(time.Minute), got.LastEditedAt)
}

func TestUpdate_Missing(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	err := r.Update(context.Background(), newProject("ghost", "x"))
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate_KeepsSyncStateOfStaleCopy(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	p := newProject("p1", "Draft")
	require.NoError(t, r.Insert(ctx, p))
	stale, err := r.FetchByID(ctx, "p1")
	require.NoError(t, err)

	synced := t0.Add(time.Minute)
	ok, err := r.MarkSynced(ctx, "p1", p.Revision, synced)
	require.NoError(t, err)
	require.True(t, ok)

	stale.Title = "Draft v2"
	stale.NeedsSync = false
	stale.DecryptFailed = true
	stale.Touch(t0.Add(2 * time.Minute))
	require.NoError(t, r.Update(ctx, stale))

	require.NotNil(t, stale.LastSyncedAt)
	assert.Equal(t, synced, *stale.LastSyncedAt)
	assert.True(t, stale.NeedsSync)
	assert.False(t, stale.DecryptFailed)

	got, err := r.FetchByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Draft v2", got.Title)
	assert.True(t, got.NeedsSync)
	assert.False(t, got.DecryptFailed)
	require.NotNil(t, got.LastSyncedAt)
	assert.Equal(t, synced, *got.LastSyncedAt)
	assert.Equal(t, p.CreatedAt, got.CreatedAt)
	assert.Equal(t, stale.Revision, got.Revision)
}

func TestMarkDirty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	p := newProject("p1", "Draft")
	p.NeedsSync = false
	require.NoError(t, r.Insert(ctx, p))
	require.NoError(t, r.MarkDirty(ctx, "p1"))

	got, err := r.FetchByID(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, got.NeedsSync)
	assert.Equal(t, int64(1), got.Revision)

	require.ErrorIs(t, r.MarkDirty(ctx, "missing"), common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, newProject("p1", "Draft")))
	require.NoError(t, r.Delete(ctx, "p1"))

	_, err := r.FetchByID(ctx, "p1")
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.ErrorIs(t, r.Delete(ctx, "p1"), common.ErrorNotFound)
}

func TestClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, newProject("a", "A")))
	require.NoError(t, r.Insert(ctx, newProject("b", "B")))
	require.NoError(t, r.Clear(ctx))

	all, err := r.FetchAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSave_InsertsWhenAbsent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	ok, err := r.Save(ctx, newProject("p1", "Pulled"))
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := r.FetchByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Pulled", got.Title)
}

func TestSave_CompareAndSetOnRevision(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	p := newProject("p1", "Draft")
	require.NoError(t, r.Insert(ctx, p))

	stale := p.Clone()

	// editor writes in between
	p.Title = "Edited"
	require.NoError(t, r.Update(ctx, p))

	stale.Title = "From cloud"
	ok, err := r.Save(ctx, stale)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := r.FetchByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Edited", got.Title)

	fresh := got.Clone()
	fresh.Title = "From cloud"
	ok, err = r.Save(ctx, fresh)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = r.FetchByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "From cloud", got.Title)
	assert.Equal(t, int64(2), got.Revision)
}

func TestSaveAll_ReportsSkippedAndCommits(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	existing := newProject("a", "A")
	require.NoError(t, r.Insert(ctx, existing))
	moved := newProject("b", "B")
	require.NoError(t, r.Insert(ctx, moved))
	require.NoError(t, r.Update(ctx, moved))

	a := existing.Clone()
	a.Title = "A from cloud"
	b := moved.Clone()
	b.Revision = 0
	b.Title = "B from cloud"
	c := newProject("c", "C from cloud")

	skipped, err := r.SaveAll(ctx, []*models.Project{a, b, c})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, skipped)

	all, err := r.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "A from cloud", all[0].Title)
	assert.Equal(t, "B", all[1].Title)
	assert.Equal(t, "C from cloud", all[2].Title)
}

func TestSaveAll_RollsBackOnError(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	good := newProject("a", "A")
	bad := newProject("b", "B")
	_, err := db.Exec(`CREATE TRIGGER reject_b BEFORE INSERT ON projects WHEN NEW.id = 'b'
		BEGIN SELECT RAISE(ABORT, 'rejected'); END`)
	require.NoError(t, err)

	_, err = r.SaveAll(ctx, []*models.Project{good, bad})
	require.ErrorContains(t, err, "rejected")

	all, err := r.FetchAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSaveAll_Empty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	skipped, err := r.SaveAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, skipped)
}

func TestMarkSynced_ClearsDirtyWhenRevisionMatches(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	p := newProject("p1", "Draft")
	require.NoError(t, r.Insert(ctx, p))

	at := t0.Add(time.Hour)
	cleared, err := r.MarkSynced(ctx, "p1", p.Revision, at)
	require.NoError(t, err)
	assert.True(t, cleared)

	got, err := r.FetchByID(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, got.NeedsSync)
	require.NotNil(t, got.LastSyncedAt)
	assert.Equal(t, at, *got.LastSyncedAt)
	assert.Equal(t, p.Revision, got.Revision)
}

func TestMarkSynced_KeepsDirtyAfterConcurrentEdit(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	p := newProject("p1", "Draft")
	require.NoError(t, r.Insert(ctx, p))
	pushed := p.Revision

	p.Title = "typed during push"
	require.NoError(t, r.Update(ctx, p))

	at := t0.Add(time.Hour)
	cleared, err := r.MarkSynced(ctx, "p1", pushed, at)
	require.NoError(t, err)
	assert.False(t, cleared)

	got, err := r.FetchByID(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, got.NeedsSync)
	require.NotNil(t, got.LastSyncedAt)
	assert.Equal(t, at, *got.LastSyncedAt)
}

func TestMarkSynced_Missing(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.MarkSynced(context.Background(), "ghost", 0, t0)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRepository_DBErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.FetchAll(ctx)
	require.ErrorContains(t, err, "failed to select projects")

	_, err = r.FetchByID(ctx, "x")
	require.ErrorContains(t, err, "failed to fetch project x")

	err = r.Insert(ctx, newProject("x", "x"))
	require.ErrorContains(t, err, "failed to insert project")

	err = r.Delete(ctx, "x")
	require.ErrorContains(t, err, "failed to delete project")

	_, err = r.Save(ctx, newProject("x", "x"))
	require.ErrorContains(t, err, "failed to save project x")
}

func ids(ps []*models.Project) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}
