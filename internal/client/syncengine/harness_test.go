package syncengine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/client/identity"
	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
	"github.com/dmitrijs2005/draftkeeper/internal/client/remote"
	"github.com/dmitrijs2005/draftkeeper/internal/client/repositories"
	"github.com/dmitrijs2005/draftkeeper/internal/client/repositories/projects"
	"github.com/dmitrijs2005/draftkeeper/internal/cryptox"
	"github.com/dmitrijs2005/draftkeeper/internal/logging"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

const testUser = "3f1c2a4e-7b7d-4a55-9a4e-0c1d2e3f4a5b"

var t0 = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func at(sec int) time.Time {
	return t0.Add(time.Duration(sec) * time.Second)
}

func ptr(t time.Time) *time.Time {
	return &t
}

// fakeRemote is an in-memory remote.Store with failure injection.
type fakeRemote struct {
	mu      sync.Mutex
	records map[string]*models.CloudProject
	upserts []*models.CloudProject
	deletes []string

	selectErr error
	listErr   error
	upsertErr error
	deleteErr error

	// onUpsert runs before a successful upsert is recorded.
	onUpsert func(rec *models.CloudProject)
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{records: map[string]*models.CloudProject{}}
}

func (f *fakeRemote) SelectAll(_ context.Context, userID string) ([]*models.CloudProject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.CloudProject
	for _, r := range f.records {
		if r.UserID == userID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRemote) SelectByID(_ context.Context, id string) (*models.CloudProject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	r, ok := f.records[id]
	if !ok {
		return nil, fmt.Errorf("select %s: %w", id, remote.ErrNotFound)
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRemote) Upsert(_ context.Context, rec *models.CloudProject) error {
	f.mu.Lock()
	hook := f.onUpsert
	err := f.upsertErr
	f.mu.Unlock()

	if err != nil {
		f.mu.Lock()
		f.upserts = append(f.upserts, nil)
		f.mu.Unlock()
		return err
	}
	if hook != nil {
		hook(rec)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *rec
	f.records[rec.ID] = &cp
	f.upserts = append(f.upserts, &cp)
	return nil
}

func (f *fakeRemote) DeleteByID(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.records, id)
	return nil
}

func (f *fakeRemote) DeleteAllUserData(context.Context, string) error {
	return nil
}

func (f *fakeRemote) put(rec *models.CloudProject) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *rec
	f.records[rec.ID] = &cp
}

func (f *fakeRemote) get(id string) *models.CloudProject {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[id]
	if !ok {
		return nil
	}
	cp := *r
	return &cp
}

func (f *fakeRemote) upsertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.upserts)
}

func (f *fakeRemote) deleteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.deletes)
}

type harness struct {
	t        *testing.T
	engine   *Engine
	store    *projects.SQLiteRepository
	remote   *fakeRemote
	clock    *clockwork.FakeClock
	crypto   *cryptox.Service
	statusMu sync.Mutex
	statuses []Status
}

type harnessOption func(*Deps)

func withCipher(c Cipher) harnessOption {
	return func(d *Deps) { d.Cipher = c }
}

func withUser(u string) harnessOption {
	return func(d *Deps) { d.Identity = identity.Static(u) }
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()
	ctx := context.Background()

	db, err := repositories.Open(ctx, fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	h := &harness{
		t:      t,
		store:  projects.NewSQLiteRepository(db),
		remote: newFakeRemote(),
		clock:  clockwork.NewFakeClockAt(t0),
		crypto: cryptox.NewService(),
	}

	deps := Deps{
		Store:    h.store,
		Remote:   h.remote,
		Identity: identity.Static(testUser),
		Cipher:   h.crypto,
		Logger:   logging.Discard(),
	}
	for _, o := range opts {
		o(&deps)
	}

	h.engine = New(deps, WithClock(h.clock), WithListener(func(s Status) {
		h.statusMu.Lock()
		h.statuses = append(h.statuses, s)
		h.statusMu.Unlock()
	}))

	runCtx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})
	go func() {
		h.engine.Run(runCtx)
		close(stopped)
	}()
	t.Cleanup(func() {
		cancel()
		<-stopped
	})
	return h
}

// insert stores p as the editor would.
func (h *harness) insert(p *models.Project) *models.Project {
	h.t.Helper()
	require.NoError(h.t, h.store.Insert(context.Background(), p))
	return p
}

func (h *harness) load(id string) *models.Project {
	h.t.Helper()
	p, err := h.store.FetchByID(context.Background(), id)
	require.NoError(h.t, err)
	return p
}

// edit changes the title the way the editor does and notifies the engine.
func (h *harness) edit(id, title string) {
	h.t.Helper()
	ctx := context.Background()
	p := h.load(id)
	p.Title = title
	p.Touch(h.clock.Now())
	require.NoError(h.t, h.store.Update(ctx, p))
	require.NoError(h.t, h.engine.OnContentChanged(ctx, p))
}

// sealed builds the remote record of p as another device of testUser would.
func (h *harness) sealed(p *models.Project, updatedAt time.Time) *models.CloudProject {
	h.t.Helper()
	rec, err := payloadCipher{c: h.crypto}.toCloud(p, testUser, updatedAt)
	require.NoError(h.t, err)
	return rec
}

// plain decrypts the title of a remote record.
func (h *harness) plainTitle(rec *models.CloudProject) string {
	h.t.Helper()
	d, err := payloadCipher{c: h.crypto}.decode(rec, testUser)
	require.NoError(h.t, err)
	return d.title
}

// flush waits until every job queued so far has run.
func (h *harness) flush() {
	h.t.Helper()
	require.NoError(h.t, h.engine.submit(context.Background(), func(context.Context) error { return nil }))
}

func (h *harness) seenStatuses() []Status {
	h.statusMu.Lock()
	defer h.statusMu.Unlock()
	return append([]Status(nil), h.statuses...)
}

func project(id, title string, created time.Time) *models.Project {
	p := models.NewProject(title, []byte("<p>"+title+"</p>"), created)
	p.ID = id
	return p
}
