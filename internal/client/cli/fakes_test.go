package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/client/config"
	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
	"github.com/dmitrijs2005/draftkeeper/internal/client/syncengine"
	"github.com/dmitrijs2005/draftkeeper/internal/common"
	"github.com/dmitrijs2005/draftkeeper/internal/logging"
	"github.com/jonboulle/clockwork"
)

// ---- fake auth ----

type fakeAuth struct {
	mu sync.Mutex

	regUser string
	regPass []byte
	regErr  error

	onlineUser string
	onlinePass []byte
	onlineErr  error

	offlineUser string
	offlineErr  error

	restoreName string
	restoreErr  error

	logoutCalled bool
	logoutErr    error

	deleteCount int
	deleteErr   error
	deleted     bool

	pingErr   error
	pingCalls int
	closed    bool
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regErr
}
func (f *fakeAuth) OnlineLogin(_ context.Context, user string, pass []byte) error {
	f.onlineUser, f.onlinePass = user, append([]byte(nil), pass...)
	return f.onlineErr
}
func (f *fakeAuth) OfflineLogin(_ context.Context, user string, _ []byte) error {
	f.offlineUser = user
	return f.offlineErr
}
func (f *fakeAuth) RestoreSession(context.Context) (string, error) {
	return f.restoreName, f.restoreErr
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuth) DeleteAccount(context.Context) (int, error) {
	f.deleted = true
	return f.deleteCount, f.deleteErr
}
func (f *fakeAuth) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingCalls++
	return f.pingErr
}
func (f *fakeAuth) setPingErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingErr = err
}
func (f *fakeAuth) Close(context.Context) error { f.closed = true; return nil }

// ---- fake projects ----

type fakeProjects struct {
	items   map[string]*models.Project
	order   []string
	list    []models.ViewOverview
	err     error
	closed  []string
	deleted []string
	edited  int
}

func newFakeProjects() *fakeProjects {
	return &fakeProjects{items: map[string]*models.Project{}}
}

func (f *fakeProjects) add(p *models.Project) {
	f.items[p.ID] = p
	f.order = append(f.order, p.ID)
}

func (f *fakeProjects) Create(_ context.Context, title string, content []byte) (*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	p := models.NewProject(title, content, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	f.add(p)
	return p, nil
}
func (f *fakeProjects) List(context.Context) ([]models.ViewOverview, error) {
	return f.list, f.err
}
func (f *fakeProjects) Get(_ context.Context, id string) (*models.Project, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return p.Clone(), nil
}
func (f *fakeProjects) Edit(_ context.Context, id string, change func(p *models.Project)) (*models.Project, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	change(p)
	p.NeedsSync = true
	f.edited++
	return p, f.err
}
func (f *fakeProjects) Close(_ context.Context, id string) error {
	f.closed = append(f.closed, id)
	return f.err
}
func (f *fakeProjects) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.items, id)
	return f.err
}

// ---- fake engine ----

type fakeEngine struct {
	mu sync.Mutex

	status  syncengine.Status
	pending string
	report  *syncengine.PullReport
	pullErr error
	pushErr error
	err     error

	calls []string
}

func (f *fakeEngine) record(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, s)
}

func (f *fakeEngine) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeEngine) Run(ctx context.Context) { <-ctx.Done() }
func (f *fakeEngine) Status() syncengine.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}
func (f *fakeEngine) Pending() string { return f.pending }
func (f *fakeEngine) SetOffline() {
	f.record("offline")
	f.mu.Lock()
	f.status = syncengine.Status{State: syncengine.StateOffline}
	f.mu.Unlock()
}
func (f *fakeEngine) OnAppLaunch(context.Context) (*syncengine.PullReport, error) {
	f.record("launch")
	return f.report, f.pullErr
}
func (f *fakeEngine) OnAppForeground(context.Context) (*syncengine.PullReport, error) {
	f.record("foreground")
	return f.report, f.pullErr
}
func (f *fakeEngine) OnAppBackground(context.Context) error {
	f.record("background")
	return f.pushErr
}
func (f *fakeEngine) OnResolveConflictKeepLocal(_ context.Context, id string) error {
	f.record("keep-local " + id)
	return f.err
}
func (f *fakeEngine) OnResolveConflictKeepCloud(_ context.Context, id string) error {
	f.record("keep-cloud " + id)
	return f.err
}
func (f *fakeEngine) Retry(_ context.Context, id string) error {
	f.record("retry " + id)
	return f.err
}

// ---- app ----

type testApp struct {
	*App
	auth     *fakeAuth
	projects *fakeProjects
	engine   *fakeEngine
	clock    *clockwork.FakeClock
	output   *bytes.Buffer
}

func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()
	fa := &fakeAuth{}
	fp := newFakeProjects()
	fe := &fakeEngine{}
	clock := clockwork.NewFakeClock()
	out := &bytes.Buffer{}

	cfg := &config.Config{}
	cfg.LoadDefaults()

	app := &App{
		config:      cfg,
		authService: fa,
		projects:    fp,
		engine:      fe,
		logger:      logging.Discard(),
		clock:       clock,
		reader:      bufio.NewReader(strings.NewReader(input)),
		out:         out,
	}
	return &testApp{App: app, auth: fa, projects: fp, engine: fe, clock: clock, output: out}
}

// stubPassword replaces the terminal prompt; every other answer is read
// from the App's input.
func stubPassword(t *testing.T, password string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() { getPassword = orig })
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}
