package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/client/client"
	"github.com/dmitrijs2005/draftkeeper/internal/client/config"
	"github.com/dmitrijs2005/draftkeeper/internal/client/identity"
	"github.com/dmitrijs2005/draftkeeper/internal/client/remote"
	"github.com/dmitrijs2005/draftkeeper/internal/client/repositories"
	"github.com/dmitrijs2005/draftkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/draftkeeper/internal/client/repositories/projects"
	"github.com/dmitrijs2005/draftkeeper/internal/client/services"
	"github.com/dmitrijs2005/draftkeeper/internal/client/syncengine"
	"github.com/dmitrijs2005/draftkeeper/internal/cryptox"
	"github.com/dmitrijs2005/draftkeeper/internal/filex"
	"github.com/dmitrijs2005/draftkeeper/internal/logging"
	"github.com/jonboulle/clockwork"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

const pingTimeout = 3 * time.Second

// syncEngine is the part of *syncengine.Engine the REPL drives directly.
type syncEngine interface {
	Run(ctx context.Context)
	Status() syncengine.Status
	Pending() string
	SetOffline()
	OnAppLaunch(ctx context.Context) (*syncengine.PullReport, error)
	OnAppForeground(ctx context.Context) (*syncengine.PullReport, error)
	OnAppBackground(ctx context.Context) error
	OnResolveConflictKeepLocal(ctx context.Context, id string) error
	OnResolveConflictKeepCloud(ctx context.Context, id string) error
	Retry(ctx context.Context, id string) error
}

type App struct {
	config      *config.Config
	authService services.AuthService
	projects    services.ProjectService
	engine      syncEngine
	logger      logging.Logger
	clock       clockwork.Clock
	db          *sql.DB

	reader *bufio.Reader
	out    io.Writer

	// openID is the project in the editor; REPL goroutine only.
	openID string

	mu       sync.Mutex
	userName string
	mode     Mode
}

// NewApp opens the local database and builds the services, the remote store
// selected by cfg.RemoteBackend and the sync engine.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	dbPath, err := filex.EnsureParentDir(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	db, err := repositories.Open(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewGRPCClient(cfg.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	ident := identity.NewMetadataProvider(metadata.NewSQLiteRepository(db), logger)

	store, err := newRemoteStore(ctx, cfg, apiClient, ident, logger)
	if err != nil {
		_ = apiClient.Close()
		_ = db.Close()
		return nil, err
	}

	projectRepo := projects.NewSQLiteRepository(db)
	engine := syncengine.New(syncengine.Deps{
		Store:    projectRepo,
		Remote:   store,
		Identity: ident,
		Cipher:   cryptox.NewService(),
		Logger:   logger,
	},
		syncengine.WithDebounce(cfg.DebounceInterval),
		syncengine.WithListener(func(s syncengine.Status) {
			logger.Debug(context.Background(), "sync status changed", "status", s.String())
		}),
	)

	clock := clockwork.NewRealClock()
	return &App{
		config:      cfg,
		authService: services.NewAuthService(apiClient, store, db, logger),
		projects:    services.NewProjectService(projectRepo, engine, clock),
		engine:      engine,
		logger:      logger,
		clock:       clock,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func newRemoteStore(ctx context.Context, cfg *config.Config, c client.Client, ident identity.Provider, logger logging.Logger) (remote.Store, error) {
	switch cfg.RemoteBackend {
	case config.BackendGRPC, "":
		return remote.NewGRPCStore(c), nil
	case config.BackendS3:
		return remote.NewS3Store(ctx, remote.S3Options{
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3Endpoint,
			Bucket:       cfg.S3Bucket,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		}, ident, logger)
	default:
		return nil, fmt.Errorf("unknown remote backend %q", cfg.RemoteBackend)
	}
}

// setMode reports whether the mode changed.
func (a *App) setMode(mode Mode) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode == mode {
		return false
	}
	a.mode = mode
	a.logger.Info(context.Background(), "connectivity mode changed", "mode", string(mode))
	return true
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setUser(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.userName = name
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userName != ""
}

// Run starts the sync engine and the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	engineDone := make(chan struct{})
	go func() {
		a.engine.Run(ctx)
		close(engineDone)
	}()

	a.Root(ctx)

	cancel()
	<-engineDone
	if err := a.authService.Close(context.Background()); err != nil {
		a.logger.Warn(context.Background(), "closing client", "error", err)
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

// StartOnlineStatusWatcher pings the server every interval. Going offline
// is reported to the sync engine; coming back online triggers a pull.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := a.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.authService.Ping(pctx)
	cancel()

	if err != nil {
		if a.setMode(ModeOffline) {
			a.engine.SetOffline()
		}
		return
	}

	if a.setMode(ModeOnline) && a.isLoggedIn() {
		report, err := a.engine.OnAppForeground(ctx)
		if err != nil {
			a.logger.Warn(ctx, "pull after reconnect failed", "error", err)
			return
		}
		if report != nil && len(report.Conflicts) > 0 {
			a.logger.Warn(ctx, "conflicts after reconnect", "ids", report.Conflicts)
		}
	}
}
