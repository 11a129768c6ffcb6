package syncengine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/client/identity"
	"github.com/dmitrijs2005/draftkeeper/internal/client/remote"
	"github.com/dmitrijs2005/draftkeeper/internal/client/repositories/projects"
	"github.com/dmitrijs2005/draftkeeper/internal/logging"
	"github.com/jonboulle/clockwork"
)

const (
	DefaultDebounce = 30 * time.Second
	queueSize       = 64
)

// Deps are the collaborators of the engine.
type Deps struct {
	Store    projects.Repository
	Remote   remote.Store
	Identity identity.Provider
	Cipher   Cipher
	Logger   logging.Logger
}

type Option func(*Engine)

// WithClock replaces the wall clock; tests pass a clockwork.FakeClock.
func WithClock(c clockwork.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

func WithDebounce(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.debounce = d
		}
	}
}

func WithListener(l Listener) Option {
	return func(e *Engine) { e.listener = l }
}

type job struct {
	ctx    context.Context
	fn     func(ctx context.Context) error
	result chan error
}

type Engine struct {
	store    projects.Repository
	remote   remote.Store
	identity identity.Provider
	cipher   payloadCipher
	logger   logging.Logger
	clock    clockwork.Clock
	debounce time.Duration

	jobs chan job
	done chan struct{}

	mu       sync.RWMutex
	status   Status
	listener Listener
	pending  string

	// worker-owned debounce state
	timer clockwork.Timer
	gen   uint64
}

func New(d Deps, opts ...Option) *Engine {
	e := &Engine{
		store:    d.Store,
		remote:   d.Remote,
		identity: d.Identity,
		cipher:   payloadCipher{c: d.Cipher},
		logger:   d.Logger.With("module", "sync_engine"),
		clock:    clockwork.NewRealClock(),
		debounce: DefaultDebounce,
		jobs:     make(chan job, queueSize),
		done:     make(chan struct{}),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Run executes queued jobs until ctx is canceled. It must be called once.
func (e *Engine) Run(ctx context.Context) {
	defer close(e.done)
	defer e.stopTimer()

	for {
		select {
		case <-ctx.Done():
			return
		case j := <-e.jobs:
			jctx := j.ctx
			if jctx == nil {
				jctx = ctx
			}
			err := j.fn(jctx)
			if j.result != nil {
				j.result <- err
			}
		}
	}
}

// submit queues fn and waits for its result.
func (e *Engine) submit(ctx context.Context, fn func(ctx context.Context) error) error {
	j := job{ctx: context.WithoutCancel(ctx), fn: fn, result: make(chan error, 1)}

	select {
	case e.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	case <-e.done:
		return ErrEngineStopped
	}

	select {
	case err := <-j.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-e.done:
		return ErrEngineStopped
	}
}

// enqueue queues fn without waiting. It runs with the worker context.
func (e *Engine) enqueue(fn func(ctx context.Context) error) {
	select {
	case e.jobs <- job{fn: fn}:
	case <-e.done:
	}
}

// Status returns the current status.
func (e *Engine) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status
}

// SetOffline is called by a connectivity watcher.
func (e *Engine) SetOffline() {
	e.setStatus(Status{State: StateOffline})
}

// Pending returns the id waiting for the debounce timer, or "".
func (e *Engine) Pending() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.pending
}

func (e *Engine) setStatus(s Status) {
	e.mu.Lock()
	e.status = s
	l := e.listener
	e.mu.Unlock()

	if l != nil {
		l(s)
	}
}

func (e *Engine) fail(err error) {
	e.setStatus(Status{State: StateError, Message: err.Error()})
}

func (e *Engine) setPending(id string) {
	e.mu.Lock()
	e.pending = id
	e.mu.Unlock()
}

// now is truncated to microseconds, the precision of the server database,
// so a timestamp survives a remote round trip unchanged.
func (e *Engine) now() time.Time {
	return e.clock.Now().UTC().Truncate(time.Microsecond)
}

// user returns the signed-in user id or ErrNotAuthenticated.
func (e *Engine) user(ctx context.Context) (string, error) {
	uid, ok := e.identity.CurrentUserID(ctx)
	if !ok {
		return "", ErrNotAuthenticated
	}
	return uid, nil
}

// guarded wraps a trigger body so it is skipped when nobody is signed in.
func (e *Engine) guarded(fn func(ctx context.Context, uid string) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		uid, err := e.user(ctx)
		if errors.Is(err, ErrNotAuthenticated) {
			e.logger.Debug(ctx, "trigger ignored, signed out")
			return nil
		}
		return fn(ctx, uid)
	}
}
