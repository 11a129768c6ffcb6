package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/client/client"
	"github.com/dmitrijs2005/draftkeeper/internal/client/config"
	"github.com/dmitrijs2005/draftkeeper/internal/client/syncengine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_SetMode(t *testing.T) {
	a := newTestApp(t, "")

	assert.True(t, a.setMode(ModeOnline))
	assert.False(t, a.setMode(ModeOnline))
	assert.Equal(t, ModeOnline, a.getMode())

	assert.True(t, a.setMode(ModeOffline))
	assert.Equal(t, ModeOffline, a.getMode())
}

func TestApp_IsLoggedIn(t *testing.T) {
	a := newTestApp(t, "")
	assert.False(t, a.isLoggedIn())
	a.setUser("bob")
	assert.True(t, a.isLoggedIn())
	a.setUser("")
	assert.False(t, a.isLoggedIn())
}

func TestCheckOnline_GoingOfflineNotifiesEngineOnce(t *testing.T) {
	a := newTestApp(t, "")
	a.setUser("bob")
	a.setMode(ModeOnline)
	a.auth.setPingErr(client.ErrUnavailable)

	a.checkOnline(context.Background())
	a.checkOnline(context.Background())

	assert.Equal(t, ModeOffline, a.getMode())
	assert.Equal(t, []string{"offline"}, a.engine.seen())
}

func TestCheckOnline_ReconnectPullsWhenLoggedIn(t *testing.T) {
	a := newTestApp(t, "")
	a.setUser("bob")
	a.setMode(ModeOffline)
	a.engine.report = &syncengine.PullReport{Conflicts: []string{"p1"}}

	a.checkOnline(context.Background())
	a.checkOnline(context.Background())

	assert.Equal(t, ModeOnline, a.getMode())
	assert.Equal(t, []string{"foreground"}, a.engine.seen())
}

func TestCheckOnline_ReconnectSignedOutDoesNotPull(t *testing.T) {
	a := newTestApp(t, "")
	a.setMode(ModeOffline)

	a.checkOnline(context.Background())

	assert.Equal(t, ModeOnline, a.getMode())
	assert.Empty(t, a.engine.seen())
}

func TestCheckOnline_PullFailureIsLogged(t *testing.T) {
	a := newTestApp(t, "")
	a.setUser("bob")
	a.engine.pullErr = errors.New("boom")

	a.checkOnline(context.Background())

	assert.Equal(t, ModeOnline, a.getMode())
	assert.Equal(t, []string{"foreground"}, a.engine.seen())
}

func TestStartOnlineStatusWatcher_PingsOnEveryTick(t *testing.T) {
	a := newTestApp(t, "")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		a.StartOnlineStatusWatcher(ctx, time.Second)
		close(done)
	}()

	a.clock.BlockUntil(1)
	a.clock.Advance(time.Second)
	require.Eventually(t, func() bool {
		a.auth.mu.Lock()
		defer a.auth.mu.Unlock()
		return a.auth.pingCalls == 1
	}, time.Second, 5*time.Millisecond)

	a.clock.Advance(time.Second)
	require.Eventually(t, func() bool {
		a.auth.mu.Lock()
		defer a.auth.mu.Unlock()
		return a.auth.pingCalls == 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestNewRemoteStore_UnknownBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.RemoteBackend = "ftp"

	_, err := newRemoteStore(context.Background(), cfg, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ftp")
}

func TestNewRemoteStore_GRPCDefault(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	s, err := newRemoteStore(context.Background(), cfg, nil, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestApp_RunClosesEverything(t *testing.T) {
	a := newTestApp(t, "exit\n")
	silencePrintln(t)
	a.config.OnlineCheckInterval = time.Hour

	a.Run(context.Background())

	assert.True(t, a.auth.closed)
	assert.Contains(t, a.output.String(), "Welcome to DraftKeeper CLI")
	assert.Contains(t, a.output.String(), "Not logged in")
}
