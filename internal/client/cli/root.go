package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	a.mu.Lock()
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.mode != "" {
		s = s + string(a.mode)
	}
	a.mu.Unlock()

	if s != "" && a.engine != nil && a.isLoggedIn() {
		s = s + " " + a.engine.Status().String()
	}
	if a.openID != "" {
		s = s + " [" + shortID(a.openID) + "]"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root restores the previous session, starts the connectivity watcher and
// runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to DraftKeeper CLI (type 'help' for commands)")

	if err := a.restore(ctx); err != nil {
		a.logger.Warn(ctx, "cannot restore session", "error", err)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// restore resumes a session left by a previous run and pulls when online.
func (a *App) restore(ctx context.Context) error {
	name, err := a.authService.RestoreSession(ctx)
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Fprintln(a.out, "Not logged in, use 'login' or 'register'")
		return nil
	}
	a.setUser(name)
	fmt.Fprintf(a.out, "Welcome back, %s\n", name)

	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err = a.authService.Ping(pctx)
	cancel()
	if err != nil {
		a.setMode(ModeOffline)
		a.engine.SetOffline()
		return nil
	}
	a.setMode(ModeOnline)
	a.pull(ctx, a.engine.OnAppLaunch)
	return nil
}

// Shutdown leaves the editor and flushes every unsynced project.
func (a *App) Shutdown(ctx context.Context) error {
	if a.openID != "" {
		_ = a.Close(ctx)
	}
	if !a.isLoggedIn() {
		return nil
	}
	if err := a.engine.OnAppBackground(ctx); err != nil {
		a.report(err)
		return err
	}
	return nil
}
