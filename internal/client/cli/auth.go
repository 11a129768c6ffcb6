package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/draftkeeper/internal/client/client"
	"github.com/dmitrijs2005/draftkeeper/internal/common"
)

// getSimpleText, getPassword, getMultiline and getDate are indirections used
// to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getDate       = GetDate
)

// Register prompts the user for an email and password and attempts to create
// a new account via the AuthService.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Success! Now use 'login'")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// The method first attempts an online login. If the server is unavailable
// (errors.Is(err, client.ErrUnavailable)), it falls back to offline login.
// Mode becomes:
//   - ModeOnline if online login succeeds (a pull follows),
//   - ModeOffline if offline login succeeds,
//   - ModeDisabled if both fail.
//
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.authService.OnlineLogin(ctx, userName, password)
	if err == nil {
		fmt.Fprintln(a.out, "Login successful")
		a.setUser(userName)
		a.setMode(ModeOnline)
		a.pull(ctx, a.engine.OnAppLaunch)
		return nil
	}

	if !errors.Is(err, client.ErrUnavailable) {
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Server unavailable, trying offline login...")
	if err := a.authService.OfflineLogin(ctx, userName, password); err != nil {
		fmt.Fprintf(a.out, "Offline login unsuccessful: %s\n", err)
		a.setMode(ModeDisabled)
		return err
	}

	fmt.Fprintln(a.out, "Offline login successful, changes will sync when the server is back")
	a.setUser(userName)
	a.setMode(ModeOffline)
	a.engine.SetOffline()
	return nil
}

// Logout closes the editor, flushes unsynced projects while the session is
// still valid, then ends the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.Shutdown(ctx); err != nil {
		fmt.Fprintln(a.out, "Some projects are not synced yet; they stay on this device")
	}
	if err := a.authService.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %s\n", err)
		return err
	}
	a.setUser("")
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// DeleteAccount erases the remote and local data of the signed-in user after
// an explicit confirmation.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "This deletes all your projects everywhere. Type DELETE to confirm", a.out)
	if err != nil {
		return err
	}
	if answer != "DELETE" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	n, err := a.authService.DeleteAccount(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Account deletion failed: %s\n", err)
		return err
	}
	a.openID = ""
	a.setUser("")
	fmt.Fprintf(a.out, "Deleted %d local projects and all remote copies\n", n)
	return nil
}
