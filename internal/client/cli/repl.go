package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
// Commands taking an id prompt for it when called with "".
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error

	New(ctx context.Context) error
	List(ctx context.Context) error
	Open(ctx context.Context, id string) error
	Edit(ctx context.Context) error
	Close(ctx context.Context) error
	Delete(ctx context.Context, id string) error

	Sync(ctx context.Context) error
	Retry(ctx context.Context, id string) error
	KeepLocal(ctx context.Context, id string) error
	KeepCloud(ctx context.Context, id string) error
	ShowStatus(ctx context.Context) error

	Shutdown(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the DraftKeeper CLI.
//
// It reads a line from reader, parses the first token as the command and the
// optional second token as a project id, and dispatches to methods on 'a'.
// The loop exits on EOF or when the user types "exit" or "quit"; both paths
// call Shutdown so unsynced work is flushed.
//
// Prompt & Commands
//
//	Not logged in:
//	  - help                    show available commands
//	  - register                create an account
//	  - login                   authenticate (offline fallback)
//	  - exit | quit             leave the program
//
//	Logged in:
//	  - new                     create a project and open it
//	  - (l)ist                  list projects
//	  - open <id>               open a project in the editor
//	  - edit                    change the open project
//	  - close                   leave the editor (pushes unsynced edits)
//	  - delete <id>             delete a project
//	  - sync                    push everything unsynced, then pull
//	  - retry <id>              push one project again
//	  - keep-local <id>         resolve a conflict with the local copy
//	  - keep-cloud <id>         resolve a conflict with the remote copy
//	  - status                  show the sync status
//	  - logout | deleteaccount
//	  - exit | quit
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	defer func() { _ = a.Shutdown(ctx) }()

	for {
		printlnFn(fmt.Sprintf("dk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: register, login, exit")
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: new, (l)ist, open, edit, close, delete, sync, retry, keep-local, keep-cloud, status, logout, deleteaccount, exit")

		case "new":
			_ = a.New(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "open", "show":
			_ = a.Open(ctx, arg)

		case "edit":
			_ = a.Edit(ctx)

		case "close":
			_ = a.Close(ctx)

		case "delete":
			_ = a.Delete(ctx, arg)

		case "sync":
			_ = a.Sync(ctx)

		case "retry":
			_ = a.Retry(ctx, arg)

		case "keep-local":
			_ = a.KeepLocal(ctx, arg)

		case "keep-cloud":
			_ = a.KeepCloud(ctx, arg)

		case "status":
			_ = a.ShowStatus(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "deleteaccount":
			_ = a.DeleteAccount(ctx)

		case "register", "login":
			printlnFn("Already logged in, logout first")

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
