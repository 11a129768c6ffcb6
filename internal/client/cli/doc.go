// Package cli provides the interactive DraftKeeper command-line client.
//
// It wires configuration, the local database, the remote store, the sync
// engine and an interactive REPL that works online and offline. Typical flow:
// restore or create a session, start a background connectivity watcher, and
// execute user commands. Editing commands go through services.ProjectService
// so the sync engine sees every change; leaving the REPL flushes all unsynced
// projects.
//
// Key features:
//   - Register / Login / Logout (online with offline fallback), account deletion
//   - Projects: new, list, open, edit, close, delete
//   - Sync, retry and conflict resolution (keep-local / keep-cloud)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
