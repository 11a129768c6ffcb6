// Package syncengine keeps the local project store and the remote store in
// step.
//
// All work runs on one worker goroutine (Engine.Run). Every trigger becomes
// a job on its queue, so status, debounce state and the sync bookkeeping of
// a record are never touched by two triggers at once. Triggers called from
// the UI wait for their job; debounce fires and remote deletes are queued
// without a waiter.
//
// Edits are pushed after a session-wide quiet period (30s by default); a
// stronger trigger (leaving the editor, backgrounding) cancels the pending
// push and pushes at once. A push never overwrites a remote copy that
// changed since the last sync while the local copy is dirty: that is a
// conflict, reported as *ConflictError and resolved only by an explicit
// keep-local or keep-cloud choice.
//
// Every trigger is a no-op while no user is signed in.
package syncengine
