// Package projects is the client-side Local Store: the SQLite-backed working
// copy of every project.
//
// Two writers share the table. The editor changes content through Insert and
// Update, which always win and bump Revision. The sync engine writes through
// Save, SaveAll and MarkSynced, which are compare-and-set on Revision so an
// edit made while a push or pull was in flight is never lost.
//
// Timestamps are stored as UTC unix nanoseconds.
package projects
