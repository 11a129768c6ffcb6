// Package models defines the client-side records of DraftKeeper: the local
// Project and its wire counterpart CloudProject.
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// CurrentSchemaVersion is the record layout version written by this build.
// Version 1 records may lack nudge settings; Migrate fills them in.
const CurrentSchemaVersion = 2

// ErrSerialization marks a malformed wire payload (bad base64, bad JSON).
var ErrSerialization = errors.New("malformed payload")

// NudgeMode selects how reminders are scheduled for a project.
type NudgeMode string

const (
	NudgeModeDaily      NudgeMode = "daily"
	NudgeModeInactivity NudgeMode = "inactivity"
	NudgeModeDeadline   NudgeMode = "deadline"
)

// Valid reports whether m is a known mode.
func (m NudgeMode) Valid() bool {
	switch m {
	case NudgeModeDaily, NudgeModeInactivity, NudgeModeDeadline:
		return true
	}
	return false
}

// Nudge is the reminder configuration. It is owned by notification
// scheduling; sync only carries it.
type Nudge struct {
	Enabled            bool
	Mode               NudgeMode
	Hour               int
	Minute             int
	MaxInactivityHours int
}

// DefaultNudge is what records created before nudges existed receive.
func DefaultNudge() Nudge {
	return Nudge{
		Enabled:            true,
		Mode:               NudgeModeDaily,
		Hour:               9,
		Minute:             0,
		MaxInactivityHours: 48,
	}
}

// Project is the canonical local record. Title and Content are plaintext.
type Project struct {
	// ID is assigned at creation and never changes; it is the join key with
	// the remote copy.
	ID string

	Title   string
	Content []byte

	Deadline       *time.Time
	CreatedAt      time.Time
	LastEditedAt   time.Time
	LastProgressAt *time.Time

	Nudge      Nudge
	IsArchived bool

	// NeedsSync is set by every local mutation and cleared only by a
	// confirmed push of that exact state.
	NeedsSync bool
	// LastSyncedAt is the time of the last confirmed push or pull; nil if
	// the record was never synced.
	LastSyncedAt *time.Time

	// Revision is a local mutation counter maintained by the store.
	Revision int64
	// DecryptFailed is set when the remote copy could not be decrypted.
	DecryptFailed bool

	SchemaVersion int
}

// NewProject returns a dirty, never-synced project with a fresh id.
func NewProject(title string, content []byte, now time.Time) *Project {
	now = now.UTC()
	return &Project{
		ID:            uuid.NewString(),
		Title:         title,
		Content:       content,
		CreatedAt:     now,
		LastEditedAt:  now,
		Nudge:         DefaultNudge(),
		NeedsSync:     true,
		SchemaVersion: CurrentSchemaVersion,
	}
}

// Touch records a local edit at now.
func (p *Project) Touch(now time.Time) {
	p.LastEditedAt = now.UTC()
	p.NeedsSync = true
}

// Clone returns a deep copy.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	c := *p
	if p.Content != nil {
		c.Content = append([]byte(nil), p.Content...)
	}
	c.Deadline = cloneTime(p.Deadline)
	c.LastProgressAt = cloneTime(p.LastProgressAt)
	c.LastSyncedAt = cloneTime(p.LastSyncedAt)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// ViewOverview is a list row shown by the CLI.
type ViewOverview struct {
	ID           string
	Title        string
	NeedsSync    bool
	IsArchived   bool
	LastEditedAt time.Time
	Flag         string
}
