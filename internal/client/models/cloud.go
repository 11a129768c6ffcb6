package models

import "time"

// CloudProject is the remote representation of a Project. Title and
// ContentData hold base64 of ciphertext; every other field is plaintext
// metadata. UpdatedAt is the write time that drives conflict detection and
// is distinct from the user-facing LastEditedAt.
//
// Nudge fields are pointers because objects written by schema version 1
// clients do not carry them; Migrate materializes the defaults once.
type CloudProject struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	Title       string  `json:"title"`
	ContentData *string `json:"content_data"`

	Deadline       *time.Time `json:"deadline"`
	CreatedAt      time.Time  `json:"created_at"`
	LastEditedAt   time.Time  `json:"last_edited_at"`
	LastProgressAt *time.Time `json:"last_progress_at,omitempty"`

	NudgeEnabled       *bool   `json:"nudge_enabled"`
	NudgeMode          *string `json:"nudge_mode"`
	NudgeHour          *int    `json:"nudge_hour"`
	NudgeMinute        *int    `json:"nudge_minute"`
	MaxInactivityHours *int    `json:"max_inactivity_hours"`

	UpdatedAt  time.Time `json:"updated_at"`
	IsArchived bool      `json:"is_archived"`

	SchemaVersion int `json:"schema_version,omitempty"`
}

// Migrate upgrades a record read from an older writer to
// CurrentSchemaVersion by filling absent nudge settings with DefaultNudge.
// It is a no-op for current records.
func (c *CloudProject) Migrate() {
	if c.SchemaVersion >= CurrentSchemaVersion {
		return
	}
	d := DefaultNudge()
	if c.NudgeEnabled == nil {
		c.NudgeEnabled = &d.Enabled
	}
	if c.NudgeMode == nil || !NudgeMode(*c.NudgeMode).Valid() {
		m := string(d.Mode)
		c.NudgeMode = &m
	}
	if c.NudgeHour == nil {
		c.NudgeHour = &d.Hour
	}
	if c.NudgeMinute == nil {
		c.NudgeMinute = &d.Minute
	}
	if c.MaxInactivityHours == nil {
		c.MaxInactivityHours = &d.MaxInactivityHours
	}
	c.SchemaVersion = CurrentSchemaVersion
}

// Nudge returns the nudge settings of a migrated record.
func (c *CloudProject) Nudge() Nudge {
	c.Migrate()
	return Nudge{
		Enabled:            *c.NudgeEnabled,
		Mode:               NudgeMode(*c.NudgeMode),
		Hour:               *c.NudgeHour,
		Minute:             *c.NudgeMinute,
		MaxInactivityHours: *c.MaxInactivityHours,
	}
}

// SetNudge stores n into the wire fields.
func (c *CloudProject) SetNudge(n Nudge) {
	mode := string(n.Mode)
	c.NudgeEnabled = &n.Enabled
	c.NudgeMode = &mode
	c.NudgeHour = &n.Hour
	c.NudgeMinute = &n.Minute
	c.MaxInactivityHours = &n.MaxInactivityHours
	c.SchemaVersion = CurrentSchemaVersion
}
