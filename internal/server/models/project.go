package models

import "time"

// Project is one row of the projects table. Title and ContentData hold
// client-side ciphertext (base64); the server never decrypts them.
// ContentData is stored as BYTEA, nil meaning NULL.
type Project struct {
	ID          string
	UserID      string
	Title       string
	ContentData []byte

	Deadline       *time.Time
	CreatedAt      time.Time
	LastEditedAt   time.Time
	LastProgressAt *time.Time

	NudgeEnabled       bool
	NudgeMode          string
	NudgeHour          int32
	NudgeMinute        int32
	MaxInactivityHours int32

	// UpdatedAt is the write time supplied by the client; conflict detection
	// on the client compares it with its last sync time.
	UpdatedAt  time.Time
	IsArchived bool
}
