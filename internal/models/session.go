package models

import (
	"time"
)

// Session represents one login-to-logout work interval for a user.
// A session with no EndTS is the user's active session; at most one
// active session may exist per user at any time.
type Session struct {
	// ID is the store-assigned identifier for this session
	ID uint `gorm:"primaryKey"`

	// UserID is the Discord user ID that owns this session
	UserID string `gorm:"column:user_id;not null;index:idx_sessions_user;uniqueIndex:idx_sessions_active_user,where:end_ts IS NULL"`

	// Username is the display name captured at session start.
	// It is a snapshot and is not updated if the user renames.
	Username string `gorm:"column:username"`

	// StartTS is the unix epoch second the session opened
	StartTS int64 `gorm:"column:start_ts;not null"`

	// EndTS is the unix epoch second the session closed; nil while active
	EndTS *int64 `gorm:"column:end_ts"`

	// DurationMinutes is computed once at close; nil while active
	DurationMinutes *int `gorm:"column:duration_minutes"`

	// Description is the free-text task summary supplied at close
	Description *string `gorm:"column:description"`

	// CreatedAt is the unix epoch second the row was created
	CreatedAt int64 `gorm:"column:created_at;autoCreateTime"`
}

// TableName keeps the table name stable regardless of model renames.
func (Session) TableName() string {
	return "sessions"
}

// Completed reports whether the session has been closed.
func (s *Session) Completed() bool {
	return s.EndTS != nil && s.DurationMinutes != nil
}

// StartTime returns the session start as a time.Time in UTC.
func (s *Session) StartTime() time.Time {
	return time.Unix(s.StartTS, 0).UTC()
}
