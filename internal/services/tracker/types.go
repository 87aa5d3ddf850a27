package tracker

import (
	"time"

	"github.com/coworkhq/coworkbot/internal/common/clock"
	"github.com/coworkhq/coworkbot/internal/models"
	sessionRepo "github.com/coworkhq/coworkbot/internal/repositories/session"
)

// Config holds the dependencies and tunables for the tracker service
type Config struct {
	// SessionRepo is the session persistence layer
	SessionRepo sessionRepo.Repository

	// Clock supplies the current time; injectable for tests
	Clock clock.Clock

	// LeaderboardSize is the number of users on the leaderboard (default 10)
	LeaderboardSize int

	// ServerReportSize is the number of users in the server report (default 5)
	ServerReportSize int
}

// LoginInput contains parameters for opening a session
type LoginInput struct {
	UserID   string
	Username string
}

// LoginOutput contains the result of opening a session
type LoginOutput struct {
	SessionID uint
	StartedAt time.Time
}

// LogoutInput contains parameters for closing a session.
//
// EndTime should be captured when the logout command is invoked, before any
// wait for the description, so the stored duration reflects work time rather
// than time spent typing the summary. A zero EndTime falls back to the
// service clock.
type LogoutInput struct {
	UserID      string
	EndTime     time.Time
	Description string
}

// LogoutOutput contains the result of closing a session
type LogoutOutput struct {
	SessionID       uint
	DurationMinutes int
	Description     string
}

// StatusInput contains parameters for a live status check
type StatusInput struct {
	UserID string
}

// StatusOutput contains the live view of an active session
type StatusOutput struct {
	Session         *models.Session
	DurationMinutes int
	StartedAt       time.Time
}

// GetLeaderboardInput contains parameters for the leaderboard query
type GetLeaderboardInput struct{}

// GetLeaderboardOutput contains the ranked leaderboard entries
type GetLeaderboardOutput struct {
	// Entries is ordered by total minutes descending
	Entries []*models.UserTotal
}

// GetUserReportInput contains parameters for a single-user report
type GetUserReportInput struct {
	UserID string
}

// GetUserReportOutput contains one user's rollup. Found is false when the
// user has no completed sessions; totals are meaningless in that case.
type GetUserReportOutput struct {
	Found        bool
	TotalMinutes int
	SessionCount int
}

// GetServerReportInput contains parameters for the server-wide report
type GetServerReportInput struct{}

// GetServerReportOutput contains the top users with per-user session counts
type GetServerReportOutput struct {
	Totals []*models.UserTotal
}

// ExportSessionsInput contains parameters for the full export
type ExportSessionsInput struct{}

// ExportSessionsOutput contains every completed session, newest first
type ExportSessionsOutput struct {
	Sessions []*models.Session
}
