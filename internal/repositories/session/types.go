package session

import "github.com/coworkhq/coworkbot/internal/models"

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	UserID   string
	Username string
	StartTS  int64
}

// CreateSessionOutput contains the result of creating a session
type CreateSessionOutput struct {
	SessionID uint
}

// GetActiveSessionInput contains parameters for retrieving a user's active session
type GetActiveSessionInput struct {
	UserID string
}

// CloseSessionInput contains parameters for closing a session.
// EndTS, DurationMinutes and Description are written together in one update.
type CloseSessionInput struct {
	SessionID       uint
	EndTS           int64
	DurationMinutes int
	Description     string
}

// ListCompletedSessionsInput contains parameters for listing completed sessions
type ListCompletedSessionsInput struct {
	// UserID optionally restricts the list to one user
	UserID string
}

// ListCompletedSessionsOutput contains the result of listing completed sessions
type ListCompletedSessionsOutput struct {
	Sessions []*models.Session
}

// AggregateByUserInput contains parameters for the grouped-sum query
type AggregateByUserInput struct {
	// TopN limits the number of rows returned; zero means no limit
	TopN int

	// UserID optionally restricts the aggregation to one user
	UserID string
}

// AggregateByUserOutput contains the result of the grouped-sum query
type AggregateByUserOutput struct {
	// Totals is ordered by TotalMinutes descending
	Totals []*models.UserTotal
}
