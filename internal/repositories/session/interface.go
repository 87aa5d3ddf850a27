package session

import (
	"context"

	"github.com/coworkhq/coworkbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/coworkhq/coworkbot/internal/repositories/session Repository

// Repository defines the interface for session data persistence
type Repository interface {
	// CreateSession persists a new active session and returns its assigned ID
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetActiveSession retrieves the session with no end time for a user
	GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*models.Session, error)

	// CloseSession sets the end time, duration and description in a single write
	CloseSession(ctx context.Context, input *CloseSessionInput) error

	// ListCompletedSessions retrieves completed sessions, newest first
	ListCompletedSessions(ctx context.Context, input *ListCompletedSessionsInput) (*ListCompletedSessionsOutput, error)

	// AggregateByUser sums completed-session minutes grouped by user
	AggregateByUser(ctx context.Context, input *AggregateByUserInput) (*AggregateByUserOutput, error)
}
