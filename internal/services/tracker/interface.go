package tracker

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/coworkhq/coworkbot/internal/services/tracker Service

// Service defines the interface for work session tracking operations
type Service interface {
	// Login opens a new work session for a user
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout closes the user's active session with a description
	Logout(ctx context.Context, input *LogoutInput) (*LogoutOutput, error)

	// Status reports the live duration of the user's active session
	Status(ctx context.Context, input *StatusInput) (*StatusOutput, error)

	// GetLeaderboard returns the top users by total completed minutes
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetUserReport returns one user's completed-session rollup
	GetUserReport(ctx context.Context, input *GetUserReportInput) (*GetUserReportOutput, error)

	// GetServerReport returns the server-wide rollup of top users
	GetServerReport(ctx context.Context, input *GetServerReportInput) (*GetServerReportOutput, error)

	// ExportSessions returns every completed session, newest first
	ExportSessions(ctx context.Context, input *ExportSessionsInput) (*ExportSessionsOutput, error)
}
