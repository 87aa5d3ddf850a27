package models

// UserTotal represents one user's rollup over completed sessions
type UserTotal struct {
	// UserID is the Discord user ID of the user
	UserID string

	// Username is the display name recorded on the user's sessions
	Username string

	// TotalMinutes is the sum of duration_minutes across completed sessions
	TotalMinutes int

	// SessionCount is the number of completed sessions
	SessionCount int
}
