package tracker

import (
	"fmt"
	"time"
)

// TrackerError is a custom error type for session tracking errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotActive      TrackerError = "no active work session"
	ErrNilConfig      TrackerError = "config cannot be nil"
	ErrNilSessionRepo TrackerError = "session repository cannot be nil"
	ErrNilClock       TrackerError = "clock cannot be nil"
)

// AlreadyActiveError is returned when a user logs in while already clocked
// in. It carries the active session's start time so the caller can show
// when the running session began.
type AlreadyActiveError struct {
	StartedAt time.Time
}

// Error implements the error interface
func (e *AlreadyActiveError) Error() string {
	return fmt.Sprintf("already clocked in since %s", e.StartedAt.UTC().Format("15:04:05"))
}
