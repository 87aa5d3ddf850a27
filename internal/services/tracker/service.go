package tracker

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/coworkhq/coworkbot/internal/common/clock"
	sessionRepo "github.com/coworkhq/coworkbot/internal/repositories/session"
)

const (
	defaultLeaderboardSize  = 10
	defaultServerReportSize = 5
)

// service implements the Service interface
type service struct {
	config      *Config
	sessionRepo sessionRepo.Repository
	clock       clock.Clock
}

// New creates a new tracker service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.LeaderboardSize <= 0 {
		cfg.LeaderboardSize = defaultLeaderboardSize
	}

	if cfg.ServerReportSize <= 0 {
		cfg.ServerReportSize = defaultServerReportSize
	}

	return &service{
		config:      cfg,
		sessionRepo: cfg.SessionRepo,
		clock:       cfg.Clock,
	}, nil
}

// Login opens a new work session. If the user already has an active session
// the returned AlreadyActiveError carries its start time. The precondition
// check here races with concurrent logins; the store's uniqueness constraint
// decides the winner, so the loser also gets AlreadyActiveError.
func (s *service) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	now := s.clock.Now()

	active, err := s.sessionRepo.GetActiveSession(ctx, &sessionRepo.GetActiveSessionInput{
		UserID: input.UserID,
	})
	if err == nil {
		return nil, &AlreadyActiveError{StartedAt: active.StartTime()}
	}
	if !errors.Is(err, sessionRepo.ErrNoActiveSession) {
		return nil, err
	}

	out, err := s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
		UserID:   input.UserID,
		Username: input.Username,
		StartTS:  now.Unix(),
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionAlreadyActive) {
			// Lost the race to a concurrent login; report the winning
			// session's start time.
			winner, getErr := s.sessionRepo.GetActiveSession(ctx, &sessionRepo.GetActiveSessionInput{
				UserID: input.UserID,
			})
			if getErr == nil {
				return nil, &AlreadyActiveError{StartedAt: winner.StartTime()}
			}
			return nil, &AlreadyActiveError{StartedAt: now.UTC()}
		}
		return nil, err
	}

	return &LoginOutput{
		SessionID: out.SessionID,
		StartedAt: now.UTC(),
	}, nil
}

// Logout closes the user's active session. The duration is computed from the
// supplied end time with the same formula Status uses for live durations.
func (s *service) Logout(ctx context.Context, input *LogoutInput) (*LogoutOutput, error) {
	endTime := input.EndTime
	if endTime.IsZero() {
		endTime = s.clock.Now()
	}

	active, err := s.sessionRepo.GetActiveSession(ctx, &sessionRepo.GetActiveSessionInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrNoActiveSession) {
			return nil, ErrNotActive
		}
		return nil, err
	}

	minutes := durationMinutes(active.StartTS, endTime)
	description := strings.TrimSpace(input.Description)

	err = s.sessionRepo.CloseSession(ctx, &sessionRepo.CloseSessionInput{
		SessionID:       active.ID,
		EndTS:           endTime.Unix(),
		DurationMinutes: minutes,
		Description:     description,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotActive) {
			// Someone closed it between our read and write
			return nil, ErrNotActive
		}
		return nil, err
	}

	return &LogoutOutput{
		SessionID:       active.ID,
		DurationMinutes: minutes,
		Description:     description,
	}, nil
}

// Status reports the live duration of the user's active session without
// closing it.
func (s *service) Status(ctx context.Context, input *StatusInput) (*StatusOutput, error) {
	active, err := s.sessionRepo.GetActiveSession(ctx, &sessionRepo.GetActiveSessionInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrNoActiveSession) {
			return nil, ErrNotActive
		}
		return nil, err
	}

	return &StatusOutput{
		Session:         active,
		DurationMinutes: durationMinutes(active.StartTS, s.clock.Now()),
		StartedAt:       active.StartTime(),
	}, nil
}

// GetLeaderboard returns the top users by total completed minutes
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	out, err := s.sessionRepo.AggregateByUser(ctx, &sessionRepo.AggregateByUserInput{
		TopN: s.config.LeaderboardSize,
	})
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{
		Entries: out.Totals,
	}, nil
}

// GetUserReport returns one user's completed-session rollup. A user with no
// completed sessions yields Found == false rather than zero totals.
func (s *service) GetUserReport(ctx context.Context, input *GetUserReportInput) (*GetUserReportOutput, error) {
	out, err := s.sessionRepo.AggregateByUser(ctx, &sessionRepo.AggregateByUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	if len(out.Totals) == 0 {
		return &GetUserReportOutput{Found: false}, nil
	}

	total := out.Totals[0]
	return &GetUserReportOutput{
		Found:        true,
		TotalMinutes: total.TotalMinutes,
		SessionCount: total.SessionCount,
	}, nil
}

// GetServerReport returns the top users server-wide with session counts
func (s *service) GetServerReport(ctx context.Context, input *GetServerReportInput) (*GetServerReportOutput, error) {
	out, err := s.sessionRepo.AggregateByUser(ctx, &sessionRepo.AggregateByUserInput{
		TopN: s.config.ServerReportSize,
	})
	if err != nil {
		return nil, err
	}

	return &GetServerReportOutput{
		Totals: out.Totals,
	}, nil
}

// ExportSessions returns every completed session ordered by start descending
func (s *service) ExportSessions(ctx context.Context, input *ExportSessionsInput) (*ExportSessionsOutput, error) {
	out, err := s.sessionRepo.ListCompletedSessions(ctx, &sessionRepo.ListCompletedSessionsInput{})
	if err != nil {
		return nil, err
	}

	return &ExportSessionsOutput{
		Sessions: out.Sessions,
	}, nil
}

// durationMinutes computes round((end - start) / 60), the single duration
// formula used by both Status and Logout.
func durationMinutes(startTS int64, end time.Time) int {
	seconds := end.Unix() - startTS
	return int(math.Round(float64(seconds) / 60.0))
}
