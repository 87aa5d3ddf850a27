package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/coworkhq/coworkbot/internal/models"
)

// ErrNoActiveSession is returned when a user has no active session
var ErrNoActiveSession = errors.New("no active session found")

// ErrSessionAlreadyActive is returned when creating a session would leave a
// user with two active sessions. The partial unique index on
// (user_id) WHERE end_ts IS NULL raises this even when two logins race.
var ErrSessionAlreadyActive = errors.New("user already has an active session")

// ErrSessionNotActive is returned when closing a session that is already
// closed or does not exist. A second close must never overwrite the first.
var ErrSessionNotActive = errors.New("session is not active")

// Config holds configuration for the GORM session repository
type Config struct {
	// DB is an open GORM handle; the repository owns the sessions schema
	DB *gorm.DB

	// Logger is used for data-integrity anomaly reporting
	Logger *zap.Logger
}

// gormRepository implements the Repository interface backed by a SQL table
type gormRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGorm creates a new GORM-backed session repository and migrates the schema
func NewGorm(cfg *Config) (*gormRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db handle cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := cfg.DB.AutoMigrate(&models.Session{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sessions table: %w", err)
	}

	return &gormRepository{
		db:     cfg.DB,
		logger: logger,
	}, nil
}

// CreateSession persists a new active session. The caller is expected to have
// checked for an existing active session; the unique index is the backstop.
func (r *gormRepository) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	session := &models.Session{
		UserID:   input.UserID,
		Username: input.Username,
		StartTS:  input.StartTS,
	}

	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSessionAlreadyActive
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &CreateSessionOutput{
		SessionID: session.ID,
	}, nil
}

// GetActiveSession retrieves the unique session with no end time for a user.
// If the invariant has somehow been violated and multiple active rows exist,
// the most recently started one wins and the anomaly is logged.
func (r *gormRepository) GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*models.Session, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	var sessions []*models.Session
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND end_ts IS NULL", input.UserID).
		Order("start_ts DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}

	if len(sessions) == 0 {
		return nil, ErrNoActiveSession
	}

	if len(sessions) > 1 {
		r.logger.Warn("multiple active sessions for user, using most recent",
			zap.String("user_id", input.UserID),
			zap.Int("active_count", len(sessions)))
	}

	return sessions[0], nil
}

// CloseSession sets the three close fields atomically. Only an active row can
// be closed; zero rows affected means the session was already closed.
func (r *gormRepository) CloseSession(ctx context.Context, input *CloseSessionInput) error {
	if input == nil || input.SessionID == 0 {
		return errors.New("input and session ID cannot be empty")
	}

	tx := r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ? AND end_ts IS NULL", input.SessionID).
		Updates(map[string]interface{}{
			"end_ts":           input.EndTS,
			"duration_minutes": input.DurationMinutes,
			"description":      input.Description,
		})
	if tx.Error != nil {
		return fmt.Errorf("failed to close session: %w", tx.Error)
	}

	if tx.RowsAffected == 0 {
		return ErrSessionNotActive
	}

	return nil
}

// ListCompletedSessions retrieves completed sessions ordered by start time
// descending, optionally filtered to one user.
func (r *gormRepository) ListCompletedSessions(ctx context.Context, input *ListCompletedSessionsInput) (*ListCompletedSessionsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	query := r.db.WithContext(ctx).
		Where("duration_minutes IS NOT NULL").
		Order("start_ts DESC")

	if input.UserID != "" {
		query = query.Where("user_id = ?", input.UserID)
	}

	var sessions []*models.Session
	if err := query.Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list completed sessions: %w", err)
	}

	return &ListCompletedSessionsOutput{
		Sessions: sessions,
	}, nil
}

// AggregateByUser sums duration_minutes grouped by (user_id, username) over
// completed sessions only, ordered by total descending.
func (r *gormRepository) AggregateByUser(ctx context.Context, input *AggregateByUserInput) (*AggregateByUserOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	query := r.db.WithContext(ctx).
		Model(&models.Session{}).
		Select("user_id, username, SUM(duration_minutes) AS total_minutes, COUNT(id) AS session_count").
		Where("duration_minutes IS NOT NULL").
		Group("user_id, username").
		Order("total_minutes DESC")

	if input.UserID != "" {
		query = query.Where("user_id = ?", input.UserID)
	}

	if input.TopN > 0 {
		query = query.Limit(input.TopN)
	}

	var totals []*models.UserTotal
	if err := query.Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate sessions: %w", err)
	}

	return &AggregateByUserOutput{
		Totals: totals,
	}, nil
}
