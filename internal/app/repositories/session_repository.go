package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
	"github.com/skilllink/skilllink/internal/pkg/dberrors"
)

// ISessionRepository defines the interface for session record database operations
type ISessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id int64) (*models.Session, error)
	GetAll(ctx context.Context) ([]*models.Session, error)
	GetByTutorID(ctx context.Context, tutorID int64) ([]*models.Session, error)
	UpdateStatus(ctx context.Context, id int64, status models.AcceptanceStatus) error
	Delete(ctx context.Context, id int64) error
}

// SessionRepository handles database operations for session records
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session record
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO sessions (request_id, tutor_id, scheduled_at, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		session.RequestID, session.TutorID, session.ScheduledAt, session.Status).
		Scan(&session.ID, &session.CreatedAt)

	if err != nil {
		// The request row is checked upstream, a FK failure here is the tutor.
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating session: %w", err)
	}

	return nil
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	session := &models.Session{}
	err := r.db.QueryRow(ctx, `
		SELECT id, request_id, tutor_id, scheduled_at, status, created_at
		FROM sessions
		WHERE id = $1`, id).Scan(
		&session.ID, &session.RequestID, &session.TutorID,
		&session.ScheduledAt, &session.Status, &session.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}

	return session, nil
}

// GetAll retrieves all sessions newest first
func (r *SessionRepository) GetAll(ctx context.Context) ([]*models.Session, error) {
	return r.querySessions(ctx, `
		SELECT id, request_id, tutor_id, scheduled_at, status, created_at
		FROM sessions
		ORDER BY created_at DESC`)
}

// GetByTutorID retrieves a tutor's sessions newest first
func (r *SessionRepository) GetByTutorID(ctx context.Context, tutorID int64) ([]*models.Session, error) {
	return r.querySessions(ctx, `
		SELECT id, request_id, tutor_id, scheduled_at, status, created_at
		FROM sessions
		WHERE tutor_id = $1
		ORDER BY created_at DESC`, tutorID)
}

// UpdateStatus sets the session lifecycle status
func (r *SessionRepository) UpdateStatus(ctx context.Context, id int64, status models.AcceptanceStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE sessions SET status = $1 WHERE id = $2`, status, id)

	if err != nil {
		return fmt.Errorf("error updating session status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}
	return nil
}

// Delete removes a session record
func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) querySessions(ctx context.Context, sql string, args ...any) ([]*models.Session, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		session := &models.Session{}
		if err := rows.Scan(
			&session.ID, &session.RequestID, &session.TutorID,
			&session.ScheduledAt, &session.Status, &session.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning session: %w", err)
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}
