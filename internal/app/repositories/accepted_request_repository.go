package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
)

// IAcceptedRequestRepository defines the interface for acceptance workflow database operations
type IAcceptedRequestRepository interface {
	Accept(ctx context.Context, requestID, acceptorID int64) (*models.AcceptedRequest, error)
	HasUserAccepted(ctx context.Context, userID, requestID int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.AcceptedRequest, error)
	GetByAcceptorID(ctx context.Context, acceptorID int64) ([]*models.AcceptedRequestDetails, error)
	GetByRequesterID(ctx context.Context, requesterID int64) ([]*models.AcceptedRequestDetails, error)
	ScheduleMeeting(ctx context.Context, id int64, date time.Time, meetingType, meetingLink string) error
	UpdateStatus(ctx context.Context, id int64, status models.AcceptanceStatus) error
}

// AcceptedRequestRepository handles database operations for the acceptance workflow
type AcceptedRequestRepository struct {
	db *pgxpool.Pool
}

// NewAcceptedRequestRepository creates a new AcceptedRequestRepository
func NewAcceptedRequestRepository(db *pgxpool.Pool) *AcceptedRequestRepository {
	return &AcceptedRequestRepository{db: db}
}

// Accept records that a tutor accepted a request. The insert is conditional on
// the (request_id, acceptor_id) uniqueness constraint, so a concurrent double
// accept resolves to exactly one row and everyone else gets ErrAlreadyAccepted.
func (r *AcceptedRequestRepository) Accept(ctx context.Context, requestID, acceptorID int64) (*models.AcceptedRequest, error) {
	accepted := &models.AcceptedRequest{
		RequestID:  requestID,
		AcceptorID: acceptorID,
		Status:     models.AcceptancePending,
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO accepted_requests (request_id, acceptor_id, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (request_id, acceptor_id) DO NOTHING
		RETURNING id, accepted_at`,
		requestID, acceptorID, models.AcceptancePending).
		Scan(&accepted.ID, &accepted.AcceptedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlreadyAccepted
		}
		return nil, fmt.Errorf("error accepting request: %w", err)
	}

	return accepted, nil
}

// HasUserAccepted checks whether a user has already accepted a request
func (r *AcceptedRequestRepository) HasUserAccepted(ctx context.Context, userID, requestID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM accepted_requests WHERE acceptor_id = $1 AND request_id = $2)`,
		userID, requestID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking acceptance: %w", err)
	}

	return exists, nil
}

// GetByID retrieves an acceptance row by ID
func (r *AcceptedRequestRepository) GetByID(ctx context.Context, id int64) (*models.AcceptedRequest, error) {
	accepted := &models.AcceptedRequest{}
	err := r.db.QueryRow(ctx, `
		SELECT id, request_id, acceptor_id, accepted_at, status, schedule_date, meeting_type, meeting_link
		FROM accepted_requests
		WHERE id = $1`, id).Scan(
		&accepted.ID, &accepted.RequestID, &accepted.AcceptorID, &accepted.AcceptedAt,
		&accepted.Status, &accepted.ScheduleDate, &accepted.MeetingType, &accepted.MeetingLink,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAcceptanceNotFound
		}
		return nil, fmt.Errorf("error retrieving accepted request: %w", err)
	}

	return accepted, nil
}

// GetByAcceptorID retrieves a tutor's acceptances newest first.
// The counterpart columns carry the learner who posted the request.
func (r *AcceptedRequestRepository) GetByAcceptorID(ctx context.Context, acceptorID int64) ([]*models.AcceptedRequestDetails, error) {
	return r.queryDetails(ctx, `
		SELECT ar.id, ar.request_id, ar.acceptor_id, ar.accepted_at, ar.status,
			ar.schedule_date, ar.meeting_type, ar.meeting_link,
			r.skill_name, r.topic, r.description,
			u.id, u.full_name, u.email
		FROM accepted_requests ar
		JOIN requests r ON r.id = ar.request_id
		JOIN users u ON u.id = r.learner_id
		WHERE ar.acceptor_id = $1
		ORDER BY ar.accepted_at DESC`, acceptorID)
}

// GetByRequesterID retrieves acceptances of the learner's own requests newest
// first. The counterpart columns carry the tutor who accepted.
func (r *AcceptedRequestRepository) GetByRequesterID(ctx context.Context, requesterID int64) ([]*models.AcceptedRequestDetails, error) {
	return r.queryDetails(ctx, `
		SELECT ar.id, ar.request_id, ar.acceptor_id, ar.accepted_at, ar.status,
			ar.schedule_date, ar.meeting_type, ar.meeting_link,
			r.skill_name, r.topic, r.description,
			u.id, u.full_name, u.email
		FROM accepted_requests ar
		JOIN requests r ON r.id = ar.request_id
		JOIN users u ON u.id = ar.acceptor_id
		WHERE r.learner_id = $1
		ORDER BY ar.accepted_at DESC`, requesterID)
}

// ScheduleMeeting stores the meeting details and moves the row to SCHEDULED
func (r *AcceptedRequestRepository) ScheduleMeeting(ctx context.Context, id int64, date time.Time, meetingType, meetingLink string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accepted_requests
		SET schedule_date = $1, meeting_type = $2, meeting_link = $3, status = $4
		WHERE id = $5`,
		date, meetingType, meetingLink, models.AcceptanceScheduled, id)

	if err != nil {
		return fmt.Errorf("error scheduling meeting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAcceptanceNotFound
	}
	return nil
}

// UpdateStatus sets the acceptance lifecycle status
func (r *AcceptedRequestRepository) UpdateStatus(ctx context.Context, id int64, status models.AcceptanceStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accepted_requests SET status = $1 WHERE id = $2`, status, id)

	if err != nil {
		return fmt.Errorf("error updating acceptance status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAcceptanceNotFound
	}
	return nil
}

func (r *AcceptedRequestRepository) queryDetails(ctx context.Context, sql string, args ...any) ([]*models.AcceptedRequestDetails, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving accepted requests: %w", err)
	}
	defer rows.Close()

	var details []*models.AcceptedRequestDetails
	for rows.Next() {
		d := &models.AcceptedRequestDetails{}
		if err := rows.Scan(
			&d.ID, &d.RequestID, &d.AcceptorID, &d.AcceptedAt, &d.Status,
			&d.ScheduleDate, &d.MeetingType, &d.MeetingLink,
			&d.SkillName, &d.Topic, &d.Description,
			&d.CounterpartID, &d.CounterpartName, &d.CounterpartEmail,
		); err != nil {
			return nil, fmt.Errorf("error scanning accepted request: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}
