package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/app/models/dto"
	"github.com/skilllink/skilllink/internal/app/repositories"
	"github.com/skilllink/skilllink/internal/metrics"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
)

// ISessionService defines the interface for session record operations
type ISessionService interface {
	Create(ctx context.Context, req *dto.CreateSessionRequest) (*models.Session, error)
	GetByID(ctx context.Context, id int64) (*models.Session, error)
	GetAll(ctx context.Context) ([]*models.Session, error)
	GetByTutorID(ctx context.Context, tutorID int64) ([]*models.Session, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Session, error)
	Delete(ctx context.Context, id int64) error
}

// SessionService handles standalone session records
type SessionService struct {
	sessionRepo repositories.ISessionRepository
	requestRepo repositories.IRequestRepository
	logger      zerolog.Logger
}

// NewSessionService creates a new SessionService
func NewSessionService(
	sessionRepo repositories.ISessionRepository,
	requestRepo repositories.IRequestRepository,
	logger zerolog.Logger,
) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// Create records a session against an existing request. Status defaults to
// PENDING when omitted.
func (s *SessionService) Create(ctx context.Context, req *dto.CreateSessionRequest) (*models.Session, error) {
	status := models.AcceptancePending
	if req.Status != "" {
		status = models.AcceptanceStatus(req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
	}

	if _, err := s.requestRepo.GetByID(ctx, req.RequestID); err != nil {
		return nil, err
	}

	session := &models.Session{
		RequestID:   req.RequestID,
		TutorID:     req.TutorID,
		ScheduledAt: req.ScheduledAt,
		Status:      status,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	metrics.SessionsCreatedCounter.Inc()
	s.logger.Info().Int64("sessionId", session.ID).Int64("requestId", session.RequestID).Msg("Session created")
	return session, nil
}

// GetByID retrieves a session
func (s *SessionService) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	return s.sessionRepo.GetByID(ctx, id)
}

// GetAll lists all sessions
func (s *SessionService) GetAll(ctx context.Context) ([]*models.Session, error) {
	return s.sessionRepo.GetAll(ctx)
}

// GetByTutorID lists a tutor's sessions
func (s *SessionService) GetByTutorID(ctx context.Context, tutorID int64) ([]*models.Session, error) {
	return s.sessionRepo.GetByTutorID(ctx, tutorID)
}

// UpdateStatus sets a session's status, enforcing the transition table
func (s *SessionService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Session, error) {
	next := models.AcceptanceStatus(status)
	if !next.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !session.Status.CanTransitionTo(next) {
		return nil, apperrors.NewConflictError("transition from " + string(session.Status) + " to " + string(next) + " is not allowed")
	}

	if err := s.sessionRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	return s.sessionRepo.GetByID(ctx, id)
}

// Delete removes a session record
func (s *SessionService) Delete(ctx context.Context, id int64) error {
	return s.sessionRepo.Delete(ctx, id)
}
