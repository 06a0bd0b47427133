package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/app/models/dto"
	"github.com/skilllink/skilllink/internal/app/repositories"
	"github.com/skilllink/skilllink/internal/metrics"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
)

// IAcceptedRequestService defines the interface for the acceptance workflow
type IAcceptedRequestService interface {
	Accept(ctx context.Context, requestID, acceptorID int64) (*models.AcceptedRequest, error)
	HasUserAccepted(ctx context.Context, userID, requestID int64) (bool, error)
	GetAcceptedByUser(ctx context.Context, acceptorID int64) ([]*models.AcceptedRequestDetails, error)
	GetRequestsIAskedFor(ctx context.Context, requesterID int64) ([]*models.AcceptedRequestDetails, error)
	ScheduleMeeting(ctx context.Context, id, userID int64, req *dto.ScheduleMeetingRequest) (*models.AcceptedRequest, error)
	UpdateStatus(ctx context.Context, id, userID int64, status string) (*models.AcceptedRequest, error)
}

// AcceptedRequestService handles tutors accepting and scheduling requests
type AcceptedRequestService struct {
	acceptedRepo repositories.IAcceptedRequestRepository
	requestRepo  repositories.IRequestRepository
	logger       zerolog.Logger
}

// NewAcceptedRequestService creates a new AcceptedRequestService
func NewAcceptedRequestService(
	acceptedRepo repositories.IAcceptedRequestRepository,
	requestRepo repositories.IRequestRepository,
	logger zerolog.Logger,
) *AcceptedRequestService {
	return &AcceptedRequestService{
		acceptedRepo: acceptedRepo,
		requestRepo:  requestRepo,
		logger:       logger,
	}
}

// Accept records the acceptor against an open request. The storage layer
// guarantees at most one row per (request, acceptor), so racing accepts
// resolve without a read-then-write window.
func (s *AcceptedRequestService) Accept(ctx context.Context, requestID, acceptorID int64) (*models.AcceptedRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.LearnerID == acceptorID {
		return nil, apperrors.ErrOwnRequest
	}

	accepted, err := s.acceptedRepo.Accept(ctx, requestID, acceptorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyAccepted) {
			metrics.AcceptConflictCounter.Inc()
		}
		return nil, err
	}

	metrics.RequestsAcceptedCounter.Inc()
	s.logger.Info().Int64("requestId", requestID).Int64("acceptorId", acceptorID).Msg("Request accepted")
	return accepted, nil
}

// HasUserAccepted reports whether the user already accepted the request
func (s *AcceptedRequestService) HasUserAccepted(ctx context.Context, userID, requestID int64) (bool, error) {
	return s.acceptedRepo.HasUserAccepted(ctx, userID, requestID)
}

// GetAcceptedByUser lists what the user is teaching; counterpart is the learner
func (s *AcceptedRequestService) GetAcceptedByUser(ctx context.Context, acceptorID int64) ([]*models.AcceptedRequestDetails, error) {
	return s.acceptedRepo.GetByAcceptorID(ctx, acceptorID)
}

// GetRequestsIAskedFor lists acceptances of the user's own requests;
// counterpart is the tutor who accepted
func (s *AcceptedRequestService) GetRequestsIAskedFor(ctx context.Context, requesterID int64) ([]*models.AcceptedRequestDetails, error) {
	return s.acceptedRepo.GetByRequesterID(ctx, requesterID)
}

// ScheduleMeeting stores meeting details on an acceptance and moves it to
// SCHEDULED. Allowed from PENDING and from SCHEDULED (re-scheduling);
// terminal acceptances reject.
func (s *AcceptedRequestService) ScheduleMeeting(ctx context.Context, id, userID int64, req *dto.ScheduleMeetingRequest) (*models.AcceptedRequest, error) {
	accepted, err := s.acceptedRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if accepted.AcceptorID != userID {
		return nil, apperrors.NewForbiddenError("only the acceptor can schedule this meeting")
	}

	if !accepted.Status.CanTransitionTo(models.AcceptanceScheduled) {
		return nil, apperrors.NewConflictError("meeting cannot be scheduled from status " + string(accepted.Status))
	}

	if err := s.acceptedRepo.ScheduleMeeting(ctx, id, req.ScheduleDate, req.MeetingType, req.MeetingLink); err != nil {
		return nil, err
	}

	metrics.MeetingsScheduledCounter.WithLabelValues(req.MeetingType).Inc()
	s.logger.Info().Int64("acceptedRequestId", id).Str("meetingType", req.MeetingType).Msg("Meeting scheduled")

	return s.acceptedRepo.GetByID(ctx, id)
}

// UpdateStatus moves an acceptance through its lifecycle, enforcing the
// transition table. Either side of the acceptance may update it.
func (s *AcceptedRequestService) UpdateStatus(ctx context.Context, id, userID int64, status string) (*models.AcceptedRequest, error) {
	next := models.AcceptanceStatus(status)
	if !next.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	accepted, err := s.acceptedRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	request, err := s.requestRepo.GetByID(ctx, accepted.RequestID)
	if err != nil {
		return nil, err
	}

	if accepted.AcceptorID != userID && request.LearnerID != userID {
		return nil, apperrors.NewForbiddenError("only participants can update this acceptance")
	}

	if !accepted.Status.CanTransitionTo(next) {
		return nil, apperrors.NewConflictError("transition from " + string(accepted.Status) + " to " + string(next) + " is not allowed")
	}

	if err := s.acceptedRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	return s.acceptedRepo.GetByID(ctx, id)
}
