package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/app/models/dto"
	"github.com/skilllink/skilllink/internal/app/repositories"
	"github.com/skilllink/skilllink/internal/metrics"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
)

// IRequestService defines the interface for request board operations
type IRequestService interface {
	Create(ctx context.Context, learnerID int64, req *dto.CreateRequestRequest) (*models.RequestWithUser, error)
	GetByID(ctx context.Context, id int64) (*models.RequestWithUser, error)
	GetAll(ctx context.Context) ([]*models.RequestWithUser, error)
	GetByLearnerID(ctx context.Context, learnerID int64) ([]*models.RequestWithUser, error)
	Search(ctx context.Context, query string) ([]*models.RequestWithUser, error)
	Update(ctx context.Context, id, userID int64, req *dto.UpdateRequestRequest) (*models.RequestWithUser, error)
	UpdateStatus(ctx context.Context, id, userID int64, status string) error
	Delete(ctx context.Context, id, userID int64) error
}

// RequestService handles the learner request board
type RequestService struct {
	requestRepo repositories.IRequestRepository
	logger      zerolog.Logger
}

// NewRequestService creates a new RequestService
func NewRequestService(requestRepo repositories.IRequestRepository, logger zerolog.Logger) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// Create posts a new request on the board with status OPEN
func (s *RequestService) Create(ctx context.Context, learnerID int64, req *dto.CreateRequestRequest) (*models.RequestWithUser, error) {
	skillName := strings.TrimSpace(req.SkillName)
	if skillName == "" {
		return nil, apperrors.NewBadRequestError("skill name cannot be empty")
	}

	request := &models.Request{
		LearnerID:   learnerID,
		SkillName:   skillName,
		Topic:       req.Topic,
		Description: req.Description,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	metrics.RequestsCreatedCounter.Inc()
	s.logger.Info().Int64("requestId", request.ID).Int64("learnerId", learnerID).Msg("Request created")

	return s.requestRepo.GetByID(ctx, request.ID)
}

// GetByID retrieves a single request with requester identity
func (s *RequestService) GetByID(ctx context.Context, id int64) (*models.RequestWithUser, error) {
	return s.requestRepo.GetByID(ctx, id)
}

// GetAll lists the whole board newest first
func (s *RequestService) GetAll(ctx context.Context) ([]*models.RequestWithUser, error) {
	return s.requestRepo.GetAll(ctx)
}

// GetByLearnerID lists a learner's own requests
func (s *RequestService) GetByLearnerID(ctx context.Context, learnerID int64) ([]*models.RequestWithUser, error) {
	return s.requestRepo.GetByLearnerID(ctx, learnerID)
}

// Search filters the board by a free-text query
func (s *RequestService) Search(ctx context.Context, query string) ([]*models.RequestWithUser, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.requestRepo.GetAll(ctx)
	}
	return s.requestRepo.Search(ctx, query)
}

// Update edits a request's content. Only the owning learner may edit, and
// status is not touched here.
func (s *RequestService) Update(ctx context.Context, id, userID int64, req *dto.UpdateRequestRequest) (*models.RequestWithUser, error) {
	existing, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.LearnerID != userID {
		return nil, apperrors.NewForbiddenError("only the request owner can edit it")
	}

	skillName := strings.TrimSpace(req.SkillName)
	if skillName == "" {
		return nil, apperrors.NewBadRequestError("skill name cannot be empty")
	}

	if err := s.requestRepo.Update(ctx, id, skillName, req.Topic, req.Description); err != nil {
		return nil, err
	}

	return s.requestRepo.GetByID(ctx, id)
}

// UpdateStatus moves a request through its lifecycle. The status value must
// belong to the closed enumeration.
func (s *RequestService) UpdateStatus(ctx context.Context, id, userID int64, status string) error {
	requestStatus := models.RequestStatus(status)
	if !requestStatus.IsValid() {
		return apperrors.ErrInvalidStatus
	}

	existing, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.LearnerID != userID {
		return apperrors.NewForbiddenError("only the request owner can change its status")
	}

	return s.requestRepo.UpdateStatus(ctx, id, requestStatus)
}

// Delete removes a request; acceptances and sessions cascade at the storage level
func (s *RequestService) Delete(ctx context.Context, id, userID int64) error {
	existing, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.LearnerID != userID {
		return apperrors.NewForbiddenError("only the request owner can delete it")
	}

	if err := s.requestRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("requestId", id).Msg("Request deleted")
	return nil
}
