package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/app/repositories"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
)

// IAdminService defines the interface for administrative operations
type IAdminService interface {
	GetUsers(ctx context.Context, query string) ([]*models.User, error)
	SetUserActive(ctx context.Context, userID int64, active bool) (*models.User, error)
	SetUserRole(ctx context.Context, userID int64, role string) (*models.User, error)
}

// AdminService handles user administration
type AdminService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(userRepo repositories.IUserRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUsers lists users, optionally filtered by a name/email substring
func (s *AdminService) GetUsers(ctx context.Context, query string) ([]*models.User, error) {
	return s.userRepo.Search(ctx, query)
}

// SetUserActive enables or disables an account
func (s *AdminService) SetUserActive(ctx context.Context, userID int64, active bool) (*models.User, error) {
	if err := s.userRepo.SetActive(ctx, userID, active); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", userID).Bool("active", active).Msg("User active flag changed")
	return s.userRepo.GetByID(ctx, userID)
}

// SetUserRole changes a user's role to one of the known roles
func (s *AdminService) SetUserRole(ctx context.Context, userID int64, role string) (*models.User, error) {
	newRole := models.Role(role)
	if !newRole.IsValid() {
		return nil, apperrors.NewBadRequestError("role must be Learner, Tutor or Admin")
	}

	if err := s.userRepo.SetRole(ctx, userID, newRole); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", userID).Str("role", role).Msg("User role changed")
	return s.userRepo.GetByID(ctx, userID)
}
