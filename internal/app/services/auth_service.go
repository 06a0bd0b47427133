package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/app/models/dto"
	"github.com/skilllink/skilllink/internal/app/repositories"
	"github.com/skilllink/skilllink/internal/metrics"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
	"github.com/skilllink/skilllink/internal/pkg/auth"
	"github.com/skilllink/skilllink/internal/pkg/email"
	"github.com/skilllink/skilllink/internal/pkg/filestorage"
	"github.com/skilllink/skilllink/internal/pkg/validation"
)

const verificationTokenTTL = 24 * time.Hour

// IAuthService defines the interface for account operations
type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest, profilePicture *multipart.FileHeader) (*dto.RegisterResponse, error)
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error)
	UpdateTeachMode(ctx context.Context, userID int64, readyToTeach bool) (*models.User, error)
	SetActive(ctx context.Context, userID int64, active bool) error
	DeleteUser(ctx context.Context, userID int64) error
}

// AuthService handles registration, verification and login
type AuthService struct {
	userRepo     repositories.IUserRepository
	jwtService   *auth.JWTService
	passwords    *auth.PasswordService
	emailService *email.Service
	storage      *filestorage.LocalStorage
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	jwtService *auth.JWTService,
	passwords *auth.PasswordService,
	emailService *email.Service,
	storage *filestorage.LocalStorage,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		passwords:    passwords,
		emailService: emailService,
		storage:      storage,
		logger:       logger,
	}
}

// Register creates an inactive-until-verified account and sends the
// verification email. A failed email send is logged, not fatal.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest, profilePicture *multipart.FileHeader) (*dto.RegisterResponse, error) {
	emailAddr := strings.TrimSpace(strings.ToLower(req.Email))

	if validation.IsDisposableEmail(emailAddr) {
		return nil, apperrors.ErrDisposableEmail
	}

	role := models.RoleLearner
	if req.Role != "" {
		role = models.Role(req.Role)
		if !role.IsValid() || role == models.RoleAdmin {
			return nil, apperrors.NewBadRequestError("role must be Learner or Tutor")
		}
	}

	exists, err := s.userRepo.EmailExists(ctx, emailAddr)
	if err != nil {
		return nil, fmt.Errorf("error checking email availability: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var picturePath *string
	if profilePicture != nil {
		path, err := s.storage.SaveFile(profilePicture)
		if err != nil {
			return nil, fmt.Errorf("error storing profile picture: %w", err)
		}
		picturePath = &path
	}

	token := uuid.New().String()
	expires := time.Now().Add(verificationTokenTTL)

	user := &models.User{
		FullName:       strings.TrimSpace(req.FullName),
		Email:          emailAddr,
		PasswordHash:   hash,
		Role:           role,
		ProfilePicture: picturePath,
		IsActive:       true,
		ReadyToTeach:   role == models.RoleTutor,
		EmailVerified:  false,
		VerifyToken:    &token,
		VerifyExpires:  &expires,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.emailService.SendVerificationEmail(user.Email, user.FullName, token); err != nil {
		s.logger.Error().Err(err).Str("email", user.Email).Msg("Failed to send verification email")
	}

	metrics.UserRegistrationCounter.Inc()
	s.logger.Info().Int64("userId", id).Str("role", string(role)).Msg("User registered")

	return &dto.RegisterResponse{
		UserID:  id,
		Message: "User registered successfully. Please check your email to verify your account.",
	}, nil
}

// VerifyEmail consumes a verification token. Tokens are one-shot and expire
// after 24 hours.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrInvalidEmailToken
	}

	user, err := s.userRepo.GetByVerificationToken(ctx, token)
	if err != nil {
		return err
	}

	if user.VerifyExpires == nil || time.Now().After(*user.VerifyExpires) {
		return apperrors.ErrInvalidEmailToken
	}

	if err := s.userRepo.MarkEmailVerified(ctx, user.ID); err != nil {
		return err
	}

	if err := s.emailService.SendWelcomeEmail(user.Email, user.FullName); err != nil {
		s.logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send welcome email")
	}

	metrics.EmailVerificationCounter.Inc()
	s.logger.Info().Int64("userId", user.ID).Msg("Email verified")
	return nil
}

// Login authenticates a user and issues an access token.
// Disabled accounts and unverified emails are rejected.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		metrics.LoginCounter.WithLabelValues("failure").Inc()
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.passwords.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		metrics.LoginCounter.WithLabelValues("failure").Inc()
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		metrics.LoginCounter.WithLabelValues("failure").Inc()
		return nil, apperrors.ErrAccountDisabled
	}
	if !user.EmailVerified {
		metrics.LoginCounter.WithLabelValues("failure").Inc()
		return nil, apperrors.ErrEmailNotVerified
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	metrics.LoginCounter.WithLabelValues("success").Inc()
	s.logger.Info().Int64("userId", user.ID).Msg("User logged in")

	return &dto.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.jwtService.TokenExpiry().Seconds()),
	}, nil
}

// GetUserByID retrieves a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile updates the user's name, bio and location
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, apperrors.NewBadRequestError("full name cannot be empty")
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, fullName, req.Bio, req.Location); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}

// UpdateTeachMode flips the tutor availability flag. Non-admin users also
// switch role between Tutor and Learner accordingly.
func (s *AuthService) UpdateTeachMode(ctx context.Context, userID int64, readyToTeach bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var role *models.Role
	if user.Role != models.RoleAdmin {
		next := models.RoleLearner
		if readyToTeach {
			next = models.RoleTutor
		}
		role = &next
	}

	if err := s.userRepo.SetTeachMode(ctx, userID, readyToTeach, role); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}

// SetActive enables or disables the user's own account
func (s *AuthService) SetActive(ctx context.Context, userID int64, active bool) error {
	return s.userRepo.SetActive(ctx, userID, active)
}

// DeleteUser permanently removes an account
func (s *AuthService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("userId", userID).Msg("User deleted")
	return nil
}
