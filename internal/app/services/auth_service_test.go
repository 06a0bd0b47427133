package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/app/models/dto"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
	"github.com/skilllink/skilllink/internal/pkg/auth"
	"github.com/skilllink/skilllink/internal/pkg/email"
	"github.com/skilllink/skilllink/internal/pkg/filestorage"
)

func newTestAuthService(t *testing.T, userRepo *fakeUserRepo) *AuthService {
	t.Helper()
	storage, err := filestorage.NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	return NewAuthService(
		userRepo,
		auth.NewJWTService("test-secret", time.Hour, "skilllink.app"),
		auth.NewPasswordService(bcrypt.MinCost),
		email.NewService(email.Config{From: "no-reply@skilllink.app", BaseURL: "http://localhost:8080"}),
		storage,
		zerolog.Nop(),
	)
}

func TestRegister_CreatesUnverifiedUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "  Jane Doe  ",
		Email:    "Jane@Example.COM",
		Password: "password123",
	}, nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := repo.GetByID(context.Background(), resp.UserID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if user.Email != "jane@example.com" {
		t.Errorf("email = %q, want lowercased jane@example.com", user.Email)
	}
	if user.FullName != "Jane Doe" {
		t.Errorf("fullName = %q, want trimmed Jane Doe", user.FullName)
	}
	if user.EmailVerified {
		t.Error("new user must start unverified")
	}
	if user.Role != models.RoleLearner {
		t.Errorf("role = %q, want Learner default", user.Role)
	}
	if user.ReadyToTeach {
		t.Error("learner must not be ready to teach")
	}
	if user.VerifyToken == nil || *user.VerifyToken == "" {
		t.Error("expected a verification token")
	}
	if user.PasswordHash == "password123" {
		t.Error("password must be hashed")
	}
}

func TestRegister_TutorRoleEnablesTeachMode(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Sam Tutor",
		Email:    "sam@example.com",
		Password: "password123",
		Role:     "Tutor",
	}, nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, _ := repo.GetByID(context.Background(), resp.UserID)
	if user.Role != models.RoleTutor {
		t.Errorf("role = %q, want Tutor", user.Role)
	}
	if !user.ReadyToTeach {
		t.Error("tutor must start ready to teach")
	}
}

func TestRegister_RejectsDisposableEmail(t *testing.T) {
	svc := newTestAuthService(t, newFakeUserRepo())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Spam",
		Email:    "x@mailinator.com",
		Password: "password123",
	}, nil)
	if !errors.Is(err, apperrors.ErrDisposableEmail) {
		t.Fatalf("expected ErrDisposableEmail, got %v", err)
	}
}

func TestRegister_RejectsAdminRole(t *testing.T) {
	svc := newTestAuthService(t, newFakeUserRepo())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Sneaky",
		Email:    "sneaky@example.com",
		Password: "password123",
		Role:     "Admin",
	}, nil)
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)

	req := &dto.RegisterRequest{FullName: "First", Email: "dup@example.com", Password: "password123"}
	if _, err := svc.Register(context.Background(), req, nil); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := svc.Register(context.Background(), req, nil)
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestVerifyEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Jane",
		Email:    "jane@example.com",
		Password: "password123",
	}, nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, _ := repo.GetByID(context.Background(), resp.UserID)
	token := *user.VerifyToken

	if err := svc.VerifyEmail(context.Background(), token); err != nil {
		t.Fatalf("VerifyEmail: %v", err)
	}

	user, _ = repo.GetByID(context.Background(), resp.UserID)
	if !user.EmailVerified {
		t.Error("user should be verified")
	}

	// Token is one-shot
	if err := svc.VerifyEmail(context.Background(), token); !errors.Is(err, apperrors.ErrInvalidEmailToken) {
		t.Errorf("reuse of token: expected ErrInvalidEmailToken, got %v", err)
	}
}

func TestVerifyEmail_BadToken(t *testing.T) {
	svc := newTestAuthService(t, newFakeUserRepo())

	if err := svc.VerifyEmail(context.Background(), ""); !errors.Is(err, apperrors.ErrInvalidEmailToken) {
		t.Errorf("empty token: expected ErrInvalidEmailToken, got %v", err)
	}
	if err := svc.VerifyEmail(context.Background(), "nope"); !errors.Is(err, apperrors.ErrInvalidEmailToken) {
		t.Errorf("unknown token: expected ErrInvalidEmailToken, got %v", err)
	}
}

func TestVerifyEmail_ExpiredToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)

	token := "expired-token"
	expires := time.Now().Add(-time.Hour)
	repo.users[1] = &models.User{
		ID:            1,
		Email:         "old@example.com",
		VerifyToken:   &token,
		VerifyExpires: &expires,
	}

	if err := svc.VerifyEmail(context.Background(), token); !errors.Is(err, apperrors.ErrInvalidEmailToken) {
		t.Fatalf("expected ErrInvalidEmailToken for expired token, got %v", err)
	}
}

func registerVerifiedUser(t *testing.T, svc *AuthService, repo *fakeUserRepo, emailAddr, password string) *models.User {
	t.Helper()
	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "User",
		Email:    emailAddr,
		Password: password,
	}, nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := repo.MarkEmailVerified(context.Background(), resp.UserID); err != nil {
		t.Fatalf("MarkEmailVerified: %v", err)
	}
	user, _ := repo.GetByID(context.Background(), resp.UserID)
	return user
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)
	registerVerifiedUser(t, svc, repo, "jane@example.com", "password123")

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("tokenType = %q, want Bearer", resp.TokenType)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", resp.ExpiresIn)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)
	registerVerifiedUser(t, svc, repo, "jane@example.com", "password123")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(t, newFakeUserRepo())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnverifiedEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Jane",
		Email:    "jane@example.com",
		Password: "password123",
	}, nil); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	if !errors.Is(err, apperrors.ErrEmailNotVerified) {
		t.Fatalf("expected ErrEmailNotVerified, got %v", err)
	}
}

func TestLogin_DisabledAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)
	user := registerVerifiedUser(t, svc, repo, "jane@example.com", "password123")

	if err := repo.SetActive(context.Background(), user.ID, false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	if !errors.Is(err, apperrors.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestUpdateTeachMode_FlipsRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)
	user := registerVerifiedUser(t, svc, repo, "jane@example.com", "password123")

	updated, err := svc.UpdateTeachMode(context.Background(), user.ID, true)
	if err != nil {
		t.Fatalf("UpdateTeachMode: %v", err)
	}
	if updated.Role != models.RoleTutor || !updated.ReadyToTeach {
		t.Errorf("got role=%q ready=%v, want Tutor/true", updated.Role, updated.ReadyToTeach)
	}

	updated, err = svc.UpdateTeachMode(context.Background(), user.ID, false)
	if err != nil {
		t.Fatalf("UpdateTeachMode: %v", err)
	}
	if updated.Role != models.RoleLearner || updated.ReadyToTeach {
		t.Errorf("got role=%q ready=%v, want Learner/false", updated.Role, updated.ReadyToTeach)
	}
}

func TestUpdateTeachMode_AdminKeepsRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)

	repo.users[1] = &models.User{ID: 1, Email: "admin@skilllink.app", Role: models.RoleAdmin, IsActive: true, EmailVerified: true}

	updated, err := svc.UpdateTeachMode(context.Background(), 1, true)
	if err != nil {
		t.Fatalf("UpdateTeachMode: %v", err)
	}
	if updated.Role != models.RoleAdmin {
		t.Errorf("role = %q, admin role must not change", updated.Role)
	}
	if !updated.ReadyToTeach {
		t.Error("ready_to_teach should still toggle for admins")
	}
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)
	user := registerVerifiedUser(t, svc, repo, "jane@example.com", "password123")

	bio := "I teach guitar"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, &dto.UpdateProfileRequest{
		FullName: "Jane D.",
		Bio:      &bio,
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.FullName != "Jane D." {
		t.Errorf("fullName = %q", updated.FullName)
	}
	if updated.Bio == nil || *updated.Bio != bio {
		t.Errorf("bio not updated: %v", updated.Bio)
	}

	_, err = svc.UpdateProfile(context.Background(), user.ID, &dto.UpdateProfileRequest{FullName: "   "})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("blank name: expected ErrBadRequest, got %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(t, repo)
	user := registerVerifiedUser(t, svc, repo, "jane@example.com", "password123")

	if err := svc.DeleteUser(context.Background(), user.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), user.ID); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound after delete, got %v", err)
	}
}
