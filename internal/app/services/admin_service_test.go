package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
)

func TestAdminSetUserActive(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAdminService(repo, zerolog.Nop())
	repo.users[1] = &models.User{ID: 1, Email: "u@example.com", IsActive: true}

	user, err := svc.SetUserActive(context.Background(), 1, false)
	if err != nil {
		t.Fatalf("SetUserActive: %v", err)
	}
	if user.IsActive {
		t.Error("user should be disabled")
	}

	if _, err := svc.SetUserActive(context.Background(), 42, false); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("unknown user: expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminSetUserRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAdminService(repo, zerolog.Nop())
	repo.users[1] = &models.User{ID: 1, Email: "u@example.com", Role: models.RoleLearner}

	user, err := svc.SetUserRole(context.Background(), 1, "Tutor")
	if err != nil {
		t.Fatalf("SetUserRole: %v", err)
	}
	if user.Role != models.RoleTutor {
		t.Errorf("role = %q, want Tutor", user.Role)
	}

	if _, err := svc.SetUserRole(context.Background(), 1, "Superuser"); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("bad role: expected ErrBadRequest, got %v", err)
	}
}
