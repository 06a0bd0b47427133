package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/skilllink/skilllink/internal/pkg/apperrors"
)

func TestHashAndVerifyPassword(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	hash, err := svc.HashPassword("s3cret!pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret!pass" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := svc.VerifyPassword(hash, "s3cret!pass"); err != nil {
		t.Errorf("VerifyPassword with correct password: %v", err)
	}

	err = svc.VerifyPassword(hash, "wrong-password")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestNewPasswordService_CostFallback(t *testing.T) {
	svc := NewPasswordService(-1)
	if svc.cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want %d", svc.cost, bcrypt.DefaultCost)
	}

	svc = NewPasswordService(bcrypt.MaxCost + 1)
	if svc.cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want %d", svc.cost, bcrypt.DefaultCost)
	}
}
