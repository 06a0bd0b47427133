package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/app/models/dto"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
)

func TestRequestCreate(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())

	topic := "Barre chords"
	created, err := svc.Create(context.Background(), 7, &dto.CreateRequestRequest{
		SkillName: "  Guitar  ",
		Topic:     &topic,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.SkillName != "Guitar" {
		t.Errorf("skillName = %q, want trimmed Guitar", created.SkillName)
	}
	if created.Status != models.RequestStatusOpen {
		t.Errorf("status = %q, want OPEN", created.Status)
	}
	if created.LearnerID != 7 {
		t.Errorf("learnerId = %d, want 7", created.LearnerID)
	}
}

func TestRequestCreate_SkillNameOnly(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), 7, &dto.CreateRequestRequest{SkillName: "Guitar"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Topic != nil || created.Description != nil {
		t.Errorf("topic = %v, description = %v, want both nil", created.Topic, created.Description)
	}
}

func TestRequestCreate_EmptySkillName(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), 7, &dto.CreateRequestRequest{SkillName: "   "})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestRequestUpdate_OwnerOnly(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())
	req := repo.addRequest(7, "Guitar", models.RequestStatusOpen)

	_, err := svc.Update(context.Background(), req.ID, 99, &dto.UpdateRequestRequest{SkillName: "Piano"})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied for non-owner, got %v", err)
	}

	updated, err := svc.Update(context.Background(), req.ID, 7, &dto.UpdateRequestRequest{SkillName: "Piano"})
	if err != nil {
		t.Fatalf("Update by owner: %v", err)
	}
	if updated.SkillName != "Piano" {
		t.Errorf("skillName = %q, want Piano", updated.SkillName)
	}
}

func TestRequestUpdateStatus(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())
	req := repo.addRequest(7, "Guitar", models.RequestStatusOpen)

	if err := svc.UpdateStatus(context.Background(), req.ID, 7, "bogus"); !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Errorf("bogus status: expected ErrInvalidStatus, got %v", err)
	}

	if err := svc.UpdateStatus(context.Background(), req.ID, 99, "COMPLETED"); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("non-owner: expected ErrPermissionDenied, got %v", err)
	}

	if err := svc.UpdateStatus(context.Background(), req.ID, 7, "COMPLETED"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	got, _ := repo.GetByID(context.Background(), req.ID)
	if got.Status != models.RequestStatusCompleted {
		t.Errorf("status = %q, want COMPLETED", got.Status)
	}
}

func TestRequestDelete(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())
	req := repo.addRequest(7, "Guitar", models.RequestStatusOpen)

	if err := svc.Delete(context.Background(), req.ID, 99); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("non-owner delete: expected ErrPermissionDenied, got %v", err)
	}

	if err := svc.Delete(context.Background(), req.ID, 7); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), req.ID); !errors.Is(err, apperrors.ErrRequestNotFound) {
		t.Errorf("expected ErrRequestNotFound after delete, got %v", err)
	}
}

func TestRequestDelete_NotFound(t *testing.T) {
	svc := NewRequestService(newFakeRequestRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), 42, 7); !errors.Is(err, apperrors.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestRequestSearch_EmptyQueryListsAll(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, zerolog.Nop())
	repo.addRequest(7, "Guitar", models.RequestStatusOpen)
	repo.addRequest(8, "Piano", models.RequestStatusOpen)

	results, err := svc.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
}
