package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/app/models/dto"
	"github.com/skilllink/skilllink/internal/pkg/apperrors"
)

func newAcceptedFixture() (*AcceptedRequestService, *fakeAcceptedRepo, *fakeRequestRepo) {
	acceptedRepo := newFakeAcceptedRepo()
	requestRepo := newFakeRequestRepo()
	svc := NewAcceptedRequestService(acceptedRepo, requestRepo, zerolog.Nop())
	return svc, acceptedRepo, requestRepo
}

func TestAccept(t *testing.T) {
	svc, _, requestRepo := newAcceptedFixture()
	req := requestRepo.addRequest(7, "Guitar", models.RequestStatusOpen)

	accepted, err := svc.Accept(context.Background(), req.ID, 9)
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if accepted.RequestID != req.ID || accepted.AcceptorID != 9 {
		t.Errorf("got request=%d acceptor=%d", accepted.RequestID, accepted.AcceptorID)
	}
	if accepted.Status != models.AcceptancePending {
		t.Errorf("status = %q, want PENDING", accepted.Status)
	}
}

func TestAccept_OwnRequest(t *testing.T) {
	svc, _, requestRepo := newAcceptedFixture()
	req := requestRepo.addRequest(7, "Guitar", models.RequestStatusOpen)

	_, err := svc.Accept(context.Background(), req.ID, 7)
	if !errors.Is(err, apperrors.ErrOwnRequest) {
		t.Fatalf("expected ErrOwnRequest, got %v", err)
	}
}

func TestAccept_Duplicate(t *testing.T) {
	svc, _, requestRepo := newAcceptedFixture()
	req := requestRepo.addRequest(7, "Guitar", models.RequestStatusOpen)

	if _, err := svc.Accept(context.Background(), req.ID, 9); err != nil {
		t.Fatalf("first Accept: %v", err)
	}

	_, err := svc.Accept(context.Background(), req.ID, 9)
	if !errors.Is(err, apperrors.ErrAlreadyAccepted) {
		t.Fatalf("expected ErrAlreadyAccepted, got %v", err)
	}
}

func TestAccept_UnknownRequest(t *testing.T) {
	svc, _, _ := newAcceptedFixture()

	_, err := svc.Accept(context.Background(), 42, 9)
	if !errors.Is(err, apperrors.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestHasUserAccepted(t *testing.T) {
	svc, _, requestRepo := newAcceptedFixture()
	req := requestRepo.addRequest(7, "Guitar", models.RequestStatusOpen)

	has, err := svc.HasUserAccepted(context.Background(), 9, req.ID)
	if err != nil || has {
		t.Fatalf("before accept: has=%v err=%v", has, err)
	}

	if _, err := svc.Accept(context.Background(), req.ID, 9); err != nil {
		t.Fatalf("Accept: %v", err)
	}

	has, err = svc.HasUserAccepted(context.Background(), 9, req.ID)
	if err != nil || !has {
		t.Fatalf("after accept: has=%v err=%v", has, err)
	}
}

func TestScheduleMeeting(t *testing.T) {
	svc, _, requestRepo := newAcceptedFixture()
	req := requestRepo.addRequest(7, "Guitar", models.RequestStatusOpen)
	accepted, _ := svc.Accept(context.Background(), req.ID, 9)

	scheduled, err := svc.ScheduleMeeting(context.Background(), accepted.ID, 9, &dto.ScheduleMeetingRequest{
		ScheduleDate: time.Now().Add(48 * time.Hour),
		MeetingType:  "ONLINE",
		MeetingLink:  "https://meet.example.com/abc",
	})
	if err != nil {
		t.Fatalf("ScheduleMeeting: %v", err)
	}
	if scheduled.Status != models.AcceptanceScheduled {
		t.Errorf("status = %q, want SCHEDULED", scheduled.Status)
	}
	if scheduled.MeetingLink == nil || *scheduled.MeetingLink != "https://meet.example.com/abc" {
		t.Errorf("meetingLink = %v", scheduled.MeetingLink)
	}
}

func TestScheduleMeeting_OnlyAcceptor(t *testing.T) {
	svc, _, requestRepo := newAcceptedFixture()
	req := requestRepo.addRequest(7, "Guitar", models.RequestStatusOpen)
	accepted, _ := svc.Accept(context.Background(), req.ID, 9)

	_, err := svc.ScheduleMeeting(context.Background(), accepted.ID, 7, &dto.ScheduleMeetingRequest{
		ScheduleDate: time.Now(),
		MeetingType:  "ONLINE",
		MeetingLink:  "https://meet.example.com/abc",
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestScheduleMeeting_Reschedule(t *testing.T) {
	svc, _, requestRepo := newAcceptedFixture()
	req := requestRepo.addRequest(7, "Guitar", models.RequestStatusOpen)
	accepted, _ := svc.Accept(context.Background(), req.ID, 9)

	schedule := func(link string) error {
		_, err := svc.ScheduleMeeting(context.Background(), accepted.ID, 9, &dto.ScheduleMeetingRequest{
			ScheduleDate: time.Now().Add(24 * time.Hour),
			MeetingType:  "ONLINE",
			MeetingLink:  link,
		})
		return err
	}

	if err := schedule("https://meet.example.com/a"); err != nil {
		t.Fatalf("first schedule: %v", err)
	}
	// Re-scheduling from SCHEDULED is allowed
	if err := schedule("https://meet.example.com/b"); err != nil {
		t.Fatalf("reschedule: %v", err)
	}
}

func TestScheduleMeeting_TerminalStatus(t *testing.T) {
	svc, acceptedRepo, requestRepo := newAcceptedFixture()
	req := requestRepo.addRequest(7, "Guitar", models.RequestStatusOpen)
	accepted, _ := svc.Accept(context.Background(), req.ID, 9)

	if err := acceptedRepo.UpdateStatus(context.Background(), accepted.ID, models.AcceptanceCancelled); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	_, err := svc.ScheduleMeeting(context.Background(), accepted.ID, 9, &dto.ScheduleMeetingRequest{
		ScheduleDate: time.Now(),
		MeetingType:  "ONLINE",
		MeetingLink:  "https://meet.example.com/abc",
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected ErrConflict from a cancelled acceptance, got %v", err)
	}
}

func TestAcceptanceUpdateStatus(t *testing.T) {
	svc, _, requestRepo := newAcceptedFixture()
	req := requestRepo.addRequest(7, "Guitar", models.RequestStatusOpen)
	accepted, _ := svc.Accept(context.Background(), req.ID, 9)

	// PENDING cannot jump straight to COMPLETED
	if _, err := svc.UpdateStatus(context.Background(), accepted.ID, 9, "COMPLETED"); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("PENDING->COMPLETED: expected ErrConflict, got %v", err)
	}

	// Unknown status rejects before any lookup
	if _, err := svc.UpdateStatus(context.Background(), accepted.ID, 9, "DONE"); !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Errorf("unknown status: expected ErrInvalidStatus, got %v", err)
	}

	// Strangers cannot touch the acceptance
	if _, err := svc.UpdateStatus(context.Background(), accepted.ID, 55, "CANCELLED"); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("stranger: expected ErrPermissionDenied, got %v", err)
	}

	// The learner side may cancel
	updated, err := svc.UpdateStatus(context.Background(), accepted.ID, 7, "CANCELLED")
	if err != nil {
		t.Fatalf("learner cancel: %v", err)
	}
	if updated.Status != models.AcceptanceCancelled {
		t.Errorf("status = %q, want CANCELLED", updated.Status)
	}

	// Terminal states freeze
	if _, err := svc.UpdateStatus(context.Background(), accepted.ID, 9, "SCHEDULED"); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("CANCELLED->SCHEDULED: expected ErrConflict, got %v", err)
	}
}
