package models

import "testing"

func TestRoleIsValid(t *testing.T) {
	valid := []Role{RoleLearner, RoleTutor, RoleAdmin}
	for _, r := range valid {
		if !r.IsValid() {
			t.Errorf("expected role %q to be valid", r)
		}
	}
	invalid := []Role{"", "learner", "Moderator"}
	for _, r := range invalid {
		if r.IsValid() {
			t.Errorf("expected role %q to be invalid", r)
		}
	}
}

func TestRequestStatusIsValid(t *testing.T) {
	valid := []RequestStatus{RequestStatusOpen, RequestStatusScheduled, RequestStatusCompleted, RequestStatusCancelled}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected status %q to be valid", s)
		}
	}
	invalid := []RequestStatus{"", "open", "PENDING", "DONE"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("expected status %q to be invalid", s)
		}
	}
}

func TestSkillLevelIsValid(t *testing.T) {
	valid := []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}
	for _, l := range valid {
		if !l.IsValid() {
			t.Errorf("expected level %q to be valid", l)
		}
	}
	if SkillLevel("Master").IsValid() {
		t.Error("expected level Master to be invalid")
	}
	if SkillLevel("").IsValid() {
		t.Error("expected empty level to be invalid")
	}
}

func TestAcceptanceStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    AcceptanceStatus
		to      AcceptanceStatus
		allowed bool
	}{
		{AcceptancePending, AcceptanceScheduled, true},
		{AcceptancePending, AcceptanceCancelled, true},
		{AcceptancePending, AcceptanceCompleted, false},
		{AcceptancePending, AcceptancePending, false},
		{AcceptanceScheduled, AcceptanceScheduled, true},
		{AcceptanceScheduled, AcceptanceCompleted, true},
		{AcceptanceScheduled, AcceptanceCancelled, true},
		{AcceptanceScheduled, AcceptancePending, false},
		{AcceptanceCompleted, AcceptanceScheduled, false},
		{AcceptanceCompleted, AcceptanceCancelled, false},
		{AcceptanceCancelled, AcceptanceScheduled, false},
		{AcceptanceCancelled, AcceptancePending, false},
	}

	for _, tc := range tests {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("transition %s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestAcceptanceStatusIsTerminal(t *testing.T) {
	if !AcceptanceCompleted.IsTerminal() || !AcceptanceCancelled.IsTerminal() {
		t.Error("expected COMPLETED and CANCELLED to be terminal")
	}
	if AcceptancePending.IsTerminal() || AcceptanceScheduled.IsTerminal() {
		t.Error("expected PENDING and SCHEDULED to be non-terminal")
	}
}
