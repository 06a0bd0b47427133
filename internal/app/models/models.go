package models

// Role defines the user role type
type Role string

const (
	RoleLearner Role = "Learner"
	RoleTutor   Role = "Tutor"
	RoleAdmin   Role = "Admin"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleLearner, RoleTutor, RoleAdmin:
		return true
	}
	return false
}

// RequestStatus defines the lifecycle state of a learning request
type RequestStatus string

const (
	RequestStatusOpen      RequestStatus = "OPEN"
	RequestStatusScheduled RequestStatus = "SCHEDULED"
	RequestStatusCompleted RequestStatus = "COMPLETED"
	RequestStatusCancelled RequestStatus = "CANCELLED"
)

// IsValid reports whether the status belongs to the closed request enumeration.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusOpen, RequestStatusScheduled, RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// AcceptanceStatus defines the lifecycle state of an accepted request
type AcceptanceStatus string

const (
	AcceptancePending   AcceptanceStatus = "PENDING"
	AcceptanceScheduled AcceptanceStatus = "SCHEDULED"
	AcceptanceCompleted AcceptanceStatus = "COMPLETED"
	AcceptanceCancelled AcceptanceStatus = "CANCELLED"
)

// IsValid reports whether the status belongs to the closed acceptance enumeration.
func (s AcceptanceStatus) IsValid() bool {
	switch s {
	case AcceptancePending, AcceptanceScheduled, AcceptanceCompleted, AcceptanceCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from the status.
func (s AcceptanceStatus) IsTerminal() bool {
	return s == AcceptanceCompleted || s == AcceptanceCancelled
}

// CanTransitionTo validates an acceptance status transition.
// PENDING may move to SCHEDULED or CANCELLED; SCHEDULED may be re-scheduled,
// completed or cancelled; COMPLETED and CANCELLED are terminal.
func (s AcceptanceStatus) CanTransitionTo(next AcceptanceStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch s {
	case AcceptancePending:
		return next == AcceptanceScheduled || next == AcceptanceCancelled
	case AcceptanceScheduled:
		return next == AcceptanceScheduled || next == AcceptanceCompleted || next == AcceptanceCancelled
	}
	return false
}

// SkillLevel defines proficiency levels for user skills
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// IsValid reports whether the level is one of the known proficiency levels.
func (l SkillLevel) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}
