package models

import (
	"time"
)

// Request defines a learner's ask for help with a named skill
type Request struct {
	ID          int64         `json:"requestId" db:"id" example:"1"`
	LearnerID   int64         `json:"learnerId" db:"learner_id" example:"7"`
	SkillName   string        `json:"skillName" db:"skill_name" example:"Guitar"`
	Topic       *string       `json:"topic,omitempty" db:"topic"`
	Description *string       `json:"description,omitempty" db:"description"`
	Status      RequestStatus `json:"status" db:"status" example:"OPEN"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
}

// RequestWithUser is the denormalized read model of a request joined with
// its requester's identity. It exists so list endpoints can return requester
// name/email without a second round trip.
type RequestWithUser struct {
	Request
	RequesterName  string `json:"requesterName" db:"full_name"`
	RequesterEmail string `json:"requesterEmail" db:"email"`
}
