package models

import (
	"time"
)

// Session is a standalone tutor/request scheduling record. It references a
// request and a tutor directly and is not tied to an AcceptedRequest row.
type Session struct {
	ID          int64            `json:"sessionId" db:"id" example:"1"`
	RequestID   int64            `json:"requestId" db:"request_id" example:"3"`
	TutorID     int64            `json:"tutorId" db:"tutor_id" example:"9"`
	ScheduledAt *time.Time       `json:"scheduledAt,omitempty" db:"scheduled_at"`
	Status      AcceptanceStatus `json:"status" db:"status" example:"PENDING"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
}
