package models

import (
	"time"
)

// AcceptedRequest binds one acceptor (tutor) to one request. A
// (request_id, acceptor_id) pair is unique at the storage level.
type AcceptedRequest struct {
	ID           int64            `json:"acceptedRequestId" db:"id" example:"1"`
	RequestID    int64            `json:"requestId" db:"request_id" example:"3"`
	AcceptorID   int64            `json:"acceptorId" db:"acceptor_id" example:"9"`
	AcceptedAt   time.Time        `json:"acceptedAt" db:"accepted_at"`
	Status       AcceptanceStatus `json:"status" db:"status" example:"PENDING"`
	ScheduleDate *time.Time       `json:"scheduleDate,omitempty" db:"schedule_date"`
	MeetingType  *string          `json:"meetingType,omitempty" db:"meeting_type" example:"ONLINE"`
	MeetingLink  *string          `json:"meetingLink,omitempty" db:"meeting_link"`
}

// AcceptedRequestDetails is the denormalized read model of an acceptance
// joined with its request and the identity of the counterpart user.
// For "what am I teaching" the counterpart is the requester; for
// "who accepted my request" it is the acceptor.
type AcceptedRequestDetails struct {
	AcceptedRequest
	SkillName        string  `json:"skillName" db:"skill_name"`
	Topic            *string `json:"topic,omitempty" db:"topic"`
	Description      *string `json:"description,omitempty" db:"description"`
	CounterpartID    int64   `json:"counterpartId"`
	CounterpartName  string  `json:"counterpartName"`
	CounterpartEmail string  `json:"counterpartEmail"`
}
