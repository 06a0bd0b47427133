package dto

import "time"

// CreateRequestRequest represents a new learning request. The learner is
// taken from the bearer token, not the body.
type CreateRequestRequest struct {
	SkillName   string  `json:"skillName" binding:"required"`
	Topic       *string `json:"topic"`
	Description *string `json:"description"`
}

// UpdateRequestRequest represents a full update of a request's editable
// fields. Status is deliberately not part of this payload.
type UpdateRequestRequest struct {
	SkillName   string  `json:"skillName" binding:"required"`
	Topic       *string `json:"topic"`
	Description *string `json:"description"`
}

// UpdateRequestStatusRequest patches a request's status
type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ScheduleMeetingRequest schedules a meeting against an acceptance
type ScheduleMeetingRequest struct {
	ScheduleDate time.Time `json:"scheduleDate" binding:"required"`
	MeetingType  string    `json:"meetingType" binding:"required"`
	MeetingLink  string    `json:"meetingLink" binding:"required"`
}

// UpdateAcceptanceStatusRequest patches an acceptance's status
type UpdateAcceptanceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AcceptedStatusResponse reports whether the current user accepted a request
type AcceptedStatusResponse struct {
	HasAccepted bool `json:"hasAccepted"`
}
