package dto

import "time"

// CreateSessionRequest creates a standalone scheduling record
type CreateSessionRequest struct {
	RequestID   int64      `json:"requestId" binding:"required,min=1"`
	TutorID     int64      `json:"tutorId" binding:"required,min=1"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Status      string     `json:"status"`
}

// UpdateSessionStatusRequest patches a session's status
type UpdateSessionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
