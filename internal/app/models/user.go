package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID             int64      `json:"userId" db:"id" example:"1"`                               // Unique identifier for the user
	FullName       string     `json:"fullName" db:"full_name" example:"Jane Doe"`               // User's display name
	Email          string     `json:"email" db:"email" example:"jane@example.com"`              // User's email address (unique)
	PasswordHash   string     `json:"-" db:"password_hash"`                                     // Hashed password (excluded from JSON)
	Role           Role       `json:"role" db:"role" example:"Learner"`                         // Learner, Tutor or Admin
	Bio            *string    `json:"bio,omitempty" db:"bio"`                                   // Short bio (nullable)
	Location       *string    `json:"location,omitempty" db:"location"`                         // Free-form location (nullable)
	ProfilePicture *string    `json:"profilePicture,omitempty" db:"profile_picture"`            // Relative URL of the profile picture (nullable)
	IsActive       bool       `json:"isActive" db:"is_active" example:"true"`                   // Whether the account is active
	ReadyToTeach   bool       `json:"readyToTeach" db:"ready_to_teach" example:"false"`         // Tutor-mode toggle
	EmailVerified  bool       `json:"emailVerified" db:"email_verified" example:"true"`         // Whether the email address has been verified
	CreatedAt      time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	VerifyToken    *string    `json:"-" db:"email_verification_token"`                          // Pending verification token (nullable)
	VerifyExpires  *time.Time `json:"-" db:"email_verification_expires"`                        // Verification token expiry (nullable)
}
